package sdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListStocksOptions filters the stock listing.
type ListStocksOptions struct {
	Search   string
	Category string
	Page     int
	PageSize int
	SortBy   string
	Order    string
}

// ListStocks returns the instruments matching the given filters.
func (c *Client) ListStocks(ctx context.Context, opts ListStocksOptions) ([]Stock, error) {
	query := url.Values{}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}
	if opts.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", opts.Page))
	}
	if opts.PageSize > 0 {
		query.Set("page_size", fmt.Sprintf("%d", opts.PageSize))
	}
	if opts.SortBy != "" {
		query.Set("sort_by", opts.SortBy)
	}
	if opts.Order != "" {
		query.Set("order", opts.Order)
	}
	var out []Stock
	if err := c.get(ctx, "/stocks/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStock returns one instrument by ID.
func (c *Client) GetStock(ctx context.Context, id int64) (*Stock, error) {
	var out Stock
	if err := c.get(ctx, fmt.Sprintf("/stocks/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DailyPricesOptions selects the price series to fetch.
type DailyPricesOptions struct {
	StockID   int64
	StartDate string
	EndDate   string
}

// GetDailyPrices returns daily OHLCV bars for a stock.
func (c *Client) GetDailyPrices(ctx context.Context, opts DailyPricesOptions) ([]DailyPrice, error) {
	if opts.StockID == 0 {
		return nil, fmt.Errorf("stock ID is required")
	}
	query := url.Values{}
	query.Set("stock", fmt.Sprintf("%d", opts.StockID))
	if opts.StartDate != "" {
		query.Set("start_date", opts.StartDate)
	}
	if opts.EndDate != "" {
		query.Set("end_date", opts.EndDate)
	}
	var out []DailyPrice
	if err := c.get(ctx, "/stocks/prices/daily/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStockCategories returns the browsing categories.
func (c *Client) ListStockCategories(ctx context.Context) ([]StockCategory, error) {
	var out []StockCategory
	if err := c.get(ctx, "/stocks/categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StockInput creates or updates an instrument. Admin only.
type StockInput struct {
	Symbol         string   `json:"symbol" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	ExchangeSuffix string   `json:"exchange_suffix,omitempty"`
	Status         string   `json:"status,omitempty"`
	Sectors        []string `json:"sectors,omitempty"`
	Categories     []string `json:"categories,omitempty"`
}

// CreateStock registers an instrument. Admin only.
func (c *Client) CreateStock(ctx context.Context, input StockInput) (*Stock, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid stock input: %w", err)
	}
	var out Stock
	if err := c.post(ctx, "/stocks/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStock replaces an instrument. Admin only.
func (c *Client) UpdateStock(ctx context.Context, id int64, input StockInput) (*Stock, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid stock input: %w", err)
	}
	var out Stock
	if err := c.put(ctx, fmt.Sprintf("/stocks/%d/", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStock removes an instrument. Admin only.
func (c *Client) DeleteStock(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/stocks/%d/", id))
}

// BulkDeleteStocks removes several instruments at once. Admin only.
func (c *Client) BulkDeleteStocks(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	body := map[string][]int64{"ids": ids}
	return c.post(ctx, "/stocks/bulk_delete/", body, nil)
}

// StockCategoryInput creates or updates a browsing category. Admin only.
type StockCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// CreateStockCategory adds a browsing category. Admin only.
func (c *Client) CreateStockCategory(ctx context.Context, input StockCategoryInput) (*StockCategory, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid category input: %w", err)
	}
	var out StockCategory
	if err := c.post(ctx, "/stocks/categories/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStockCategory replaces a browsing category. Admin only.
func (c *Client) UpdateStockCategory(ctx context.Context, id int64, input StockCategoryInput) (*StockCategory, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid category input: %w", err)
	}
	var out StockCategory
	if err := c.put(ctx, fmt.Sprintf("/stocks/categories/%d/", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStockCategory removes a browsing category. Admin only.
func (c *Client) DeleteStockCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/stocks/categories/%d/", id))
}
