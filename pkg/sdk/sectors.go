package sdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListSectors returns the tracked index sectors.
func (c *Client) ListSectors(ctx context.Context) ([]Sector, error) {
	var out []Sector
	if err := c.get(ctx, "/sectors/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSector returns one sector by ID.
func (c *Client) GetSector(ctx context.Context, id int64) (*Sector, error) {
	var out Sector
	if err := c.get(ctx, fmt.Sprintf("/sectors/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SectorPricesOptions selects the sector price series to fetch.
type SectorPricesOptions struct {
	SectorID  int64
	StartDate string
	EndDate   string
}

// GetSectorDailyPrices returns daily OHLCV bars for a sector index.
func (c *Client) GetSectorDailyPrices(ctx context.Context, opts SectorPricesOptions) ([]SectorDailyPrice, error) {
	if opts.SectorID == 0 {
		return nil, fmt.Errorf("sector ID is required")
	}
	query := url.Values{}
	query.Set("sector", fmt.Sprintf("%d", opts.SectorID))
	if opts.StartDate != "" {
		query.Set("start_date", opts.StartDate)
	}
	if opts.EndDate != "" {
		query.Set("end_date", opts.EndDate)
	}
	var out []SectorDailyPrice
	if err := c.get(ctx, "/sectors/prices/daily/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SectorInput creates or updates a sector.
type SectorInput struct {
	Enum        string `json:"enum" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// CreateSector registers a sector. Admin only.
func (c *Client) CreateSector(ctx context.Context, input SectorInput) (*Sector, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid sector input: %w", err)
	}
	var out Sector
	if err := c.post(ctx, "/sectors/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSector replaces a sector. Admin only.
func (c *Client) UpdateSector(ctx context.Context, id int64, input SectorInput) (*Sector, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid sector input: %w", err)
	}
	var out Sector
	if err := c.put(ctx, fmt.Sprintf("/sectors/%d/", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSector removes a sector. Admin only.
func (c *Client) DeleteSector(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/sectors/%d/", id))
}
