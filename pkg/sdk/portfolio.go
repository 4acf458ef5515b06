package sdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListHoldings returns the paper portfolio positions.
func (c *Client) ListHoldings(ctx context.Context) ([]Holding, error) {
	var out []Holding
	if err := c.get(ctx, "/portfolio/holdings/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTransactions returns the trade history, newest first.
func (c *Client) ListTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", limit))
	}
	var out []Transaction
	if err := c.get(ctx, "/portfolio/holdings/history/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Trade places a paper BUY or SELL order and returns the executed transaction.
func (c *Client) Trade(ctx context.Context, input TradeRequest) (*Transaction, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid trade input: %w", err)
	}
	var out Transaction
	if err := c.post(ctx, "/portfolio/holdings/trade/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
