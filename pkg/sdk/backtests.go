package sdk

import (
	"context"
	"fmt"
	"net/url"
)

// RunBacktest submits a backtest and returns the created run.
func (c *Client) RunBacktest(ctx context.Context, input BacktestRequest) (*BacktestRun, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid backtest input: %w", err)
	}
	var out BacktestRun
	if err := c.post(ctx, "/backtest/run/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBacktestRuns returns the user's backtest runs.
func (c *Client) ListBacktestRuns(ctx context.Context) ([]BacktestRun, error) {
	var out []BacktestRun
	if err := c.get(ctx, "/backtest/runs/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBacktestRun returns one run by ID.
func (c *Client) GetBacktestRun(ctx context.Context, id int64) (*BacktestRun, error) {
	var out BacktestRun
	if err := c.get(ctx, fmt.Sprintf("/backtest/runs/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBacktestResults returns the trades a run produced.
func (c *Client) GetBacktestResults(ctx context.Context, id int64, limit int) ([]BacktestResult, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", limit))
	}
	var out []BacktestResult
	if err := c.get(ctx, fmt.Sprintf("/backtest/runs/%d/results/", id), query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportBacktestCSV downloads a run's trades as raw CSV bytes.
func (c *Client) ExportBacktestCSV(ctx context.Context, id int64) ([]byte, error) {
	return c.getRaw(ctx, fmt.Sprintf("/backtest/runs/%d/export_csv/", id))
}

// DeleteBacktestRun removes a run and its results.
func (c *Client) DeleteBacktestRun(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/backtest/runs/%d/", id))
}

// DeleteBacktestRuns removes several runs at once.
func (c *Client) DeleteBacktestRuns(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	body := map[string][]int64{"ids": ids}
	return c.post(ctx, "/backtest/runs/bulk_delete/", body, nil)
}
