package sdk

import "context"

// SyncOptions narrows a sync run to specific dates or symbols.
type SyncOptions struct {
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Symbols   []string `json:"symbols,omitempty"`
}

// TriggerSync starts an incremental market data sync.
func (c *Client) TriggerSync(ctx context.Context, opts SyncOptions) error {
	return c.post(ctx, "/sync/trigger-normal/", opts, nil)
}

// TriggerHardSync starts a full re-sync, replacing existing data in range.
func (c *Client) TriggerHardSync(ctx context.Context, opts SyncOptions) error {
	return c.post(ctx, "/sync/trigger-hard/", opts, nil)
}

// ListSyncLogs returns the sync journal, newest first.
func (c *Client) ListSyncLogs(ctx context.Context) ([]SyncLog, error) {
	var out []SyncLog
	if err := c.get(ctx, "/sync/logs/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMarketStatus reports whether the simulated market is currently open.
func (c *Client) GetMarketStatus(ctx context.Context) (*MarketStatus, error) {
	var out MarketStatus
	if err := c.get(ctx, "/sync/market-status/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
