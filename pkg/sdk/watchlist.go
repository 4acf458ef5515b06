package sdk

import (
	"context"
	"fmt"
)

// ListWatchlist returns the user's watchlist in display order.
func (c *Client) ListWatchlist(ctx context.Context) ([]WatchlistItem, error) {
	var out []WatchlistItem
	if err := c.get(ctx, "/watchlist/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddToWatchlist appends a stock to the watchlist.
func (c *Client) AddToWatchlist(ctx context.Context, stockID int64) (*WatchlistItem, error) {
	if stockID == 0 {
		return nil, fmt.Errorf("stock ID is required")
	}
	var out WatchlistItem
	body := map[string]int64{"stock": stockID}
	if err := c.post(ctx, "/watchlist/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFromWatchlist deletes a watchlist entry by its ID.
func (c *Client) RemoveFromWatchlist(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/watchlist/%d/", id))
}

// ReorderWatchlist rewrites the display order of the given entries.
func (c *Client) ReorderWatchlist(ctx context.Context, items []WatchlistReorderItem) error {
	if len(items) == 0 {
		return nil
	}
	body := map[string][]WatchlistReorderItem{"items": items}
	return c.post(ctx, "/watchlist/reorder/", body, nil)
}

// BulkUpdateWatchlist adds and removes stocks in one call.
func (c *Client) BulkUpdateWatchlist(ctx context.Context, add, remove []int64) error {
	body := map[string][]int64{"add": add, "remove": remove}
	return c.post(ctx, "/watchlist/bulk_update/", body, nil)
}
