package sdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListNotifications returns the user's notifications, unread first.
func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool) ([]Notification, error) {
	query := url.Values{}
	if unreadOnly {
		query.Set("unread", "true")
	}
	var out []Notification
	if err := c.get(ctx, "/notifications/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/notifications/%d/mark_read/", id), struct{}{}, nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, "/notifications/mark_all_read/", struct{}{}, nil)
}

// ListBroadcasts returns the platform-wide announcements. Admin only.
func (c *Client) ListBroadcasts(ctx context.Context) ([]Broadcast, error) {
	var out []Broadcast
	if err := c.get(ctx, "/notifications/broadcasts/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BroadcastInput publishes an announcement to a target audience. TargetPlan is
// required when the audience is "plan".
type BroadcastInput struct {
	Title            string `json:"title" validate:"required"`
	Message          string `json:"message" validate:"required"`
	NotificationType string `json:"notification_type" validate:"required,oneof=info success warning error"`
	TargetAudience   string `json:"target_audience" validate:"required,oneof=all plan"`
	TargetPlan       *int64 `json:"target_plan,omitempty" validate:"required_if=TargetAudience plan"`
}

// CreateBroadcast publishes an announcement, fanning out notifications to the
// target audience. Admin only.
func (c *Client) CreateBroadcast(ctx context.Context, input BroadcastInput) (*Broadcast, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid broadcast input: %w", err)
	}
	var out Broadcast
	if err := c.post(ctx, "/notifications/broadcasts/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBroadcast removes an announcement. Admin only.
func (c *Client) DeleteBroadcast(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/notifications/broadcasts/%d/", id))
}
