package sdk

import (
	"context"
	"fmt"
)

// ListPlans returns the active subscription plans.
func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	var out []Plan
	if err := c.get(ctx, "/subscriptions/plans/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CurrentSubscription returns the user's active subscription, if any.
func (c *Client) CurrentSubscription(ctx context.Context) (*Subscription, error) {
	var out Subscription
	if err := c.get(ctx, "/subscriptions/current/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CouponValidation is the backend's verdict on a coupon code.
type CouponValidation struct {
	Valid           bool   `json:"valid"`
	DiscountPercent string `json:"discount_percent,omitempty"`
	Message         string `json:"message,omitempty"`
}

// ValidateCoupon checks a coupon code against a plan before subscribing.
func (c *Client) ValidateCoupon(ctx context.Context, code string, planID int64) (*CouponValidation, error) {
	if code == "" {
		return nil, fmt.Errorf("coupon code is required")
	}
	body := map[string]any{"code": code, "plan": planID}
	var out CouponValidation
	if err := c.post(ctx, "/subscriptions/validate_coupon/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubscribeInput selects a plan and billing period.
type SubscribeInput struct {
	PlanID     int64  `json:"plan" validate:"required"`
	Period     string `json:"period" validate:"required,oneof=monthly yearly"`
	CouponCode string `json:"coupon_code,omitempty"`
}

// Subscribe assigns the user to a plan.
func (c *Client) Subscribe(ctx context.Context, input SubscribeInput) (*Subscription, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid subscribe input: %w", err)
	}
	var out Subscription
	if err := c.post(ctx, "/subscriptions/subscribe/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
