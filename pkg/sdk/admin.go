package sdk

import (
	"context"
	"fmt"
)

// The admin panel runs on a separate auth namespace with its own login and
// profile endpoints. Admin sessions never interoperate with end-user sessions.

// AdminLogin authenticates against the admin panel.
func (c *Client) AdminLogin(ctx context.Context, input LoginInput) (*Credentials, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid login input: %w", err)
	}
	var data loginData
	if err := c.post(ctx, "/admin-panel/auth/login/", input, &data); err != nil {
		return nil, err
	}
	if data.User == nil || data.Token == "" {
		return nil, fmt.Errorf("login response missing user or token")
	}
	return &Credentials{Token: data.Token, User: data.User}, nil
}

// AdminProfile fetches the authenticated admin user. Used as the admin
// session's validity probe.
func (c *Client) AdminProfile(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/admin-panel/auth/profile/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// StrategyMasterInput creates or updates a platform strategy.
type StrategyMasterInput struct {
	Code        string         `json:"code" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description,omitempty"`
	Status      string         `json:"status,omitempty"`
	Type        string         `json:"type,omitempty"`
	Logic       map[string]any `json:"logic,omitempty"`
}

// ListStrategyMasters returns all platform strategies.
func (c *Client) ListStrategyMasters(ctx context.Context) ([]StrategyMaster, error) {
	var out []StrategyMaster
	if err := c.get(ctx, "/strategies/master/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStrategyMaster registers a new platform strategy.
func (c *Client) CreateStrategyMaster(ctx context.Context, input StrategyMasterInput) (*StrategyMaster, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid strategy input: %w", err)
	}
	var out StrategyMaster
	if err := c.post(ctx, "/strategies/master/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStrategyMaster patches an existing strategy by code.
func (c *Client) UpdateStrategyMaster(ctx context.Context, code string, input StrategyMasterInput) (*StrategyMaster, error) {
	if code == "" {
		return nil, fmt.Errorf("strategy code is required")
	}
	var out StrategyMaster
	if err := c.patch(ctx, "/strategies/master/"+code+"/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStrategyMaster removes a strategy by code.
func (c *Client) DeleteStrategyMaster(ctx context.Context, code string) error {
	if code == "" {
		return fmt.Errorf("strategy code is required")
	}
	return c.delete(ctx, "/strategies/master/"+code+"/")
}

// SyncStrategies recomputes strategy signals server-side.
func (c *Client) SyncStrategies(ctx context.Context) error {
	return c.post(ctx, "/strategies/sync/", struct{}{}, nil)
}

// PlanInput creates or updates a subscription plan.
type PlanInput struct {
	Name              string   `json:"name" validate:"required"`
	Slug              string   `json:"slug" validate:"required"`
	Description       string   `json:"description,omitempty"`
	MonthlyPrice      string   `json:"monthly_price" validate:"required"`
	YearlyPrice       string   `json:"yearly_price" validate:"required"`
	Priority          int      `json:"priority,omitempty"`
	Features          []string `json:"features,omitempty"`
	IsActive          bool     `json:"is_active"`
	IsDefault         bool     `json:"is_default"`
	DefaultPeriodDays int      `json:"default_period_days,omitempty"`
}

// ListAdminPlans returns all plans, including inactive ones.
func (c *Client) ListAdminPlans(ctx context.Context) ([]Plan, error) {
	var out []Plan
	if err := c.get(ctx, "/subscriptions/admin/plans/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAdminPlan returns one plan by ID.
func (c *Client) GetAdminPlan(ctx context.Context, id int64) (*Plan, error) {
	var out Plan
	if err := c.get(ctx, fmt.Sprintf("/subscriptions/admin/plans/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAdminPlan creates a plan.
func (c *Client) CreateAdminPlan(ctx context.Context, input PlanInput) (*Plan, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid plan input: %w", err)
	}
	var out Plan
	if err := c.post(ctx, "/subscriptions/admin/plans/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAdminPlan replaces a plan.
func (c *Client) UpdateAdminPlan(ctx context.Context, id int64, input PlanInput) (*Plan, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid plan input: %w", err)
	}
	var out Plan
	if err := c.put(ctx, fmt.Sprintf("/subscriptions/admin/plans/%d/", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAdminPlan removes a plan.
func (c *Client) DeleteAdminPlan(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/subscriptions/admin/plans/%d/", id))
}

// CouponInput creates a discount coupon.
type CouponInput struct {
	Code            string `json:"code" validate:"required"`
	DiscountPercent string `json:"discount_percent" validate:"required"`
	ValidFrom       string `json:"valid_from" validate:"required"`
	ValidUntil      string `json:"valid_until" validate:"required"`
	MaxUsage        int    `json:"max_usage,omitempty"`
}

// ListCoupons returns all coupons.
func (c *Client) ListCoupons(ctx context.Context) ([]Coupon, error) {
	var out []Coupon
	if err := c.get(ctx, "/subscriptions/admin/coupons/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCoupon creates a coupon. Duplicate codes surface as a validation
// error from the backend.
func (c *Client) CreateCoupon(ctx context.Context, input CouponInput) (*Coupon, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid coupon input: %w", err)
	}
	var out Coupon
	if err := c.post(ctx, "/subscriptions/admin/coupons/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCoupon removes a coupon.
func (c *Client) DeleteCoupon(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/subscriptions/admin/coupons/%d/", id))
}

// ListFeatures returns the feature catalog plans are built from.
func (c *Client) ListFeatures(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/subscriptions/admin/features/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
