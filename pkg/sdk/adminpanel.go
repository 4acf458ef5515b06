package sdk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Operator-side management of end-user accounts, admin accounts and platform
// configuration. All endpoints live under /admin-panel/ and require an admin
// session; the admin account operations additionally require the superadmin
// role, which the backend enforces.

// PageOptions selects a page of a sorted admin listing.
type PageOptions struct {
	Page     int
	PageSize int
	SortBy   string
	Order    string
}

func (o PageOptions) query() url.Values {
	query := url.Values{}
	if o.Page > 0 {
		query.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(o.PageSize))
	}
	if o.SortBy != "" {
		query.Set("sort_by", o.SortBy)
	}
	if o.Order != "" {
		query.Set("order", o.Order)
	}
	return query
}

// UserPage is one page of end-user accounts.
type UserPage struct {
	Users      []PlatformUser `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// ListUsers returns a page of end-user accounts.
func (c *Client) ListUsers(ctx context.Context, opts PageOptions) (*UserPage, error) {
	var out UserPage
	if err := c.get(ctx, "/admin-panel/users/", opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleUserStatus flips an end-user account between active and deactivated
// and returns the updated record.
func (c *Client) ToggleUserStatus(ctx context.Context, id int64) (*PlatformUser, error) {
	var out PlatformUser
	if err := c.post(ctx, fmt.Sprintf("/admin-panel/users/%d/toggle-status/", id), struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminPage is one page of operator accounts.
type AdminPage struct {
	Admins     []AdminAccount `json:"admins"`
	Pagination Pagination     `json:"pagination"`
}

// ListAdmins returns a page of operator accounts.
func (c *Client) ListAdmins(ctx context.Context, opts PageOptions) (*AdminPage, error) {
	var out AdminPage
	if err := c.get(ctx, "/admin-panel/admins/", opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAdmin returns one operator account by ID.
func (c *Client) GetAdmin(ctx context.Context, id int64) (*AdminAccount, error) {
	var out AdminAccount
	if err := c.get(ctx, fmt.Sprintf("/admin-panel/admins/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminCreateInput provisions a new operator account.
type AdminCreateInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Name            string `json:"name" validate:"required"`
	Role            string `json:"role" validate:"required,oneof=admin moderator analyst"`
	CanManageStocks bool   `json:"can_manage_stocks"`
	CanManageConfig bool   `json:"can_manage_config"`
}

// CreateAdmin provisions an operator account.
func (c *Client) CreateAdmin(ctx context.Context, input AdminCreateInput) (*AdminAccount, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid admin input: %w", err)
	}
	var out AdminAccount
	if err := c.post(ctx, "/admin-panel/admin/create/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUpdateInput carries the mutable operator fields. Nil fields are left
// unchanged; the backend refuses self-demotion and self-deactivation.
type AdminUpdateInput struct {
	Name            *string `json:"name,omitempty"`
	Role            *string `json:"role,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
	CanManageStocks *bool   `json:"can_manage_stocks,omitempty"`
	CanManageConfig *bool   `json:"can_manage_config,omitempty"`
}

// UpdateAdmin patches an operator account.
func (c *Client) UpdateAdmin(ctx context.Context, id int64, input AdminUpdateInput) (*AdminAccount, error) {
	var out AdminAccount
	if err := c.put(ctx, fmt.Sprintf("/admin-panel/admins/%d/", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAdmin removes an operator account.
func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin-panel/admins/%d/delete/", id))
}

// ListConfigs returns all platform configuration entries.
func (c *Client) ListConfigs(ctx context.Context) ([]ConfigEntry, error) {
	var out []ConfigEntry
	if err := c.get(ctx, "/admin-panel/config/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfigInput creates a configuration entry.
type ConfigInput struct {
	Key         string `json:"key" validate:"required"`
	Value       string `json:"value" validate:"required"`
	Description string `json:"description,omitempty"`
}

// CreateConfig adds a configuration entry. Duplicate keys are rejected by the
// backend.
func (c *Client) CreateConfig(ctx context.Context, input ConfigInput) (*ConfigEntry, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid config input: %w", err)
	}
	var out ConfigEntry
	if err := c.post(ctx, "/admin-panel/config/create/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConfig sets the value of an existing configuration key.
func (c *Client) UpdateConfig(ctx context.Context, key, value string) (*ConfigEntry, error) {
	if key == "" {
		return nil, fmt.Errorf("config key is required")
	}
	body := map[string]string{"value": value}
	var out ConfigEntry
	if err := c.put(ctx, "/admin-panel/config/"+key+"/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConfig removes a configuration key.
func (c *Client) DeleteConfig(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	return c.delete(ctx, "/admin-panel/config/"+key+"/delete/")
}
