package sdk

import (
	"context"
	"net/url"
)

// OptionContractsOptions filters the option chain listing.
type OptionContractsOptions struct {
	UnderlyingType string
	Underlying     string
	ExpiryDate     string
	OptionType     string
}

func (o OptionContractsOptions) query() url.Values {
	query := url.Values{}
	if o.UnderlyingType != "" {
		query.Set("underlying_type", o.UnderlyingType)
	}
	if o.Underlying != "" {
		query.Set("underlying", o.Underlying)
	}
	if o.ExpiryDate != "" {
		query.Set("expiry_date", o.ExpiryDate)
	}
	if o.OptionType != "" {
		query.Set("option_type", o.OptionType)
	}
	return query
}

// ListOptionContracts returns the option series matching the filters.
func (c *Client) ListOptionContracts(ctx context.Context, opts OptionContractsOptions) ([]OptionContract, error) {
	var out []OptionContract
	if err := c.get(ctx, "/options/contracts/", opts.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
