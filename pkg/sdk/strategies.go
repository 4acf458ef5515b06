package sdk

import (
	"context"
	"fmt"
	"net/url"
)

// End-user strategy surface: browsing the platform strategies, authoring
// rule-based strategies, and reading computed signals. The admin-side master
// CRUD lives in admin.go.

// GetStrategyMaster returns one platform strategy by code.
func (c *Client) GetStrategyMaster(ctx context.Context, code string) (*StrategyMaster, error) {
	if code == "" {
		return nil, fmt.Errorf("strategy code is required")
	}
	var out StrategyMaster
	if err := c.get(ctx, "/strategies/master/"+code+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RuleBasedInput creates or updates a rule-based strategy.
type RuleBasedInput struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description,omitempty"`
	Rules       map[string]any `json:"rules_json" validate:"required"`
	IsPublic    bool           `json:"is_public"`
}

// ListRuleBasedStrategies returns the user's own rule-based strategies.
func (c *Client) ListRuleBasedStrategies(ctx context.Context) ([]RuleBasedStrategy, error) {
	var out []RuleBasedStrategy
	if err := c.get(ctx, "/strategies/rule-based/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRuleBasedStrategy returns one rule-based strategy by ID.
func (c *Client) GetRuleBasedStrategy(ctx context.Context, id int64) (*RuleBasedStrategy, error) {
	var out RuleBasedStrategy
	if err := c.get(ctx, fmt.Sprintf("/strategies/rule-based/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRuleBasedStrategy saves a new rule-based strategy.
func (c *Client) CreateRuleBasedStrategy(ctx context.Context, input RuleBasedInput) (*RuleBasedStrategy, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid strategy input: %w", err)
	}
	var out RuleBasedStrategy
	if err := c.post(ctx, "/strategies/rule-based/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRuleBasedStrategy replaces a rule-based strategy.
func (c *Client) UpdateRuleBasedStrategy(ctx context.Context, id int64, input RuleBasedInput) (*RuleBasedStrategy, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid strategy input: %w", err)
	}
	var out RuleBasedStrategy
	if err := c.put(ctx, fmt.Sprintf("/strategies/rule-based/%d/", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRuleBasedStrategy removes a rule-based strategy.
func (c *Client) DeleteRuleBasedStrategy(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/strategies/rule-based/%d/", id))
}

// SignalsOptions filters the signal listing.
type SignalsOptions struct {
	Strategy  string
	StockID   int64
	StartDate string
	EndDate   string
}

func (o SignalsOptions) query() url.Values {
	query := url.Values{}
	if o.Strategy != "" {
		query.Set("strategy", o.Strategy)
	}
	if o.StockID > 0 {
		query.Set("stock", fmt.Sprintf("%d", o.StockID))
	}
	if o.StartDate != "" {
		query.Set("start_date", o.StartDate)
	}
	if o.EndDate != "" {
		query.Set("end_date", o.EndDate)
	}
	return query
}

// ListSignals returns computed strategy signals, newest first.
func (c *Client) ListSignals(ctx context.Context, opts SignalsOptions) ([]StrategySignal, error) {
	var out []StrategySignal
	if err := c.get(ctx, "/strategies/signals/", opts.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSignalPerformance aggregates a strategy's signal hit rate.
func (c *Client) GetSignalPerformance(ctx context.Context, opts SignalsOptions) (*SignalPerformance, error) {
	var out SignalPerformance
	if err := c.get(ctx, "/strategies/signals/performance/", opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
