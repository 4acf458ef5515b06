package sdk

import (
	"context"
	"fmt"
)

// RefillWallet tops up the paper-trading wallet and returns the record.
func (c *Client) RefillWallet(ctx context.Context, amount float64) (*PaymentRecord, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("refill amount must be positive")
	}
	body := map[string]float64{"amount": amount}
	var out PaymentRecord
	if err := c.post(ctx, "/payments/wallet/refill/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPaymentRecords returns the wallet transaction history.
func (c *Client) ListPaymentRecords(ctx context.Context) ([]PaymentRecord, error) {
	var out []PaymentRecord
	if err := c.get(ctx, "/payments/records/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
