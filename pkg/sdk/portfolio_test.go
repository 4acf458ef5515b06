package sdk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertrade/console/pkg/sdk"
)

func TestClient_Trade(t *testing.T) {
	tests := []struct {
		name    string
		input   sdk.TradeRequest
		wantErr string
	}{
		{
			name:  "buy",
			input: sdk.TradeRequest{StockID: 12, Quantity: 10, Action: sdk.TradeBuy},
		},
		{
			name:  "sell",
			input: sdk.TradeRequest{StockID: 12, Quantity: 5, Action: sdk.TradeSell},
		},
		{
			name:    "unknown action rejected before send",
			input:   sdk.TradeRequest{StockID: 12, Quantity: 10, Action: "HOLD"},
			wantErr: "invalid trade input",
		},
		{
			name:    "zero quantity rejected before send",
			input:   sdk.TradeRequest{StockID: 12, Quantity: 0, Action: sdk.TradeBuy},
			wantErr: "invalid trade input",
		},
		{
			name:    "missing stock rejected before send",
			input:   sdk.TradeRequest{Quantity: 10, Action: sdk.TradeBuy},
			wantErr: "invalid trade input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				assert.Equal(t, "/portfolio/holdings/trade/", r.URL.Path)
				writeEnvelope(t, w, map[string]any{
					"id": 1, "stock": tt.input.StockID, "type": tt.input.Action,
					"quantity": tt.input.Quantity, "price": "101.50", "amount": "1015.00",
				})
			}))
			defer server.Close()

			client := sdk.NewClient(server.URL)
			tx, err := client.Trade(context.Background(), tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.False(t, reached)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input.StockID, tx.StockID)
			assert.Equal(t, tt.input.Quantity, tx.Quantity)
		})
	}
}

func TestClient_ListHoldings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/portfolio/holdings/", r.URL.Path)
		writeEnvelope(t, w, []map[string]any{
			{"id": 1, "stock": 12, "quantity": 10, "average_buy_price": "2500.00",
				"stock_details": map[string]any{"id": 12, "symbol": "RELIANCE"}},
			{"id": 2, "stock": 34, "quantity": 4, "average_buy_price": "3800.00"},
		})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	holdings, err := client.ListHoldings(context.Background())
	require.NoError(t, err)
	require.Len(t, holdings, 2)
	require.NotNil(t, holdings[0].StockDetails)
	assert.Equal(t, "RELIANCE", holdings[0].StockDetails.Symbol)
	assert.Equal(t, "3800.00", holdings[1].AverageBuyPrice)
}
