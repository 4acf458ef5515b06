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

func TestGetSectorDailyPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sectors/prices/daily/", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("sector"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("start_date"))
		writeEnvelope(t, w, []map[string]any{
			{"id": 1, "sector": 3, "date": "2024-01-02", "open_price": 47900.5, "close_price": 48120.0},
		})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	bars, err := client.GetSectorDailyPrices(context.Background(), sdk.SectorPricesOptions{
		SectorID: 3, StartDate: "2024-01-01",
	})
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, 48120.0, bars[0].ClosePrice)
}

func TestGetSectorDailyPrices_RequiresSector(t *testing.T) {
	client := sdk.NewClient("http://unused.invalid")
	_, err := client.GetSectorDailyPrices(context.Background(), sdk.SectorPricesOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sector ID is required")
}

func TestListOptionContracts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/options/contracts/", r.URL.Path)
		assert.Equal(t, "sector", r.URL.Query().Get("underlying_type"))
		assert.Equal(t, "NIFTY_BANK", r.URL.Query().Get("underlying"))
		assert.Equal(t, "CE", r.URL.Query().Get("option_type"))
		writeEnvelope(t, w, []map[string]any{
			{"id": 1, "underlying_type": "sector", "underlying_symbol": "NIFTY_BANK", "expiry_date": "2024-06-27", "option_type": "CE", "option_strike": "48000"},
		})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	contracts, err := client.ListOptionContracts(context.Background(), sdk.OptionContractsOptions{
		UnderlyingType: "sector", Underlying: "NIFTY_BANK", OptionType: "CE",
	})
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, "48000", contracts[0].OptionStrike)
}
