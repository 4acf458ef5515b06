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

func TestGetBacktestRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/backtest/runs/42/", r.URL.Path)
		writeEnvelope(t, w, map[string]any{
			"id":                  42,
			"run_id":              "bt-42",
			"strategy":            "golden_cross",
			"status":              "completed",
			"start_date":          "2024-01-01",
			"end_date":            "2024-06-30",
			"final_wallet_amount": "112500.00",
		})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	run, err := client.GetBacktestRun(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), run.ID)
	assert.Equal(t, "golden_cross", run.Strategy)
	assert.Equal(t, "completed", run.Status)
	assert.Equal(t, "112500.00", run.FinalWalletAmount)
}

func TestExportBacktestCSV(t *testing.T) {
	csv := "date,symbol,action,quantity\n2024-01-02,RELIANCE,BUY,10\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/backtest/runs/42/export_csv/", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(csv))
	}))
	defer server.Close()

	store := &memStore{}
	require.NoError(t, store.SaveCredentials(&sdk.Credentials{Token: "tok-1"}))

	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))
	raw, err := client.ExportBacktestCSV(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, csv, string(raw))
}

func TestExportBacktestCSV_UnauthorizedClearsStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := &memStore{}
	require.NoError(t, store.SaveCredentials(&sdk.Credentials{Token: "stale"}))

	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))
	_, err := client.ExportBacktestCSV(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, sdk.IsUnauthorized(err))
	assert.Nil(t, store.current())
}
