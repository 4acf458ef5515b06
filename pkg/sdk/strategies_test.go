package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertrade/console/pkg/sdk"
)

func TestListSignals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/strategies/signals/", r.URL.Path)
		assert.Equal(t, "golden_cross", r.URL.Query().Get("strategy"))
		assert.Equal(t, "7", r.URL.Query().Get("stock"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("start_date"))
		writeEnvelope(t, w, []map[string]any{
			{"id": 1, "stock": 7, "stock_symbol": "RELIANCE", "strategy": "golden_cross", "date": "2024-03-04", "signal_direction": "BUY"},
		})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	signals, err := client.ListSignals(context.Background(), sdk.SignalsOptions{
		Strategy: "golden_cross", StockID: 7, StartDate: "2024-01-01",
	})
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, "RELIANCE", signals[0].StockSymbol)
	assert.Equal(t, "BUY", signals[0].Direction)
}

func TestGetSignalPerformance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/strategies/signals/performance/", r.URL.Path)
		assert.Equal(t, "golden_cross", r.URL.Query().Get("strategy"))
		writeEnvelope(t, w, map[string]any{
			"strategy": "golden_cross", "total_signals": 40, "win_rate": "62.50",
		})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	perf, err := client.GetSignalPerformance(context.Background(), sdk.SignalsOptions{Strategy: "golden_cross"})
	require.NoError(t, err)
	assert.Equal(t, 40, perf.TotalSignals)
	assert.Equal(t, "62.50", perf.WinRate)
}

func TestCreateRuleBasedStrategy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/strategies/rule-based/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "RSI dip", body["name"])
		rules, ok := body["rules_json"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, rules, "entry")

		writeEnvelope(t, w, map[string]any{"id": 11, "name": "RSI dip", "is_public": false})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	strategy, err := client.CreateRuleBasedStrategy(context.Background(), sdk.RuleBasedInput{
		Name:  "RSI dip",
		Rules: map[string]any{"entry": map[string]any{"indicator": "rsi", "below": 30}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), strategy.ID)
}

func TestCreateRuleBasedStrategy_RequiresRules(t *testing.T) {
	client := sdk.NewClient("http://unused.invalid")
	_, err := client.CreateRuleBasedStrategy(context.Background(), sdk.RuleBasedInput{Name: "empty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid strategy input")
}
