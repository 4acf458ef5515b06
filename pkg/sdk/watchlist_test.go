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

func TestBulkUpdateWatchlist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/watchlist/bulk_update/", r.URL.Path)

		var body map[string][]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []int64{3, 9}, body["add"])
		assert.Equal(t, []int64{14}, body["remove"])

		writeEnvelope(t, w, nil)
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	err := client.BulkUpdateWatchlist(context.Background(), []int64{3, 9}, []int64{14})
	require.NoError(t, err)
}
