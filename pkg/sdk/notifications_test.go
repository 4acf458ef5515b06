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

func TestCreateBroadcast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notifications/broadcasts/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Maintenance window", body["title"])
		assert.Equal(t, "warning", body["notification_type"])
		assert.Equal(t, "all", body["target_audience"])
		assert.NotContains(t, body, "target_plan")

		writeEnvelope(t, w, map[string]any{"id": 4, "title": "Maintenance window", "notification_type": "warning", "target_audience": "all"})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	broadcast, err := client.CreateBroadcast(context.Background(), sdk.BroadcastInput{
		Title:            "Maintenance window",
		Message:          "Trading pauses at 20:00 IST.",
		NotificationType: "warning",
		TargetAudience:   "all",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), broadcast.ID)
}

func TestCreateBroadcast_PlanAudienceRequiresPlan(t *testing.T) {
	client := sdk.NewClient("http://unused.invalid")
	_, err := client.CreateBroadcast(context.Background(), sdk.BroadcastInput{
		Title:            "Pro perk",
		Message:          "New feature for pro users.",
		NotificationType: "info",
		TargetAudience:   "plan",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid broadcast input")
}
