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

func TestListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin-panel/users/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("page_size"))
		assert.Equal(t, "email", r.URL.Query().Get("sort_by"))
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		writeEnvelope(t, w, map[string]any{
			"users": []map[string]any{
				{"id": 1, "email": "a@example.com", "role": "user", "is_active": true},
				{"id": 2, "email": "b@example.com", "role": "user", "is_active": false},
			},
			"pagination": map[string]any{
				"total_count": 12, "total_pages": 2, "current_page": 2, "page_size": 10,
			},
		})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	page, err := client.ListUsers(context.Background(), sdk.PageOptions{
		Page: 2, PageSize: 10, SortBy: "email", Order: "desc",
	})
	require.NoError(t, err)
	require.Len(t, page.Users, 2)
	assert.Equal(t, "a@example.com", page.Users[0].Email)
	assert.False(t, page.Users[1].IsActive)
	assert.Equal(t, 12, page.Pagination.TotalCount)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
}

func TestToggleUserStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin-panel/users/5/toggle-status/", r.URL.Path)
		writeEnvelope(t, w, map[string]any{"id": 5, "email": "a@example.com", "role": "user", "is_active": false})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	user, err := client.ToggleUserStatus(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.False(t, user.IsActive)
}

func TestCreateAdmin_RejectsBadRole(t *testing.T) {
	client := sdk.NewClient("http://unused.invalid")
	_, err := client.CreateAdmin(context.Background(), sdk.AdminCreateInput{
		Email:    "ops@example.com",
		Password: "longenough",
		Name:     "Ops",
		Role:     "root",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid admin input")
}

func TestUpdateAdmin_OmitsUnsetFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin-panel/admins/3/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"is_active": false}, body)

		writeEnvelope(t, w, map[string]any{"id": 3, "email": "mod@example.com", "role": "moderator", "is_active": false})
	}))
	defer server.Close()

	inactive := false
	client := sdk.NewClient(server.URL)
	admin, err := client.UpdateAdmin(context.Background(), 3, sdk.AdminUpdateInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, admin.IsActive)
}

func TestUpdateConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin-panel/config/market_open/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"value": "09:15"}, body)

		writeEnvelope(t, w, map[string]any{"key": "market_open", "value": "09:15"})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	entry, err := client.UpdateConfig(context.Background(), "market_open", "09:15")
	require.NoError(t, err)
	assert.Equal(t, "market_open", entry.Key)
	assert.Equal(t, "09:15", entry.Value)
}
