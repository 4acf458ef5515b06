package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertrade/console/pkg/sdk"
)

// memStore is an in-memory CredentialStore for tests.
type memStore struct {
	mu    sync.Mutex
	creds *sdk.Credentials
}

func (m *memStore) SaveCredentials(creds *sdk.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = creds
	return nil
}

func (m *memStore) LoadCredentials() (*sdk.Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.creds == nil {
		return nil, sdk.ErrNotLoggedIn
	}
	return m.creds, nil
}

func (m *memStore) DeleteCredentials() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = nil
	return nil
}

func (m *memStore) current() *sdk.Credentials {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creds
}

// writeEnvelope writes a success envelope with the given data payload.
func writeEnvelope(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	resp := map[string]any{
		"status":    "success",
		"data":      json.RawMessage(raw),
		"timestamp": "2025-01-01T00:00:00Z",
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestClient_EnvelopeDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/profile", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeEnvelope(t, w, map[string]any{"id": 7, "email": "trader@example.com", "role": "user"})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	user, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "trader@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
}

func TestClient_BearerToken(t *testing.T) {
	tests := []struct {
		name       string
		stored     *sdk.Credentials
		wantHeader string
	}{
		{
			name:       "token attached",
			stored:     &sdk.Credentials{Token: "tok-123", User: &sdk.User{ID: 1, Email: "a@b.c"}},
			wantHeader: "Bearer tok-123",
		},
		{
			name:       "no credentials sends no header",
			stored:     nil,
			wantHeader: "",
		},
		{
			name:       "sentinel undefined sends no header",
			stored:     &sdk.Credentials{Token: "undefined", User: &sdk.User{ID: 1}},
			wantHeader: "",
		},
		{
			name:       "sentinel null sends no header",
			stored:     &sdk.Credentials{Token: "null", User: &sdk.User{ID: 1}},
			wantHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHeader string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("Authorization")
				writeEnvelope(t, w, []any{})
			}))
			defer server.Close()

			store := &memStore{creds: tt.stored}
			client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))
			_, err := client.ListStocks(context.Background(), sdk.ListStocksOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, gotHeader)
		})
	}
}

func TestClient_TokenReadPerRequest(t *testing.T) {
	var headers []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		writeEnvelope(t, w, []any{})
	}))
	defer server.Close()

	store := &memStore{}
	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))

	_, err := client.ListStocks(context.Background(), sdk.ListStocksOptions{})
	require.NoError(t, err)

	// A token written by another process is picked up on the next call.
	require.NoError(t, store.SaveCredentials(&sdk.Credentials{
		Token: "fresh", User: &sdk.User{ID: 1, Email: "a@b.c"},
	}))
	_, err = client.ListStocks(context.Background(), sdk.ListStocksOptions{})
	require.NoError(t, err)

	require.Len(t, headers, 2)
	assert.Empty(t, headers[0])
	assert.Equal(t, "Bearer fresh", headers[1])
}

func TestClient_APIErrorDecoding(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "envelope error",
			status:      http.StatusBadRequest,
			body:        `{"status":"error","code":"INVALID_INPUT","message":"Quantity must be positive"}`,
			wantCode:    "INVALID_INPUT",
			wantMessage: "Quantity must be positive",
		},
		{
			name:   "non-envelope body still yields status",
			status: http.StatusBadGateway,
			body:   `upstream exploded`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := sdk.NewClient(server.URL)
			_, err := client.Profile(context.Background())
			require.Error(t, err)

			var apiErr *sdk.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.HTTPStatus)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.False(t, sdk.IsTransient(err))
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := sdk.NewClient(server.URL)
	_, err := client.Profile(context.Background())
	require.Error(t, err)

	var apiErr *sdk.APIError
	assert.NotErrorAs(t, err, &apiErr)
	assert.True(t, sdk.IsTransient(err))
	assert.False(t, sdk.IsUnauthorized(err))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "envelope message",
			err:  &sdk.APIError{HTTPStatus: 400, Message: "Invalid coupon code"},
			want: "Invalid coupon code",
		},
		{
			name: "blank message falls back",
			err:  &sdk.APIError{HTTPStatus: 500},
			want: "Something went wrong. Please try again.",
		},
		{
			name: "transport error falls back",
			err:  context.DeadlineExceeded,
			want: "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sdk.ErrorMessage(tt.err))
		})
	}
}
