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

func TestClient_UnauthorizedTeardown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","code":"UNAUTHORIZED","message":"Token expired"}`))
	}))
	defer server.Close()

	store := &memStore{creds: &sdk.Credentials{
		Token: "stale", User: &sdk.User{ID: 1, Email: "a@b.c"},
	}}
	hookCalls := 0
	client := sdk.NewClient(server.URL,
		sdk.WithCredentialStore(store),
		sdk.WithUnauthorizedHook(func() { hookCalls++ }),
	)

	_, err := client.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, sdk.IsUnauthorized(err))

	// One 401 clears the store and fires the hook exactly once.
	assert.Nil(t, store.current())
	assert.Equal(t, 1, hookCalls)

	// A second 401 runs the same teardown again without error.
	_, err = client.Profile(context.Background())
	require.Error(t, err)
	assert.Nil(t, store.current())
	assert.Equal(t, 2, hookCalls)
}

func TestClient_UnauthorizedFromAnyEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","message":"Token expired"}`))
	}))
	defer server.Close()

	store := &memStore{creds: &sdk.Credentials{
		Token: "stale", User: &sdk.User{ID: 1, Email: "a@b.c"},
	}}
	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))

	// A domain call, not just the profile probe, triggers the teardown.
	_, err := client.ListWatchlist(context.Background())
	require.Error(t, err)
	assert.True(t, sdk.IsUnauthorized(err))
	assert.Nil(t, store.current())
}

func TestClient_NonUnauthorizedKeepsCredentials(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "forbidden", status: http.StatusForbidden},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"status":"error","message":"nope"}`))
			}))
			defer server.Close()

			store := &memStore{creds: &sdk.Credentials{
				Token: "tok", User: &sdk.User{ID: 1, Email: "a@b.c"},
			}}
			hookCalls := 0
			client := sdk.NewClient(server.URL,
				sdk.WithCredentialStore(store),
				sdk.WithUnauthorizedHook(func() { hookCalls++ }),
			)

			_, err := client.ListWatchlist(context.Background())
			require.Error(t, err)
			assert.False(t, sdk.IsUnauthorized(err))
			assert.NotNil(t, store.current())
			assert.Zero(t, hookCalls)
		})
	}
}

func TestClient_TransportErrorKeepsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	store := &memStore{creds: &sdk.Credentials{
		Token: "tok", User: &sdk.User{ID: 1, Email: "a@b.c"},
	}}
	hookCalls := 0
	client := sdk.NewClient(server.URL,
		sdk.WithCredentialStore(store),
		sdk.WithUnauthorizedHook(func() { hookCalls++ }),
	)

	_, err := client.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, sdk.IsTransient(err))
	assert.NotNil(t, store.current())
	assert.Zero(t, hookCalls)
}

func TestStoreTokenSource(t *testing.T) {
	tests := []struct {
		name      string
		store     sdk.CredentialStore
		wantToken string
	}{
		{
			name:      "nil store",
			store:     nil,
			wantToken: "",
		},
		{
			name:      "empty store",
			store:     &memStore{},
			wantToken: "",
		},
		{
			name: "valid token",
			store: &memStore{creds: &sdk.Credentials{
				Token: "tok", User: &sdk.User{ID: 1},
			}},
			wantToken: "tok",
		},
		{
			name: "sentinel token",
			store: &memStore{creds: &sdk.Credentials{
				Token: "undefined", User: &sdk.User{ID: 1},
			}},
			wantToken: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &sdk.StoreTokenSource{Store: tt.store}
			tok, err := source.Token()
			require.NoError(t, err)
			if tt.wantToken == "" {
				assert.Nil(t, tok)
			} else {
				require.NotNil(t, tok)
				assert.Equal(t, tt.wantToken, tok.AccessToken)
				assert.Equal(t, "Bearer", tok.TokenType)
			}
		})
	}
}
