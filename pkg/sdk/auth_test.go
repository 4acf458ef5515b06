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

func TestClient_Login(t *testing.T) {
	tests := []struct {
		name      string
		input     sdk.LoginInput
		handler   http.HandlerFunc
		wantErr   string
		wantToken string
		wantEmail string
	}{
		{
			name:  "success",
			input: sdk.LoginInput{Email: "trader@example.com", Password: "hunter22"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				var body sdk.LoginInput
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "trader@example.com", body.Email)
				writeEnvelope(t, w, map[string]any{
					"user":  map[string]any{"id": 3, "email": "trader@example.com", "role": "user"},
					"token": "issued-token",
				})
			},
			wantToken: "issued-token",
			wantEmail: "trader@example.com",
		},
		{
			name:    "missing email rejected before send",
			input:   sdk.LoginInput{Password: "hunter22"},
			wantErr: "invalid login input",
		},
		{
			name:    "malformed email rejected before send",
			input:   sdk.LoginInput{Email: "not-an-email", Password: "hunter22"},
			wantErr: "invalid login input",
		},
		{
			name:  "wrong password",
			input: sdk.LoginInput{Email: "trader@example.com", Password: "wrong"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"status":"error","message":"Invalid credentials"}`))
			},
			wantErr: "Invalid credentials",
		},
		{
			name:  "response missing token",
			input: sdk.LoginInput{Email: "trader@example.com", Password: "hunter22"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, map[string]any{
					"user": map[string]any{"id": 3, "email": "trader@example.com"},
				})
			},
			wantErr: "missing user or token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := tt.handler
			if handler == nil {
				handler = func(w http.ResponseWriter, r *http.Request) {
					t.Error("request must not reach the server")
				}
			}
			server := httptest.NewServer(handler)
			defer server.Close()

			client := sdk.NewClient(server.URL)
			creds, err := client.Login(context.Background(), tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, creds.Token)
			require.NotNil(t, creds.User)
			assert.Equal(t, tt.wantEmail, creds.User.Email)
		})
	}
}

func TestClient_Signup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signup", r.URL.Path)
		writeEnvelope(t, w, map[string]any{
			"user":  map[string]any{"id": 9, "email": "new@example.com", "role": "user"},
			"token": "first-token",
		})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)

	// Short passwords never reach the server.
	_, err := client.Signup(context.Background(), sdk.SignupInput{
		Email: "new@example.com", Password: "short",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid signup input")

	creds, err := client.Signup(context.Background(), sdk.SignupInput{
		Email: "new@example.com", Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, "first-token", creds.Token)
	assert.Equal(t, "new@example.com", creds.User.Email)
}

func TestClient_AdminLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin-panel/auth/login/", r.URL.Path)
		writeEnvelope(t, w, map[string]any{
			"user":  map[string]any{"id": 1, "email": "ops@example.com", "role": "superadmin"},
			"token": "admin-token",
		})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	creds, err := client.AdminLogin(context.Background(), sdk.LoginInput{
		Email: "ops@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin-token", creds.Token)
	assert.Equal(t, "superadmin", creds.User.Role)
}

func TestClient_Profile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/profile", r.URL.Path)
		writeEnvelope(t, w, map[string]any{
			"id": 3, "email": "trader@example.com", "role": "user",
			"wallet_balance": "10000.00", "is_trial_active": true, "trial_days_left": 5,
		})
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	user, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10000.00", user.WalletBalance)
	require.NotNil(t, user.IsTrialActive)
	assert.True(t, *user.IsTrialActive)
	require.NotNil(t, user.TrialDaysLeft)
	assert.Equal(t, 5, *user.TrialDaysLeft)
}
