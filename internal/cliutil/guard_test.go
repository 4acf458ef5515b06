package cliutil_test

import (
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/internal/session"
	"github.com/papertrade/console/pkg/sdk"
)

type fakeStore struct {
	mu    sync.Mutex
	creds *sdk.Credentials
}

func (f *fakeStore) SaveCredentials(creds *sdk.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creds = creds
	return nil
}

func (f *fakeStore) LoadCredentials() (*sdk.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.creds == nil {
		return nil, sdk.ErrNotLoggedIn
	}
	return f.creds, nil
}

func (f *fakeStore) DeleteCredentials() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creds = nil
	return nil
}

func TestClassify(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	authParent := &cobra.Command{Use: "auth"}
	login := &cobra.Command{Use: "login"}
	logout := &cobra.Command{Use: "logout"}
	stocksList := &cobra.Command{Use: "list"}
	stocksParent := &cobra.Command{Use: "stocks"}
	help := &cobra.Command{Use: "help"}

	cliutil.MarkAuthOnly(login)
	cliutil.MarkPublic(logout)

	authParent.AddCommand(login, logout)
	stocksParent.AddCommand(stocksList)
	root.AddCommand(authParent, stocksParent, help)

	tests := []struct {
		name string
		cmd  *cobra.Command
		want session.RouteClass
	}{
		{"login is auth-only", login, session.RouteAuthOnly},
		{"logout is public", logout, session.RoutePublic},
		{"unannotated command is private", stocksList, session.RoutePrivate},
		{"unannotated parent is private", stocksParent, session.RoutePrivate},
		{"help is public", help, session.RoutePublic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cliutil.Classify(tt.cmd))
		})
	}
}

func TestClassify_InheritsFromParent(t *testing.T) {
	parent := &cobra.Command{Use: "auth"}
	child := &cobra.Command{Use: "login"}
	cliutil.MarkAuthOnly(parent)
	parent.AddCommand(child)

	assert.Equal(t, session.RouteAuthOnly, cliutil.Classify(child))
}

func TestGate(t *testing.T) {
	login := "tradectl auth login"
	logout := "tradectl auth logout"

	tests := []struct {
		name    string
		creds   *sdk.Credentials
		class   session.RouteClass
		wantErr string
	}{
		{
			name:  "private allowed when logged in",
			creds: &sdk.Credentials{Token: "tok", User: &sdk.User{ID: 1, Email: "a@b.c"}},
			class: session.RoutePrivate,
		},
		{
			name:    "private refused when logged out",
			class:   session.RoutePrivate,
			wantErr: `not logged in; run "tradectl auth login" first`,
		},
		{
			name:    "auth-only refused when logged in",
			creds:   &sdk.Credentials{Token: "tok", User: &sdk.User{ID: 1, Email: "a@b.c"}},
			class:   session.RouteAuthOnly,
			wantErr: `already logged in as a@b.c; run "tradectl auth logout" first`,
		},
		{
			name:  "auth-only allowed when logged out",
			class: session.RouteAuthOnly,
		},
		{
			name:  "public always allowed",
			creds: &sdk.Credentials{Token: "tok", User: &sdk.User{ID: 1, Email: "a@b.c"}},
			class: session.RoutePublic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.New(&fakeStore{creds: tt.creds})

			err := cliutil.Gate(sess, tt.class, login, logout)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)

			// Gate hydrates on first use.
			assert.True(t, sess.State().Initialized)
		})
	}
}
