package authstore_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertrade/console/internal/authstore"
	"github.com/papertrade/console/pkg/sdk"
)

func newStore(t *testing.T) *authstore.FileStore {
	t.Helper()
	store, err := authstore.NewFileStoreAt(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, err)
	return store
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newStore(t)

	saved := &sdk.Credentials{
		Token: "tok-abc",
		User:  &sdk.User{ID: 3, Email: "trader@example.com", Role: "user"},
	}
	require.NoError(t, store.SaveCredentials(saved))

	loaded, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, saved.Token, loaded.Token)
	require.NotNil(t, loaded.User)
	assert.Equal(t, saved.User.Email, loaded.User.Email)
	assert.Equal(t, saved.User.Role, loaded.User.Role)
}

func TestFileStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix file modes")
	}
	path := filepath.Join(t.TempDir(), "credentials.json")
	store, err := authstore.NewFileStoreAt(path)
	require.NoError(t, err)

	require.NoError(t, store.SaveCredentials(&sdk.Credentials{
		Token: "tok", User: &sdk.User{ID: 1, Email: "a@b.c"},
	}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := newStore(t)

	_, err := store.LoadCredentials()
	assert.ErrorIs(t, err, sdk.ErrNotLoggedIn)
}

func TestFileStore_SaveIncomplete(t *testing.T) {
	store := newStore(t)

	tests := []struct {
		name  string
		creds *sdk.Credentials
	}{
		{name: "nil", creds: nil},
		{name: "no token", creds: &sdk.Credentials{User: &sdk.User{ID: 1}}},
		{name: "no user", creds: &sdk.Credentials{Token: "tok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.SaveCredentials(tt.creds))
		})
	}
}

func TestFileStore_LoadRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name          string
		contents      string
		wantNotLogged bool
	}{
		{
			name:          "sentinel undefined token",
			contents:      `{"token":"undefined","user":{"id":1,"email":"a@b.c"}}`,
			wantNotLogged: true,
		},
		{
			name:          "sentinel null token",
			contents:      `{"token":"null","user":{"id":1,"email":"a@b.c"}}`,
			wantNotLogged: true,
		},
		{
			name:          "empty token",
			contents:      `{"token":"","user":{"id":1,"email":"a@b.c"}}`,
			wantNotLogged: true,
		},
		{
			name:     "corrupt json",
			contents: `{"token":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "credentials.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0600))
			store, err := authstore.NewFileStoreAt(path)
			require.NoError(t, err)

			_, err = store.LoadCredentials()
			require.Error(t, err)
			if tt.wantNotLogged {
				assert.ErrorIs(t, err, sdk.ErrNotLoggedIn)
			}
		})
	}
}

func TestFileStore_DeleteIdempotent(t *testing.T) {
	store := newStore(t)

	// Deleting before anything was saved is a no-op.
	require.NoError(t, store.DeleteCredentials())

	require.NoError(t, store.SaveCredentials(&sdk.Credentials{
		Token: "tok", User: &sdk.User{ID: 1, Email: "a@b.c"},
	}))
	require.NoError(t, store.DeleteCredentials())
	require.NoError(t, store.DeleteCredentials())

	_, err := store.LoadCredentials()
	assert.ErrorIs(t, err, sdk.ErrNotLoggedIn)
}
