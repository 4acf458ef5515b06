package session_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertrade/console/internal/session"
	"github.com/papertrade/console/pkg/sdk"
)

// fakeStore is an in-memory CredentialStore with fault injection.
type fakeStore struct {
	mu      sync.Mutex
	creds   *sdk.Credentials
	loadErr error
	saveErr error
	deletes int
}

func (f *fakeStore) SaveCredentials(creds *sdk.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.creds = creds
	return nil
}

func (f *fakeStore) LoadCredentials() (*sdk.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.creds == nil {
		return nil, sdk.ErrNotLoggedIn
	}
	return f.creds, nil
}

func (f *fakeStore) DeleteCredentials() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	f.creds = nil
	return nil
}

func (f *fakeStore) current() *sdk.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creds
}

func TestSession_StartsUninitialized(t *testing.T) {
	sess := session.New(&fakeStore{})

	st := sess.State()
	assert.False(t, st.Initialized)
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
}

func TestSession_Hydrate(t *testing.T) {
	tests := []struct {
		name       string
		store      *fakeStore
		wantAuth   bool
		wantPurged bool
	}{
		{
			name: "valid record authenticates",
			store: &fakeStore{creds: &sdk.Credentials{
				Token: "tok", User: &sdk.User{ID: 3, Email: "trader@example.com"},
			}},
			wantAuth: true,
		},
		{
			name:       "empty store stays logged out",
			store:      &fakeStore{},
			wantAuth:   false,
			wantPurged: true,
		},
		{
			name:       "unreadable record purges the store",
			store:      &fakeStore{loadErr: errors.New("corrupt")},
			wantAuth:   false,
			wantPurged: true,
		},
		{
			name: "partial record purges the store",
			store: &fakeStore{creds: &sdk.Credentials{
				Token: "tok",
			}},
			wantAuth:   false,
			wantPurged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.New(tt.store)
			sess.Hydrate()

			st := sess.State()
			assert.True(t, st.Initialized)
			assert.Equal(t, tt.wantAuth, st.Authenticated)
			if tt.wantAuth {
				require.NotNil(t, st.User)
				assert.NotEmpty(t, st.Token)
			} else {
				assert.Nil(t, st.User)
				assert.Empty(t, st.Token)
			}
			if tt.wantPurged {
				assert.GreaterOrEqual(t, tt.store.deletes, 1)
			}
		})
	}
}

func TestSession_HydrateIdempotent(t *testing.T) {
	store := &fakeStore{creds: &sdk.Credentials{
		Token: "tok", User: &sdk.User{ID: 3, Email: "trader@example.com"},
	}}
	sess := session.New(store)

	sess.Hydrate()
	first := sess.State()
	sess.Hydrate()
	second := sess.State()

	assert.Equal(t, first, second)
	assert.NotNil(t, store.current())
}

func TestSession_SetCredentials(t *testing.T) {
	store := &fakeStore{}
	sess := session.New(store)

	user := &sdk.User{ID: 3, Email: "trader@example.com"}
	require.NoError(t, sess.SetCredentials(user, "tok"))

	st := sess.State()
	assert.True(t, st.Initialized)
	assert.True(t, st.Authenticated)
	assert.Equal(t, "tok", st.Token)
	assert.Equal(t, user, st.User)

	// The record is persisted, not just held in memory.
	require.NotNil(t, store.current())
	assert.Equal(t, "tok", store.current().Token)
}

func TestSession_SetCredentialsRejectsPartial(t *testing.T) {
	sess := session.New(&fakeStore{})

	assert.Error(t, sess.SetCredentials(nil, "tok"))
	assert.Error(t, sess.SetCredentials(&sdk.User{ID: 1}, ""))
	assert.False(t, sess.State().Authenticated)
}

func TestSession_SetCredentialsPersistFailure(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	sess := session.New(store)

	err := sess.SetCredentials(&sdk.User{ID: 1, Email: "a@b.c"}, "tok")
	require.Error(t, err)

	// The in-memory state never runs ahead of the persisted record.
	assert.False(t, sess.State().Authenticated)
}

func TestSession_Logout(t *testing.T) {
	store := &fakeStore{creds: &sdk.Credentials{
		Token: "tok", User: &sdk.User{ID: 3, Email: "trader@example.com"},
	}}
	sess := session.New(store)
	sess.Hydrate()
	require.True(t, sess.State().Authenticated)

	require.NoError(t, sess.Logout())

	st := sess.State()
	assert.True(t, st.Initialized)
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	assert.Nil(t, store.current())

	// Logging out twice is fine.
	require.NoError(t, sess.Logout())
}

func TestSession_AuthenticatedImpliesUserAndToken(t *testing.T) {
	store := &fakeStore{}
	sess := session.New(store)

	sess.Hydrate()
	st := sess.State()
	assert.False(t, st.Authenticated)

	require.NoError(t, sess.SetCredentials(&sdk.User{ID: 1, Email: "a@b.c"}, "tok"))
	st = sess.State()
	assert.True(t, st.Authenticated)
	assert.NotNil(t, st.User)
	assert.NotEmpty(t, st.Token)

	require.NoError(t, sess.Logout())
	st = sess.State()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
}
