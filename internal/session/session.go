// Package session owns the in-memory auth state shared by every command.
//
// The session is mutated only through its three transitions: Hydrate,
// SetCredentials and Logout. The 401 interceptor in the SDK clears the
// persisted store on its own, but even that path reaches the in-memory state
// through Logout via the unauthorized hook. No other component writes either
// resource.
package session

import (
	"fmt"
	"sync"

	"github.com/papertrade/console/pkg/sdk"
)

// State is an immutable snapshot of the session.
type State struct {
	User          *sdk.User
	Token         string
	Authenticated bool
	Initialized   bool
}

// Session holds the auth state for one app namespace.
type Session struct {
	mu            sync.Mutex
	store         sdk.CredentialStore
	user          *sdk.User
	token         string
	authenticated bool
	initialized   bool
}

// New creates an uninitialized session backed by the given store.
func New(store sdk.CredentialStore) *Session {
	return &Session{store: store}
}

// State returns a snapshot. Authenticated is true exactly when both user and
// token are present; Initialized is true once the first Hydrate (or any later
// transition) has completed and never reverts.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		User:          s.user,
		Token:         s.token,
		Authenticated: s.authenticated,
		Initialized:   s.initialized,
	}
}

// Hydrate populates the session from the persisted store. Absent, partial or
// unparseable records purge the store and leave the logged-out state. In all
// cases the session ends up initialized. Safe to call more than once.
func (s *Session) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.initialized = true }()

	creds, err := s.store.LoadCredentials()
	if err != nil || creds == nil || creds.User == nil || creds.Token == "" {
		// Purge whatever is there; deleting an absent record is a no-op.
		_ = s.store.DeleteCredentials()
		s.user = nil
		s.token = ""
		s.authenticated = false
		return
	}
	s.user = creds.User
	s.token = creds.Token
	s.authenticated = true
}

// SetCredentials moves the session to the authenticated state and persists
// the record. Used after a successful login or signup.
func (s *Session) SetCredentials(user *sdk.User, token string) error {
	if user == nil || token == "" {
		return fmt.Errorf("both user and token are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveCredentials(&sdk.Credentials{Token: token, User: user}); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}
	s.user = user
	s.token = token
	s.authenticated = true
	s.initialized = true
	return nil
}

// Logout moves the session to the logged-out state and deletes the persisted
// record. Used on explicit logout and whenever the session is found invalid.
// Idempotent.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.initialized = true
	if err := s.store.DeleteCredentials(); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}
