package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/papertrade/console/internal/session"
	"github.com/papertrade/console/pkg/sdk"
)

func TestDecide(t *testing.T) {
	loggedIn := session.State{
		User:          &sdk.User{ID: 1, Email: "a@b.c"},
		Token:         "tok",
		Authenticated: true,
		Initialized:   true,
	}
	loggedOut := session.State{Initialized: true}
	uninitialized := session.State{}

	tests := []struct {
		name  string
		class session.RouteClass
		state session.State
		want  session.Decision
	}{
		{"public logged out", session.RoutePublic, loggedOut, session.Allow},
		{"public logged in", session.RoutePublic, loggedIn, session.Allow},
		{"auth-only logged out", session.RouteAuthOnly, loggedOut, session.Allow},
		{"auth-only logged in", session.RouteAuthOnly, loggedIn, session.RedirectLanding},
		{"private logged out", session.RoutePrivate, loggedOut, session.RedirectLogin},
		{"private logged in", session.RoutePrivate, loggedIn, session.Allow},
		{"public before hydration", session.RoutePublic, uninitialized, session.Wait},
		{"auth-only before hydration", session.RouteAuthOnly, uninitialized, session.Wait},
		{"private before hydration", session.RoutePrivate, uninitialized, session.Wait},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, session.Decide(tt.class, tt.state))
		})
	}
}

func TestDecide_ReEvaluatedAfterTransition(t *testing.T) {
	store := &fakeStore{}
	sess := session.New(store)
	sess.Hydrate()

	assert.Equal(t, session.RedirectLogin, session.Decide(session.RoutePrivate, sess.State()))

	assert.NoError(t, sess.SetCredentials(&sdk.User{ID: 1, Email: "a@b.c"}, "tok"))
	assert.Equal(t, session.Allow, session.Decide(session.RoutePrivate, sess.State()))
	assert.Equal(t, session.RedirectLanding, session.Decide(session.RouteAuthOnly, sess.State()))

	assert.NoError(t, sess.Logout())
	assert.Equal(t, session.RedirectLogin, session.Decide(session.RoutePrivate, sess.State()))
	assert.Equal(t, session.Allow, session.Decide(session.RouteAuthOnly, sess.State()))
}
