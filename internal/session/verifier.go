package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/papertrade/console/pkg/sdk"
)

// ErrSessionInvalid means the stored session failed its validity probe and
// has been torn down. The user must log in again.
var ErrSessionInvalid = errors.New("session invalid")

// ProfileFunc probes the backend for the authenticated user. The end-user and
// admin consoles supply their respective profile endpoints.
type ProfileFunc func(ctx context.Context) (*sdk.User, error)

// Verifier re-validates an authenticated session against the profile
// endpoint. The SDK's 401 interceptor only reacts to explicit 401s; the
// verifier adds the fail-closed layer for revoked tokens, missing users and
// non-401 failure modes.
type Verifier struct {
	session *Session
	profile ProfileFunc
	logger  zerolog.Logger
}

// NewVerifier creates a verifier for the given session.
func NewVerifier(session *Session, profile ProfileFunc, logger zerolog.Logger) *Verifier {
	return &Verifier{session: session, profile: profile, logger: logger}
}

// Verify is a no-op while logged out. Otherwise it probes the profile
// endpoint and treats any failure, whether 401, 404, network error or
// timeout, as a dead session: log out and report ErrSessionInvalid.
func (v *Verifier) Verify(ctx context.Context) error {
	if !v.session.State().Authenticated {
		return nil
	}
	if _, err := v.profile(ctx); err != nil {
		v.logger.Warn().Err(err).Msg("session verification failed, logging out")
		// The 401 interceptor may already have cleared the store; Logout is
		// idempotent so the double teardown is harmless.
		_ = v.session.Logout()
		return fmt.Errorf("%w: %s", ErrSessionInvalid, sdk.ErrorMessage(err))
	}
	return nil
}
