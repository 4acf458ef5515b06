package sdk

import (
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Sentinel token strings written by broken clients. Treated as missing.
const (
	tokenUndefined = "undefined"
	tokenNull      = "null"
)

// StoreTokenSource adapts a CredentialStore to oauth2.TokenSource. The store
// is consulted on every request so a token written or cleared by another
// process is picked up without restarting.
//
// A missing, sentinel, or unreadable token yields (nil, nil) rather than an
// error: unauthenticated requests go out without an Authorization header and
// the server makes the call.
type StoreTokenSource struct {
	Store CredentialStore
}

var _ oauth2.TokenSource = (*StoreTokenSource)(nil)

func (s *StoreTokenSource) Token() (*oauth2.Token, error) {
	if s.Store == nil {
		return nil, nil
	}
	creds, err := s.Store.LoadCredentials()
	if err != nil || creds == nil {
		return nil, nil
	}
	if creds.Token == "" || creds.Token == tokenUndefined || creds.Token == tokenNull {
		return nil, nil
	}
	return &oauth2.Token{AccessToken: creds.Token, TokenType: "Bearer"}, nil
}

// authorize is the request decorator: it stamps a request ID and attaches the
// bearer token when one is available.
func (c *Client) authorize(req *http.Request) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens == nil {
		return
	}
	tok, err := c.tokens.Token()
	if err != nil || tok == nil || tok.AccessToken == "" {
		return
	}
	tok.SetAuthHeader(req)
}

// interceptUnauthorized is the response decorator: a 401 from any endpoint
// tears the session down. The credential store is cleared first so that the
// teardown does not depend on in-memory state, then the configured hook runs
// exactly once for this response. Both steps are idempotent, so a racing
// profile check and domain call clearing together is harmless.
func (c *Client) interceptUnauthorized(status int) {
	if status != http.StatusUnauthorized {
		return
	}
	if c.store != nil {
		_ = c.store.DeleteCredentials()
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}
