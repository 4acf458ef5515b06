package sdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials is the persisted login record: the backend-issued bearer token
// plus the user it was issued to.
type Credentials struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CredentialStore persists credentials between invocations. The SDK only
// defines the contract; the frontends provide the file-backed implementation.
type CredentialStore interface {
	SaveCredentials(*Credentials) error
	LoadCredentials() (*Credentials, error)
	DeleteCredentials() error
}

// Expired reports whether the token's exp claim is in the past. The token is
// parsed without signature verification; validity is always the server's call,
// this only short-circuits the obvious case before a round-trip.
func (c *Credentials) Expired() bool {
	if c == nil || c.Token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.Token, claims); err != nil {
		// Opaque token, let the server decide.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}
