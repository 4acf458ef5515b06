package sdk

import (
	"context"
	"fmt"
)

// LoginInput authenticates an existing account.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupInput registers a new end-user account. A trial subscription is
// assigned server-side.
type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ProfileUpdateInput carries the mutable profile fields.
type ProfileUpdateInput struct {
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// loginData is the payload of a successful login/signup envelope.
type loginData struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Login exchanges email/password for a bearer token and the user record.
// The caller decides whether to persist the returned credentials.
func (c *Client) Login(ctx context.Context, input LoginInput) (*Credentials, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid login input: %w", err)
	}
	var data loginData
	if err := c.post(ctx, "/auth/login", input, &data); err != nil {
		return nil, err
	}
	if data.User == nil || data.Token == "" {
		return nil, fmt.Errorf("login response missing user or token")
	}
	return &Credentials{Token: data.Token, User: data.User}, nil
}

// Signup creates an account and returns its first credentials.
func (c *Client) Signup(ctx context.Context, input SignupInput) (*Credentials, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid signup input: %w", err)
	}
	var data loginData
	if err := c.post(ctx, "/auth/signup", input, &data); err != nil {
		return nil, err
	}
	if data.User == nil || data.Token == "" {
		return nil, fmt.Errorf("signup response missing user or token")
	}
	return &Credentials{Token: data.Token, User: data.User}, nil
}

// Profile fetches the authenticated user. The session verifier uses this as
// its validity probe; any error means the session must be treated as invalid.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the authenticated user and returns the new record.
func (c *Client) UpdateProfile(ctx context.Context, input ProfileUpdateInput) (*User, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid profile input: %w", err)
	}
	var user User
	if err := c.put(ctx, "/auth/profile/update", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
