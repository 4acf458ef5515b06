package cliutil

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/papertrade/console/internal/authstore"
	"github.com/papertrade/console/internal/config"
	"github.com/papertrade/console/internal/session"
	"github.com/papertrade/console/pkg/sdk"
)

// Provider lazily builds the credential store, session, SDK client and
// verifier for one app namespace. Everything is constructed once and shared
// by all commands of the invocation.
type Provider struct {
	cfg    *config.Config
	admin  bool
	logger zerolog.Logger

	initOnce sync.Once
	initErr  error
	store    *authstore.FileStore
	session  *session.Session
	client   *sdk.Client
	verifier *session.Verifier
}

// NewProvider constructs a provider. admin selects the admin credential
// namespace and the admin auth endpoints.
func NewProvider(cfg *config.Config, admin bool, logger zerolog.Logger) *Provider {
	return &Provider{cfg: cfg, admin: admin, logger: logger}
}

func (p *Provider) init() error {
	p.initOnce.Do(func() {
		filename := authstore.UserCredentialsFile
		if p.admin {
			filename = authstore.AdminCredentialsFile
		}

		var store *authstore.FileStore
		var err error
		if p.cfg.CredentialsPath != "" {
			store, err = authstore.NewFileStoreAt(p.cfg.CredentialsPath)
		} else {
			store, err = authstore.NewFileStore(filename)
		}
		if err != nil {
			p.initErr = fmt.Errorf("failed to create credential store: %w", err)
			return
		}
		p.store = store
		p.session = session.New(store)

		// The 401 interceptor clears the store itself; the hook folds the
		// in-memory session into the same teardown.
		p.client = sdk.NewClient(p.cfg.APIBase,
			sdk.WithCredentialStore(store),
			sdk.WithUnauthorizedHook(func() { _ = p.session.Logout() }),
			sdk.WithLogger(p.logger),
		)

		profile := p.client.Profile
		if p.admin {
			profile = p.client.AdminProfile
		}
		p.verifier = session.NewVerifier(p.session, profile, p.logger)
	})
	return p.initErr
}

// Session returns the shared session.
func (p *Provider) Session() (*session.Session, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	return p.session, nil
}

// Client returns the configured SDK client.
func (p *Provider) Client() (*sdk.Client, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	return p.client, nil
}

// Store returns the persisted credential store.
func (p *Provider) Store() (sdk.CredentialStore, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	return p.store, nil
}

// Verifier returns the session verifier.
func (p *Provider) Verifier() (*session.Verifier, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	return p.verifier, nil
}
