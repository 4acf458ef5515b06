// Package authstore persists login credentials between invocations.
package authstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/papertrade/console/pkg/sdk"
)

// Credential file names per app namespace. The end-user console and the
// admin console keep fully separate sessions.
const (
	UserCredentialsFile  = "credentials.json"
	AdminCredentialsFile = "admin_credentials.json"
)

const configDirName = ".papertrade"

// FileStore implements sdk.CredentialStore using a JSON file.
type FileStore struct {
	path string
}

var _ sdk.CredentialStore = (*FileStore)(nil)

// NewFileStore creates a FileStore for the given credentials file name under
// the user's papertrade config directory.
func NewFileStore(filename string) (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	dir := filepath.Join(home, configDirName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", configDirName, err)
	}
	return &FileStore{path: filepath.Join(dir, filename)}, nil
}

// NewFileStoreAt creates a FileStore at an explicit path. Used when the
// credentials path is overridden via configuration, and by tests.
func NewFileStoreAt(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// SaveCredentials writes the credentials to the file, readable only by the
// owner.
func (s *FileStore) SaveCredentials(creds *sdk.Credentials) error {
	if creds == nil || creds.Token == "" || creds.User == nil {
		return fmt.Errorf("refusing to save incomplete credentials")
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

// LoadCredentials reads the credentials from the file. A missing file means
// not logged in. Sentinel token strings written by broken clients and
// unparseable files are rejected the same way.
func (s *FileStore) LoadCredentials() (*sdk.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sdk.ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	var creds sdk.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}
	if creds.Token == "" || creds.Token == "undefined" || creds.Token == "null" {
		return nil, sdk.ErrNotLoggedIn
	}
	return &creds, nil
}

// DeleteCredentials removes the credentials file. Deleting an absent file is
// a no-op so logout stays idempotent.
func (s *FileStore) DeleteCredentials() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(s.path)
}
