// Package credentials manages the Slippi user credential file (user.json)
// that Dolphin reads for online play.
package credentials

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/RucksP/slippi-launcher/internal/system"
)

// User holds the contents of user.json.
type User struct {
	UID         string `json:"uid"`
	PlayKey     string `json:"playKey"`
	ConnectCode string `json:"connectCode"`
	DisplayName string `json:"displayName,omitempty"`
	LatestVer   string `json:"latestVersion,omitempty"`
}

// Validate checks the fields Dolphin requires for online play.
func (u *User) Validate() error {
	if u.UID == "" {
		return fmt.Errorf("uid is required")
	}
	if u.PlayKey == "" {
		return fmt.Errorf("playKey is required")
	}
	if u.ConnectCode == "" {
		return fmt.Errorf("connectCode is required")
	}
	return nil
}

// Store reads and writes the credential file.
type Store struct {
	path string
	fs   system.FileSystem
}

// NewStore creates a store for the credential file at path.
func NewStore(path string) *Store {
	return NewStoreWith(path, system.DefaultFS())
}

// NewStoreWith creates a store with an explicit filesystem.
func NewStoreWith(path string, filesystem system.FileSystem) *Store {
	return &Store{path: path, fs: filesystem}
}

// Exists reports whether a credential file is present.
func (s *Store) Exists() bool {
	return s.fs.Exists(s.path)
}

// Load reads and validates the credential file.
func (s *Store) Load() (*User, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}
	return &user, nil
}

// Save validates and writes the credential file. The file is user-private:
// it carries the play key.
func (s *Store) Save(user *User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := s.fs.WriteFile(s.path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

// Delete removes the credential file. Deleting a missing file is a no-op.
func (s *Store) Delete() error {
	if !s.fs.Exists(s.path) {
		return nil
	}
	if err := s.fs.Remove(s.path); err != nil {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	return nil
}
