// Package store provides the JSON-file persistence behind the retailer
// catalog: one store for retailer configuration, one for API credentials.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/huefit/backend/internal/domain"
)

// CredentialFile is a file-backed credential store. Values are written as a
// flat retailerID -> key JSON object.
type CredentialFile struct {
	path  string
	mutex sync.Mutex
}

// NewCredentialFile creates a credential store at the given path. The parent
// directory is created on first write.
func NewCredentialFile(path string) *CredentialFile {
	return &CredentialFile{path: path}
}

func (s *CredentialFile) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	creds := map[string]string{}
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return creds, nil
}

func (s *CredentialFile) write(creds map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Get returns the stored credential for a retailer, or ErrCredentialNotFound.
func (s *CredentialFile) Get(retailerID string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	creds, err := s.load()
	if err != nil {
		return "", err
	}
	value, ok := creds[retailerID]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrCredentialNotFound, retailerID)
	}
	return value, nil
}

// Set stores a credential for a retailer.
func (s *CredentialFile) Set(retailerID, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	creds, err := s.load()
	if err != nil {
		return err
	}
	creds[retailerID] = value
	return s.write(creds)
}

// Remove deletes a retailer's credential. Removing an absent key is not an
// error.
func (s *CredentialFile) Remove(retailerID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	creds, err := s.load()
	if err != nil {
		return err
	}
	delete(creds, retailerID)
	return s.write(creds)
}

// RetailerFile is a file-backed retailer-configuration store.
type RetailerFile struct {
	path  string
	mutex sync.Mutex
}

// NewRetailerFile creates a retailer store at the given path.
func NewRetailerFile(path string) *RetailerFile {
	return &RetailerFile{path: path}
}

// Load reads the persisted retailer list. A missing file yields a nil slice
// so the catalog can fall back to its defaults.
func (s *RetailerFile) Load() ([]domain.Retailer, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read retailers: %w", err)
	}
	var retailers []domain.Retailer
	if err := json.Unmarshal(data, &retailers); err != nil {
		return nil, fmt.Errorf("parse retailers: %w", err)
	}
	return retailers, nil
}

// Save persists the full retailer list.
func (s *RetailerFile) Save(retailers []domain.Retailer) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	data, err := json.MarshalIndent(retailers, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write retailers: %w", err)
	}
	return nil
}
