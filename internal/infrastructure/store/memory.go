package store

import (
	"fmt"
	"sync"

	"github.com/huefit/backend/internal/domain"
)

// CredentialMemory is an in-memory credential store, used in tests and when
// no persistence path is configured.
type CredentialMemory struct {
	mutex sync.RWMutex
	creds map[string]string
}

// NewCredentialMemory creates an empty in-memory credential store.
func NewCredentialMemory() *CredentialMemory {
	return &CredentialMemory{creds: make(map[string]string)}
}

func (s *CredentialMemory) Get(retailerID string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.creds[retailerID]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrCredentialNotFound, retailerID)
	}
	return value, nil
}

func (s *CredentialMemory) Set(retailerID, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.creds[retailerID] = value
	return nil
}

func (s *CredentialMemory) Remove(retailerID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.creds, retailerID)
	return nil
}

// RetailerMemory is an in-memory retailer store.
type RetailerMemory struct {
	mutex     sync.RWMutex
	retailers []domain.Retailer
}

// NewRetailerMemory creates an empty in-memory retailer store.
func NewRetailerMemory() *RetailerMemory {
	return &RetailerMemory{}
}

func (s *RetailerMemory) Load() ([]domain.Retailer, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.retailers == nil {
		return nil, nil
	}
	out := make([]domain.Retailer, len(s.retailers))
	copy(out, s.retailers)
	return out, nil
}

func (s *RetailerMemory) Save(retailers []domain.Retailer) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.retailers = make([]domain.Retailer, len(retailers))
	copy(s.retailers, retailers)
	return nil
}
