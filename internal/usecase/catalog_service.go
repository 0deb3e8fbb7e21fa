package usecase

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huefit/backend/internal/domain"
	"github.com/huefit/backend/internal/retailer"
)

// defaultRetailers seeds the catalog on first run.
func defaultRetailers() []domain.Retailer {
	return []domain.Retailer{
		{
			ID:       retailer.IDAmazon,
			Name:     "Amazon Fashion",
			BaseURL:  "https://www.amazon.com",
			Category: domain.RetailerCategoryGeneral,
			IsActive: true,
			APIConfig: domain.APIConfig{
				RequiresAPIKey: true,
				Endpoint:       "https://api.rainforestapi.com/request",
				AuthStyle:      domain.AuthQueryParam,
				AuthParam:      "api_key",
				QueryParam:     "search_term",
			},
		},
		{
			ID:       retailer.IDWalmart,
			Name:     "Walmart",
			BaseURL:  "https://www.walmart.com",
			Category: domain.RetailerCategoryBudget,
			IsActive: true,
			APIConfig: domain.APIConfig{
				RequiresAPIKey: true,
				Endpoint:       "https://developer.api.walmart.com/api-proxy/service/affil/product/v2/search",
				AuthStyle:      domain.AuthHeader,
				AuthHeader:     "WM_SEC.KEY",
				QueryParam:     "query",
				LimitParam:     "numItems",
				OffsetParam:    "start",
			},
		},
		{
			ID:       retailer.IDTarget,
			Name:     "Target",
			BaseURL:  "https://www.target.com",
			Category: domain.RetailerCategoryGeneral,
			IsActive: true,
			APIConfig: domain.APIConfig{
				RequiresAPIKey: true,
				Endpoint:       "https://api.target.com/products/v3/search",
				AuthStyle:      domain.AuthBearer,
				QueryParam:     "keyword",
			},
		},
		{
			ID:       retailer.IDASOS,
			Name:     "ASOS",
			BaseURL:  "https://www.asos.com",
			Category: domain.RetailerCategoryFashion,
			IsActive: true,
			APIConfig: domain.APIConfig{
				RequiresAPIKey: true,
				Endpoint:       "https://asos2.p.rapidapi.com/products/v2/list",
				AuthStyle:      domain.AuthHeader,
				AuthHeader:     "X-RapidAPI-Key",
				QueryParam:     "q",
			},
		},
		{
			ID:       "fashionhub",
			Name:     "FashionHub",
			BaseURL:  "https://fashionhub.example.com",
			Category: domain.RetailerCategoryFashion,
			IsActive: true,
			APIConfig: domain.APIConfig{
				RequiresAPIKey: false,
				Endpoint:       "https://fashionhub.example.com/api/products",
			},
		},
	}
}

// CatalogService owns retailer metadata, active flags, and credential
// configuration status. State is held in memory and written through to the
// retailer store on every mutation.
type CatalogService struct {
	mutex       sync.RWMutex
	retailers   []domain.Retailer
	store       domain.RetailerStore
	credentials domain.CredentialStore
	logger      *zap.Logger
}

// NewCatalogService loads the persisted retailer list, falling back to the
// built-in defaults on first run.
func NewCatalogService(store domain.RetailerStore, credentials domain.CredentialStore, logger *zap.Logger) (*CatalogService, error) {
	retailers, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load retailer catalog: %w", err)
	}
	seeded := false
	if len(retailers) == 0 {
		retailers = defaultRetailers()
		seeded = true
	}
	s := &CatalogService{
		retailers:   retailers,
		store:       store,
		credentials: credentials,
		logger:      logger,
	}
	if seeded {
		if err := store.Save(retailers); err != nil {
			return nil, fmt.Errorf("persist default retailers: %w", err)
		}
		logger.Info("seeded retailer catalog with defaults", zap.Int("count", len(retailers)))
	}
	return s, nil
}

// AllRetailers returns every retailer in catalog order.
func (s *CatalogService) AllRetailers() []domain.Retailer {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]domain.Retailer, len(s.retailers))
	copy(out, s.retailers)
	return out
}

// ActiveRetailers returns retailers whose active flag is set.
func (s *CatalogService) ActiveRetailers() []domain.Retailer {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var out []domain.Retailer
	for _, ret := range s.retailers {
		if ret.IsActive {
			out = append(out, ret)
		}
	}
	return out
}

// ConfiguredRetailers returns active retailers whose credential requirement,
// if any, is satisfied. Only these are handed to the aggregation pipeline.
func (s *CatalogService) ConfiguredRetailers() []domain.Retailer {
	var out []domain.Retailer
	for _, ret := range s.ActiveRetailers() {
		if ret.APIConfig.RequiresAPIKey {
			if _, err := s.credentials.Get(ret.ID); err != nil {
				continue
			}
		}
		out = append(out, ret)
	}
	return out
}

// GetRetailer returns the retailer with the given id.
func (s *CatalogService) GetRetailer(id string) (domain.Retailer, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, ret := range s.retailers {
		if ret.ID == id {
			return ret, nil
		}
	}
	return domain.Retailer{}, fmt.Errorf("%w: %s", domain.ErrRetailerNotFound, id)
}

// AddRetailer appends a retailer to the catalog. A missing id is generated;
// a duplicate id fails with ErrDuplicateRetailer.
func (s *CatalogService) AddRetailer(ret domain.Retailer) (domain.Retailer, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if ret.ID == "" {
		ret.ID = uuid.NewString()
	}
	for _, existing := range s.retailers {
		if existing.ID == ret.ID {
			return domain.Retailer{}, fmt.Errorf("%w: %s", domain.ErrDuplicateRetailer, ret.ID)
		}
	}
	s.retailers = append(s.retailers, ret)
	if err := s.persistLocked(); err != nil {
		s.retailers = s.retailers[:len(s.retailers)-1]
		return domain.Retailer{}, err
	}
	s.logger.Info("retailer added", zap.String("retailer", ret.ID))
	return ret, nil
}

// UpdateRetailer replaces an existing retailer's configuration.
func (s *CatalogService) UpdateRetailer(ret domain.Retailer) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, existing := range s.retailers {
		if existing.ID == ret.ID {
			previous := s.retailers[i]
			s.retailers[i] = ret
			if err := s.persistLocked(); err != nil {
				s.retailers[i] = previous
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrRetailerNotFound, ret.ID)
}

// RemoveRetailer deletes a retailer and its stored credential.
func (s *CatalogService) RemoveRetailer(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, existing := range s.retailers {
		if existing.ID == id {
			removed := s.retailers[i]
			s.retailers = append(s.retailers[:i], s.retailers[i+1:]...)
			if err := s.persistLocked(); err != nil {
				s.retailers = append(s.retailers[:i], append([]domain.Retailer{removed}, s.retailers[i:]...)...)
				return err
			}
			if err := s.credentials.Remove(id); err != nil {
				s.logger.Warn("failed to remove credential", zap.String("retailer", id), zap.Error(err))
			}
			s.logger.Info("retailer removed", zap.String("retailer", id))
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrRetailerNotFound, id)
}

// SetActive toggles a retailer's active flag.
func (s *CatalogService) SetActive(id string, active bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.retailers {
		if s.retailers[i].ID == id {
			previous := s.retailers[i].IsActive
			s.retailers[i].IsActive = active
			if err := s.persistLocked(); err != nil {
				s.retailers[i].IsActive = previous
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrRetailerNotFound, id)
}

// SetCredential stores an API key for a retailer.
func (s *CatalogService) SetCredential(id, value string) error {
	if _, err := s.GetRetailer(id); err != nil {
		return err
	}
	return s.credentials.Set(id, value)
}

// RemoveCredential deletes a retailer's API key.
func (s *CatalogService) RemoveCredential(id string) error {
	if _, err := s.GetRetailer(id); err != nil {
		return err
	}
	return s.credentials.Remove(id)
}

// CredentialFor returns the stored credential for a retailer, or "" when
// none is configured.
func (s *CatalogService) CredentialFor(id string) string {
	value, err := s.credentials.Get(id)
	if err != nil {
		return ""
	}
	return value
}

func (s *CatalogService) persistLocked() error {
	if err := s.store.Save(s.retailers); err != nil {
		return fmt.Errorf("persist retailer catalog: %w", err)
	}
	return nil
}
