package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huefit/backend/internal/domain"
)

// AdapterFactory resolves a retailer to its adapter. Satisfied by
// retailer.Registry.
type AdapterFactory interface {
	Create(ret domain.Retailer, credential string) domain.Adapter
}

// AggregationService fans product fetches out across retailers and merges
// the results. Every retailer is an independent failure domain: a broken or
// unreachable API contributes zero products and a log line, nothing more.
type AggregationService struct {
	catalog  *CatalogService
	adapters AdapterFactory
	cache    domain.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewAggregationService wires the pipeline. cache may be nil to disable
// result caching.
func NewAggregationService(catalog *CatalogService, adapters AdapterFactory, cache domain.Cache, cacheTTL time.Duration, logger *zap.Logger) *AggregationService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &AggregationService{
		catalog:  catalog,
		adapters: adapters,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// FetchAll queries every given retailer concurrently and concatenates the
// per-retailer results in retailer order. Product ids are prefixed with the
// retailer id so they stay unique across sources. An empty retailer set is
// the only error; per-retailer failures are logged and skipped.
func (s *AggregationService) FetchAll(ctx context.Context, retailers []domain.Retailer, query, category string) ([]domain.Product, error) {
	if len(retailers) == 0 {
		return nil, domain.ErrNoActiveRetailers
	}

	// One result slot per retailer keeps merge order deterministic without
	// holding a lock across any network call.
	slots := make([][]domain.Product, len(retailers))
	g, gctx := errgroup.WithContext(ctx)

	for i, ret := range retailers {
		g.Go(func() error {
			adapter := s.adapters.Create(ret, s.catalog.CredentialFor(ret.ID))
			products, err := adapter.FetchProducts(gctx, domain.FetchOptions{
				Query:    query,
				Category: category,
				Limit:    defaultRetailerLimit,
			})
			if err != nil {
				s.logger.Warn("retailer fetch skipped",
					zap.String("retailer", ret.ID),
					zap.Error(err))
				return nil
			}
			for j := range products {
				if products[j].ID != "" {
					products[j].ID = ret.ID + "_" + products[j].ID
				}
			}
			slots[i] = products
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []domain.Product
	for _, products := range slots {
		merged = append(merged, products...)
	}
	s.logger.Info("aggregation complete",
		zap.Int("retailers", len(retailers)),
		zap.Int("products", len(merged)))
	return merged, nil
}

const defaultRetailerLimit = 20

// Search fetches across all configured retailers, with a short-lived cache
// in front so repeated identical queries do not hammer the retailer APIs.
func (s *AggregationService) Search(ctx context.Context, query, category string) ([]domain.Product, error) {
	key := fmt.Sprintf("products:%s:%s", query, category)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			if products, ok := cached.([]domain.Product); ok {
				s.logger.Debug("aggregation cache hit", zap.String("key", key))
				return products, nil
			}
		}
	}

	products, err := s.FetchAll(ctx, s.catalog.ConfiguredRetailers(), query, category)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, products, s.cacheTTL); err != nil {
			s.logger.Warn("aggregation cache write failed", zap.Error(err))
		}
	}
	return products, nil
}

// ProductDetails fetches a single product from one retailer. The returned
// product id carries the retailer prefix. A missing credential propagates;
// an unknown product yields (nil, nil).
func (s *AggregationService) ProductDetails(ctx context.Context, retailerID, productID string) (*domain.Product, error) {
	ret, err := s.catalog.GetRetailer(retailerID)
	if err != nil {
		return nil, err
	}
	adapter := s.adapters.Create(ret, s.catalog.CredentialFor(ret.ID))
	product, err := adapter.GetProductDetails(ctx, productID)
	if err != nil || product == nil {
		return nil, err
	}
	if product.ID != "" {
		product.ID = ret.ID + "_" + product.ID
	}
	return product, nil
}
