package domain

import (
	"context"
	"time"
)

// FetchOptions narrows an adapter product search.
type FetchOptions struct {
	Query    string
	Category string
	Limit    int
	Offset   int
}

// Adapter fetches and normalizes products for exactly one retailer.
//
// FetchProducts returns ErrMissingCredential when the retailer requires an
// API key and none was supplied; every other transport or parse failure is
// logged inside the adapter and yields an empty slice, so a single
// retailer's outage never blocks the others. GetProductDetails follows the
// same credential policy and returns (nil, nil) when the product cannot be
// found or parsed.
type Adapter interface {
	Retailer() Retailer
	FetchProducts(ctx context.Context, opts FetchOptions) ([]Product, error)
	GetProductDetails(ctx context.Context, productID string) (*Product, error)
}

// CredentialStore is keyed persistence for retailer API keys.
type CredentialStore interface {
	Get(retailerID string) (string, error)
	Set(retailerID, value string) error
	Remove(retailerID string) error
}

// RetailerStore persists the retailer list between runs.
type RetailerStore interface {
	Load() ([]Retailer, error)
	Save(retailers []Retailer) error
}

// RemoteScorer is the remote compatibility-scoring capability. Implementations
// return ErrScoringUnavailable on any failure; the scorer maps that to its
// local fallback and never surfaces it.
type RemoteScorer interface {
	Recommend(ctx context.Context, products []Product, skinTone SkinToneInfo) ([]ProductCompatibility, error)
}

// Cache is a TTL key-value cache.
type Cache interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
