package domain

import "errors"

var (
	// ErrMissingCredential is returned when a retailer requires an API key
	// and none was supplied. This is the one adapter failure that propagates
	// to callers, since they must prompt for configuration.
	ErrMissingCredential = errors.New("retailer requires an API key and none is configured")

	// ErrDuplicateRetailer is returned when adding a retailer whose id
	// already exists in the catalog.
	ErrDuplicateRetailer = errors.New("retailer id already exists")

	// ErrRetailerNotFound is returned when updating or removing an unknown
	// retailer.
	ErrRetailerNotFound = errors.New("retailer not found")

	// ErrNoActiveRetailers is returned by the aggregation pipeline when the
	// retailer set is empty.
	ErrNoActiveRetailers = errors.New("no active retailers to query")

	// ErrScoringUnavailable is returned by the remote scoring client on any
	// transport failure, timeout, or non-success response. The scorer catches
	// it and falls back to local rules; it is never surfaced to callers.
	ErrScoringUnavailable = errors.New("remote scoring service unavailable")

	// ErrUpstreamHTTP is returned when a retailer API responds with a
	// non-2xx status. Caught inside adapters and converted to empty results.
	ErrUpstreamHTTP = errors.New("retailer API request failed")

	// ErrMalformedResponse is returned when a retailer payload cannot be
	// decoded. Caught inside adapters and converted to empty results.
	ErrMalformedResponse = errors.New("retailer response could not be parsed")

	// ErrCacheMiss is returned when a key is absent from the cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCredentialNotFound is returned when no credential is stored for a
	// retailer id.
	ErrCredentialNotFound = errors.New("credential not found")
)
