package retailer

import (
	"go.uber.org/zap"

	"github.com/huefit/backend/internal/domain"
)

// NewGenericAdapter builds the default adapter used for any retailer without
// a dedicated implementation. It runs the full fallback-chain normalization
// with only retailer-agnostic conventions: result lists are looked up under
// products/items/results/data, with a bare top-level array as last resort.
func NewGenericAdapter(ret domain.Retailer, credential string, client *Client, logger *zap.Logger) domain.Adapter {
	return newBaseAdapter(ret, credential, DefaultSchema(), client, logger)
}
