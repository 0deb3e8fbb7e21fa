package retailer

import (
	"go.uber.org/zap"

	"github.com/huefit/backend/internal/domain"
)

// Well-known retailer ids with dedicated adapters.
const (
	IDAmazon  = "amazon"
	IDWalmart = "walmart"
	IDTarget  = "target"
	IDASOS    = "asos"
)

// Registry resolves a retailer to its adapter implementation. Unrecognized
// ids get the generic adapter, so newly added retailers work out of the box.
type Registry struct {
	client *Client
	logger *zap.Logger
}

// NewRegistry creates an adapter registry sharing one HTTP client.
func NewRegistry(client *Client, logger *zap.Logger) *Registry {
	return &Registry{client: client, logger: logger}
}

// Create returns the adapter for a retailer. The credential may be empty;
// adapters for key-requiring retailers reject calls until one is configured.
func (r *Registry) Create(ret domain.Retailer, credential string) domain.Adapter {
	switch ret.ID {
	case IDAmazon:
		return NewAmazonAdapter(ret, credential, r.client, r.logger)
	case IDWalmart:
		return NewWalmartAdapter(ret, credential, r.client, r.logger)
	case IDTarget:
		return NewTargetAdapter(ret, credential, r.client, r.logger)
	case IDASOS:
		return NewASOSAdapter(ret, credential, r.client, r.logger)
	default:
		return NewGenericAdapter(ret, credential, r.client, r.logger)
	}
}
