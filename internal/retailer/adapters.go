package retailer

import (
	"go.uber.org/zap"

	"github.com/huefit/backend/internal/domain"
)

// Retailer-specific adapters. Each one is the generic fetch/normalize flow
// plus the key chains that retailer's payloads actually use; anything left
// unset falls back to the generic conventions.

// NewAmazonAdapter handles Amazon-shaped search payloads: ASIN identifiers,
// results under "results"/"search_results", star ratings nested under
// {"rating": {"value": ...}} in some response versions.
func NewAmazonAdapter(ret domain.Retailer, credential string, client *Client, logger *zap.Logger) domain.Adapter {
	schema := Schema{
		ResultsKeys:     []string{"results", "search_results", "products"},
		IDKeys:          []string{"asin", "id"},
		NameKeys:        []string{"title", "name"},
		PriceKeys:       []string{"price", "buybox_price", "list_price"},
		ImageKeys:       []string{"images", "image", "main_image", "thumbnail"},
		RatingKeys:      []string{"rating", "stars"},
		ReviewCountKeys: []string{"ratings_total", "review_count", "reviews"},
		URLKeys:         []string{"link", "url"},
	}
	return newBaseAdapter(ret, credential, schema, client, logger)
}

// NewWalmartAdapter handles Walmart-shaped payloads: usItemId identifiers,
// items under "items", availability as a free-text status string.
func NewWalmartAdapter(ret domain.Retailer, credential string, client *Client, logger *zap.Logger) domain.Adapter {
	schema := Schema{
		ResultsKeys:     []string{"items", "data", "products"},
		IDKeys:          []string{"usItemId", "id", "product_id"},
		NameKeys:        []string{"name", "title"},
		PriceKeys:       []string{"price", "salePrice", "currentPrice"},
		ImageKeys:       []string{"imageInfo", "images", "thumbnailUrl", "image"},
		CategoryKeys:    []string{"category", "categoryPath", "product_type"},
		StockTextKeys:   []string{"availabilityStatus", "availability", "stock_status"},
		ReviewCountKeys: []string{"numberOfReviews", "review_count", "reviews"},
		RatingKeys:      []string{"averageRating", "rating"},
		URLKeys:         []string{"canonicalUrl", "url", "link"},
	}
	return newBaseAdapter(ret, credential, schema, client, logger)
}

// NewTargetAdapter handles Target-shaped payloads: TCIN identifiers, items
// nested under data.products, price as an object with current_retail.
func NewTargetAdapter(ret domain.Retailer, credential string, client *Client, logger *zap.Logger) domain.Adapter {
	schema := Schema{
		ResultsKeys: []string{"data", "products", "items"},
		IDKeys:      []string{"tcin", "id"},
		NameKeys:    []string{"title", "name", "product_name"},
		PriceKeys:   []string{"price", "current_retail", "list_price"},
		ImageKeys:   []string{"images", "primary_image_url", "image"},
		URLKeys:     []string{"buy_url", "url", "link"},
	}
	return newBaseAdapter(ret, credential, schema, client, logger)
}

// NewASOSAdapter handles ASOS-shaped payloads: products under "products",
// colour spelled the British way, variant lists carrying sizes.
func NewASOSAdapter(ret domain.Retailer, credential string, client *Client, logger *zap.Logger) domain.Adapter {
	schema := Schema{
		ResultsKeys:     []string{"products", "items"},
		IDKeys:          []string{"id", "sku", "product_id"},
		NameKeys:        []string{"name", "title"},
		PriceKeys:       []string{"price", "current_price"},
		ColorListKeys:   []string{"colours", "colors", "colourWayData"},
		ColorScalarKeys: []string{"colour", "color"},
		ImageKeys:       []string{"imageUrl", "images", "image"},
		URLKeys:         []string{"url", "link"},
	}
	return newBaseAdapter(ret, credential, schema, client, logger)
}
