package domain

import "github.com/shopspring/decimal"

// Gender is the target audience of a product.
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)

// Sentinel values used when a retailer's payload does not expose a field.
// Every Product emitted by an adapter is fully populated with these, so
// callers never branch on missing data.
const (
	UnknownColor        = "Unknown"
	OneSize             = "One Size"
	PlaceholderImageURL = "https://placehold.co/400x500?text=No+Image"
	Uncategorized       = "Uncategorized"
	DefaultCurrency     = "USD"
)

// Product is the canonical product representation shared by all retailers.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	Colors       []string        `json:"colors"`
	Sizes        []string        `json:"sizes"`
	Images       []string        `json:"images"`
	Category     string          `json:"category"`
	RetailerName string          `json:"retailerName"`
	ExternalURL  string          `json:"externalUrl"`
	Gender       Gender          `json:"gender"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"reviewCount"`
	InStock      bool            `json:"inStock"`
	Extra        map[string]any  `json:"extra,omitempty"`
}
