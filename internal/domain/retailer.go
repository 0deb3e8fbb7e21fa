package domain

// RetailerCategory groups retailers by the kind of catalog they carry.
type RetailerCategory string

const (
	RetailerCategoryGeneral RetailerCategory = "general"
	RetailerCategoryFashion RetailerCategory = "fashion"
	RetailerCategoryLuxury  RetailerCategory = "luxury"
	RetailerCategoryBudget  RetailerCategory = "budget"
)

// AuthStyle describes how an adapter presents its credential to a retailer API.
type AuthStyle string

const (
	AuthNone       AuthStyle = ""       // no credential sent
	AuthBearer     AuthStyle = "bearer" // Authorization: Bearer <key>
	AuthHeader     AuthStyle = "header" // custom header, name in APIConfig.AuthHeader
	AuthQueryParam AuthStyle = "query"  // key embedded as a query parameter
)

// APIConfig holds the per-retailer conventions an adapter needs to talk to
// the retailer's API. Everything beyond RequiresAPIKey and Endpoint is
// advisory; adapters fall back to generic conventions when fields are empty.
type APIConfig struct {
	RequiresAPIKey bool      `json:"requiresApiKey"`
	Endpoint       string    `json:"endpoint"`
	AuthStyle      AuthStyle `json:"authStyle,omitempty"`
	AuthHeader     string    `json:"authHeader,omitempty"`
	AuthParam      string    `json:"authParam,omitempty"`
	QueryParam     string    `json:"queryParam,omitempty"`
	CategoryParam  string    `json:"categoryParam,omitempty"`
	LimitParam     string    `json:"limitParam,omitempty"`
	OffsetParam    string    `json:"offsetParam,omitempty"`
	ResultsKey     string    `json:"resultsKey,omitempty"`
}

// Retailer is a configured product source.
type Retailer struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	BaseURL            string           `json:"baseUrl"`
	SearchURLTemplate  string           `json:"searchUrlTemplate,omitempty"`
	ProductURLTemplate string           `json:"productUrlTemplate,omitempty"`
	Category           RetailerCategory `json:"category"`
	IsActive           bool             `json:"isActive"`
	APIConfig          APIConfig        `json:"apiConfig"`
}
