package retailer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/huefit/backend/internal/domain"
)

const defaultFetchLimit = 20

// Client is the shared HTTP core under every adapter. Retailer APIs are rate
// limited as a group; individual adapters never hold a lock across a call.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates the shared retailer HTTP client with a bounded timeout.
func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
		logger:     logger,
	}
}

// GetJSON performs a GET against reqURL and decodes the body into untyped
// JSON. Non-2xx statuses map to ErrUpstreamHTTP and undecodable bodies to
// ErrMalformedResponse; callers decide whether those degrade or propagate.
func (c *Client) GetJSON(ctx context.Context, reqURL string, header http.Header) (any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "huefit/1.0")
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamHTTP, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamHTTP, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamHTTP, resp.StatusCode)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return decoded, nil
}

// baseAdapter implements the shared fetch/normalize flow. Specific adapters
// only differ in their schema and the retailer's API conventions, both of
// which are data.
type baseAdapter struct {
	ret        domain.Retailer
	credential string
	schema     Schema
	client     *Client
	logger     *zap.Logger
}

func newBaseAdapter(ret domain.Retailer, credential string, schema Schema, client *Client, logger *zap.Logger) *baseAdapter {
	return &baseAdapter{
		ret:        ret,
		credential: credential,
		schema:     schema.merge(DefaultSchema()),
		client:     client,
		logger:     logger.With(zap.String("retailer", ret.ID)),
	}
}

func (a *baseAdapter) Retailer() domain.Retailer { return a.ret }

// requireCredential enforces the one adapter failure that propagates.
func (a *baseAdapter) requireCredential() error {
	if a.ret.APIConfig.RequiresAPIKey && a.credential == "" {
		return fmt.Errorf("%w: %s", domain.ErrMissingCredential, a.ret.ID)
	}
	return nil
}

// searchURL builds the retailer search request from its configured parameter
// conventions, falling back to common names when unset.
func (a *baseAdapter) searchURL(opts domain.FetchOptions) string {
	cfg := a.ret.APIConfig
	params := url.Values{}

	queryParam := cfg.QueryParam
	if queryParam == "" {
		queryParam = "q"
	}
	if opts.Query != "" {
		params.Set(queryParam, opts.Query)
	}

	categoryParam := cfg.CategoryParam
	if categoryParam == "" {
		categoryParam = "category"
	}
	if opts.Category != "" {
		params.Set(categoryParam, opts.Category)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultFetchLimit
	}
	limitParam := cfg.LimitParam
	if limitParam == "" {
		limitParam = "limit"
	}
	params.Set(limitParam, strconv.Itoa(limit))

	if opts.Offset > 0 {
		offsetParam := cfg.OffsetParam
		if offsetParam == "" {
			offsetParam = "offset"
		}
		params.Set(offsetParam, strconv.Itoa(opts.Offset))
	}

	if cfg.AuthStyle == domain.AuthQueryParam && a.credential != "" {
		authParam := cfg.AuthParam
		if authParam == "" {
			authParam = "api_key"
		}
		params.Set(authParam, a.credential)
	}

	return fmt.Sprintf("%s?%s", cfg.Endpoint, params.Encode())
}

// detailURL builds the product-detail request, preferring the retailer's
// explicit template when configured.
func (a *baseAdapter) detailURL(productID string) string {
	if tmpl := a.ret.ProductURLTemplate; strings.Contains(tmpl, "{id}") {
		u := strings.ReplaceAll(tmpl, "{id}", url.PathEscape(productID))
		if a.ret.APIConfig.AuthStyle == domain.AuthQueryParam && a.credential != "" {
			sep := "?"
			if strings.Contains(u, "?") {
				sep = "&"
			}
			authParam := a.ret.APIConfig.AuthParam
			if authParam == "" {
				authParam = "api_key"
			}
			u += sep + authParam + "=" + url.QueryEscape(a.credential)
		}
		return u
	}
	base := strings.TrimSuffix(a.ret.APIConfig.Endpoint, "/")
	u := base + "/" + url.PathEscape(productID)
	if a.ret.APIConfig.AuthStyle == domain.AuthQueryParam && a.credential != "" {
		authParam := a.ret.APIConfig.AuthParam
		if authParam == "" {
			authParam = "api_key"
		}
		u += "?" + authParam + "=" + url.QueryEscape(a.credential)
	}
	return u
}

// authHeader returns the headers carrying the credential, per the retailer's
// configured auth style.
func (a *baseAdapter) authHeader() http.Header {
	header := http.Header{}
	if a.credential == "" {
		return header
	}
	switch a.ret.APIConfig.AuthStyle {
	case domain.AuthBearer:
		header.Set("Authorization", "Bearer "+a.credential)
	case domain.AuthHeader:
		name := a.ret.APIConfig.AuthHeader
		if name == "" {
			name = "X-Api-Key"
		}
		header.Set(name, a.credential)
	}
	return header
}

// FetchProducts queries the retailer and normalizes every returned item.
// Transport and parse failures are logged and yield an empty slice so one
// retailer's outage never blocks the rest of the aggregation.
func (a *baseAdapter) FetchProducts(ctx context.Context, opts domain.FetchOptions) ([]domain.Product, error) {
	if err := a.requireCredential(); err != nil {
		return nil, err
	}

	body, err := a.client.GetJSON(ctx, a.searchURL(opts), a.authHeader())
	if err != nil {
		a.logger.Warn("product fetch failed", zap.Error(err))
		return []domain.Product{}, nil
	}

	resultsKeys := a.schema.ResultsKeys
	if key := a.ret.APIConfig.ResultsKey; key != "" {
		resultsKeys = append([]string{key}, resultsKeys...)
	}
	items := itemsFrom(body, resultsKeys)
	if len(items) == 0 {
		a.logger.Debug("no items in retailer response")
		return []domain.Product{}, nil
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		products = append(products, BuildProduct(item, a.schema, a.ret))
	}
	a.logger.Debug("fetched products", zap.Int("count", len(products)))
	return products, nil
}

// GetProductDetails fetches one product by its retailer-local id. A product
// that cannot be found or parsed yields (nil, nil).
func (a *baseAdapter) GetProductDetails(ctx context.Context, productID string) (*domain.Product, error) {
	if err := a.requireCredential(); err != nil {
		return nil, err
	}

	body, err := a.client.GetJSON(ctx, a.detailURL(productID), a.authHeader())
	if err != nil {
		a.logger.Warn("product detail fetch failed", zap.String("product_id", productID), zap.Error(err))
		return nil, nil
	}

	raw, ok := body.(map[string]any)
	if !ok {
		return nil, nil
	}
	// Some APIs wrap the detail payload one level down.
	for _, key := range []string{"product", "item", "data", "result"} {
		if nested, ok := raw[key].(map[string]any); ok {
			raw = nested
			break
		}
	}

	p := BuildProduct(raw, a.schema, a.ret)
	if p.ID == "" && p.Name == "" {
		return nil, nil
	}
	return &p, nil
}
