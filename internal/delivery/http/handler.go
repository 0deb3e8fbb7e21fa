package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huefit/backend/internal/domain"
	"github.com/huefit/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog     *usecase.CatalogService
	aggregation *usecase.AggregationService
	scorer      *usecase.CompatibilityService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *usecase.CatalogService, aggregation *usecase.AggregationService, scorer *usecase.CompatibilityService) *Handler {
	return &Handler{
		catalog:     catalog,
		aggregation: aggregation,
		scorer:      scorer,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "huefit-backend",
		"version": "1.0.0",
	})
}

// SearchProducts aggregates products across all configured retailers.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("query")
	category := c.Query("category")

	products, err := h.aggregation.Search(c.Request.Context(), query, category)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveRetailers) {
			c.JSON(http.StatusConflict, gin.H{"error": "no retailers are active and configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProductDetails fetches one product from one retailer.
func (h *Handler) GetProductDetails(c *gin.Context) {
	retailerID := c.Param("retailerId")
	productID := c.Param("productId")

	product, err := h.aggregation.ProductDetails(c.Request.Context(), retailerID, productID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRetailerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "retailer not found"})
		case errors.Is(err, domain.ErrMissingCredential):
			c.JSON(http.StatusConflict, gin.H{"error": "retailer requires an API key; configure one first"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

type recommendationsRequest struct {
	Products []domain.Product    `json:"products"`
	Query    string              `json:"query"`
	Category string              `json:"category"`
	SkinTone domain.SkinToneInfo `json:"skinTone"`
	Limit    int                 `json:"limit"`
}

// Recommendations scores a product batch against a skin-tone profile and
// returns the ranked, filtered result. When no products are supplied in the
// body they are aggregated live from the configured retailers.
func (h *Handler) Recommendations(c *gin.Context) {
	var req recommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	products := req.Products
	if len(products) == 0 {
		var err error
		products, err = h.aggregation.Search(c.Request.Context(), req.Query, req.Category)
		if err != nil {
			if errors.Is(err, domain.ErrNoActiveRetailers) {
				c.JSON(http.StatusConflict, gin.H{"error": "no retailers are active and configured"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	ranked := h.scorer.Recommend(c.Request.Context(), products, req.SkinTone, req.Limit)
	c.JSON(http.StatusOK, gin.H{
		"recommendations": ranked,
		"count":           len(ranked),
	})
}

type compatibilityRequest struct {
	Product  domain.Product      `json:"product"`
	SkinTone domain.SkinToneInfo `json:"skinTone"`
}

// Compatibility scores a single product against a skin-tone profile.
func (h *Handler) Compatibility(c *gin.Context) {
	var req compatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.scorer.Score(c.Request.Context(), req.Product, req.SkinTone))
}

// ListRetailers returns all retailers with their configuration status.
func (h *Handler) ListRetailers(c *gin.Context) {
	retailers := h.catalog.AllRetailers()

	type retailerStatus struct {
		domain.Retailer
		HasCredential bool `json:"hasCredential"`
	}
	out := make([]retailerStatus, 0, len(retailers))
	for _, ret := range retailers {
		out = append(out, retailerStatus{
			Retailer:      ret,
			HasCredential: h.catalog.CredentialFor(ret.ID) != "",
		})
	}

	c.JSON(http.StatusOK, gin.H{"retailers": out})
}

// AddRetailer registers a new retailer.
func (h *Handler) AddRetailer(c *gin.Context) {
	var ret domain.Retailer
	if err := c.ShouldBindJSON(&ret); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	added, err := h.catalog.AddRetailer(ret)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRetailer) {
			c.JSON(http.StatusConflict, gin.H{"error": "retailer id already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, added)
}

// UpdateRetailer replaces a retailer's configuration.
func (h *Handler) UpdateRetailer(c *gin.Context) {
	var ret domain.Retailer
	if err := c.ShouldBindJSON(&ret); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	ret.ID = c.Param("id")

	if err := h.catalog.UpdateRetailer(ret); err != nil {
		if errors.Is(err, domain.ErrRetailerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "retailer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ret)
}

// RemoveRetailer deletes a retailer and its credential.
func (h *Handler) RemoveRetailer(c *gin.Context) {
	if err := h.catalog.RemoveRetailer(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrRetailerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "retailer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetRetailerActive toggles a retailer's active flag.
func (h *Handler) SetRetailerActive(c *gin.Context) {
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := h.catalog.SetActive(c.Param("id"), *req.Active); err != nil {
		if errors.Is(err, domain.ErrRetailerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "retailer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

type setCredentialRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// SetCredential stores a retailer API key.
func (h *Handler) SetCredential(c *gin.Context) {
	var req setCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := h.catalog.SetCredential(c.Param("id"), req.APIKey); err != nil {
		if errors.Is(err, domain.ErrRetailerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "retailer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveCredential deletes a retailer API key.
func (h *Handler) RemoveCredential(c *gin.Context) {
	if err := h.catalog.RemoveCredential(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrRetailerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "retailer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
