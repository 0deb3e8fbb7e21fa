// Package scoring is the HTTP client for the remote compatibility-scoring
// service. Every failure mode collapses into domain.ErrScoringUnavailable so
// the scorer can fall back to local rules without inspecting causes.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/huefit/backend/internal/domain"
)

// Client talks to the remote recommendation endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates a scoring client with a bounded request timeout. The
// timeout is the only retry policy: one attempt, then the caller falls back.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

type userInfoPayload struct {
	Undertone            domain.Undertone `json:"undertone"`
	Depth                domain.Depth     `json:"depth"`
	RecommendedColors    []string         `json:"recommendedColors"`
	NotRecommendedColors []string         `json:"notRecommendedColors"`
}

type recommendRequest struct {
	Products []domain.Product `json:"products"`
	UserInfo userInfoPayload  `json:"userInfo"`
}

type recommendResponse struct {
	Status          string                        `json:"status"`
	Recommendations []domain.ProductCompatibility `json:"recommendations"`
	Error           string                        `json:"error,omitempty"`
}

// Recommend submits the product batch and profile and returns the remote
// scores. Any transport error, non-2xx status, undecodable body, or a
// response whose status is not "success" yields ErrScoringUnavailable.
func (c *Client) Recommend(ctx context.Context, products []domain.Product, skinTone domain.SkinToneInfo) ([]domain.ProductCompatibility, error) {
	payload := recommendRequest{
		Products: products,
		UserInfo: userInfoPayload{
			Undertone:            skinTone.Undertone,
			Depth:                skinTone.Depth,
			RecommendedColors:    skinTone.RecommendedColors,
			NotRecommendedColors: skinTone.NotRecommendedColors,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScoringUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScoringUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("remote scoring request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrScoringUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("remote scoring returned error status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", domain.ErrScoringUnavailable, resp.StatusCode)
	}

	var decoded recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScoringUnavailable, err)
	}
	if decoded.Status != "success" {
		c.logger.Warn("remote scoring rejected request", zap.String("status", decoded.Status), zap.String("error", decoded.Error))
		return nil, fmt.Errorf("%w: status %q", domain.ErrScoringUnavailable, decoded.Status)
	}
	return decoded.Recommendations, nil
}
