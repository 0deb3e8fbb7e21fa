package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/huefit/backend/internal/colors"
	"github.com/huefit/backend/internal/domain"
)

const (
	neutralScore            = 50
	minRecommendationScore  = 50
	incompleteProfileReason = "Complete your skin tone profile to get personalized compatibility scores."
)

// CompatibilityService scores products against a skin-tone profile. The
// remote scorer, when configured, is consulted first for batches; any remote
// failure silently degrades to the local rule engine, so callers always get
// a valid score in [0, 100].
type CompatibilityService struct {
	remote domain.RemoteScorer
	logger *zap.Logger
}

// NewCompatibilityService creates a scorer. remote may be nil to run purely
// on local rules.
func NewCompatibilityService(remote domain.RemoteScorer, logger *zap.Logger) *CompatibilityService {
	return &CompatibilityService{remote: remote, logger: logger}
}

// ScoredProduct pairs a product with its compatibility result.
type ScoredProduct struct {
	Product       domain.Product              `json:"product"`
	Compatibility domain.ProductCompatibility `json:"compatibility"`
}

// Score computes the compatibility of one product with a profile.
func (s *CompatibilityService) Score(ctx context.Context, product domain.Product, skinTone domain.SkinToneInfo) domain.ProductCompatibility {
	return s.ScoreAll(ctx, []domain.Product{product}, skinTone)[0]
}

// ScoreAll scores a product batch. An incomplete profile yields exactly the
// neutral score for every product without consulting the remote service.
// Otherwise the remote scorer is tried once (a single batched call with a
// bounded timeout) and local rules fill in for any product the remote
// response missed, or for the whole batch when the service is unavailable.
func (s *CompatibilityService) ScoreAll(ctx context.Context, products []domain.Product, skinTone domain.SkinToneInfo) []domain.ProductCompatibility {
	results := make([]domain.ProductCompatibility, len(products))

	if !skinTone.Complete() {
		for i, p := range products {
			results[i] = domain.ProductCompatibility{
				ProductID:          p.ID,
				CompatibilityScore: neutralScore,
				Reason:             incompleteProfileReason,
			}
		}
		return results
	}

	profile := s.withPresetColors(skinTone)

	var remoteByID map[string]domain.ProductCompatibility
	if s.remote != nil && len(products) > 0 {
		if recs, err := s.remote.Recommend(ctx, products, profile); err == nil {
			remoteByID = make(map[string]domain.ProductCompatibility, len(recs))
			for _, rec := range recs {
				rec.CompatibilityScore = clampScore(rec.CompatibilityScore)
				remoteByID[rec.ProductID] = rec
			}
		} else {
			s.logger.Debug("remote scoring unavailable, using local rules", zap.Error(err))
		}
	}

	for i, p := range products {
		if rec, ok := remoteByID[p.ID]; ok {
			results[i] = rec
			continue
		}
		results[i] = localScore(p, profile)
	}
	return results
}

// Recommend scores, filters and ranks a batch: products below the minimum
// score are dropped, the rest sorted by score descending with the original
// order as a stable tie-break. limit <= 0 means no limit.
func (s *CompatibilityService) Recommend(ctx context.Context, products []domain.Product, skinTone domain.SkinToneInfo, limit int) []ScoredProduct {
	scores := s.ScoreAll(ctx, products, skinTone)

	var ranked []ScoredProduct
	for i, p := range products {
		if scores[i].CompatibilityScore < minRecommendationScore {
			continue
		}
		ranked = append(ranked, ScoredProduct{Product: p, Compatibility: scores[i]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Compatibility.CompatibilityScore > ranked[j].Compatibility.CompatibilityScore
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// withPresetColors fills empty recommendation lists from the curated palette
// for the profile's undertone/depth combination.
func (s *CompatibilityService) withPresetColors(skinTone domain.SkinToneInfo) domain.SkinToneInfo {
	if len(skinTone.RecommendedColors) > 0 || len(skinTone.NotRecommendedColors) > 0 {
		return skinTone
	}
	preset := colors.PresetFor(skinTone.Undertone, skinTone.Depth)
	if preset == nil {
		return skinTone
	}
	skinTone.RecommendedColors = preset.RecommendedColors
	skinTone.NotRecommendedColors = preset.NotRecommendedColors
	return skinTone
}

// localScore is the deterministic rule engine: start neutral, +10 per
// recommended-color match, -10 per discouraged match, +5 for face-adjacent
// categories, -5 when a single-color product matched nothing recommended.
func localScore(p domain.Product, skinTone domain.SkinToneInfo) domain.ProductCompatibility {
	score := neutralScore
	var matchedGood, matchedBad []string

	for _, color := range p.Colors {
		if m := matchAny(color, skinTone.RecommendedColors); m {
			score += 10
			matchedGood = append(matchedGood, color)
		}
		if m := matchAny(color, skinTone.NotRecommendedColors); m {
			score -= 10
			matchedBad = append(matchedBad, color)
		}
	}

	// Tops and dresses sit next to the face, where color against skin tone
	// matters most.
	if p.Category == "Tops" || p.Category == "Dresses" {
		score += 5
	}

	// A single color offers no alternative, unless that color already works.
	if len(p.Colors) == 1 && len(matchedGood) == 0 {
		score -= 5
	}

	score = clampScore(score)

	return domain.ProductCompatibility{
		ProductID:          p.ID,
		CompatibilityScore: score,
		Reason:             buildReason(p, skinTone, matchedGood, matchedBad),
	}
}

func matchAny(color string, candidates []string) bool {
	for _, candidate := range candidates {
		if colors.Match(color, candidate) {
			return true
		}
	}
	return false
}

func buildReason(p domain.Product, skinTone domain.SkinToneInfo, matchedGood, matchedBad []string) string {
	tone := fmt.Sprintf("%s %s", skinTone.Undertone, skinTone.Depth)

	switch {
	case len(matchedGood) > 0:
		verb := "complements"
		if len(matchedGood) > 1 {
			verb = "complement"
		}
		return fmt.Sprintf("%s %s your %s skin tone.", strings.Join(matchedGood, ", "), verb, tone)
	case len(matchedBad) > 0:
		return fmt.Sprintf("%s may not be the most flattering for your %s skin tone.", strings.Join(matchedBad, ", "), tone)
	default:
		// No palette match either way; fall back to tone alignment.
		for _, color := range p.Colors {
			if colors.Tone(color) == string(skinTone.Undertone) {
				return fmt.Sprintf("%s leans %s, which suits your %s skin tone.", color, skinTone.Undertone, tone)
			}
		}
		return fmt.Sprintf("This %s has neutral compatibility with your %s skin tone.", strings.ToLower(itemLabel(p)), tone)
	}
}

func itemLabel(p domain.Product) string {
	if p.Category != "" && p.Category != domain.Uncategorized {
		return p.Category
	}
	return "item"
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
