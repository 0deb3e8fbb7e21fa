package domain

// Undertone is the warm/cool/neutral axis of a skin-tone profile.
type Undertone string

const (
	UndertoneWarm    Undertone = "warm"
	UndertoneCool    Undertone = "cool"
	UndertoneNeutral Undertone = "neutral"
)

// Depth is the light/medium/deep axis of a skin-tone profile.
type Depth string

const (
	DepthLight  Depth = "light"
	DepthMedium Depth = "medium"
	DepthDeep   Depth = "deep"
)

// SkinToneInfo is the user's skin-tone profile, produced elsewhere by the
// image-based detection step and consumed here as plain data.
type SkinToneInfo struct {
	Undertone            Undertone `json:"undertone"`
	Depth                Depth     `json:"depth"`
	RecommendedColors    []string  `json:"recommendedColors"`
	NotRecommendedColors []string  `json:"notRecommendedColors"`
}

// Complete reports whether both axes of the profile are known.
func (s SkinToneInfo) Complete() bool {
	return s.Undertone != "" && s.Depth != ""
}

// ProductCompatibility is the derived score for one (product, profile) pair.
// It is recomputed on demand and never persisted.
type ProductCompatibility struct {
	ProductID          string `json:"productId"`
	CompatibilityScore int    `json:"compatibilityScore"`
	Reason             string `json:"reason"`
}
