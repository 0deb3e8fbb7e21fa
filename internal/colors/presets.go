package colors

import "github.com/huefit/backend/internal/domain"

// Preset is a curated color palette for one undertone/depth combination.
type Preset struct {
	ID                   string
	Name                 string
	Undertone            domain.Undertone
	Depth                domain.Depth
	RecommendedColors    []string
	NotRecommendedColors []string
}

// presets covers the nine undertone x depth combinations.
var presets = []Preset{
	{
		ID: "warm_light", Name: "Light Warm",
		Undertone: domain.UndertoneWarm, Depth: domain.DepthLight,
		RecommendedColors: []string{
			"Peach", "Coral", "Warm orange", "Golden yellow", "Olive green",
			"Warm red", "Terracotta", "Ivory", "Cream", "Bronze",
		},
		NotRecommendedColors: []string{
			"Blue-based pink", "Cold blue", "Silver", "Icy pastels", "Deep purple",
		},
	},
	{
		ID: "warm_medium", Name: "Medium Warm",
		Undertone: domain.UndertoneWarm, Depth: domain.DepthMedium,
		RecommendedColors: []string{
			"Amber", "Warm brown", "Orange red", "Teal", "Forest green",
			"Warm coral", "Camel", "Honey", "Mustard", "Bronze",
		},
		NotRecommendedColors: []string{
			"Pastel blue", "Cool gray", "Magenta", "Baby pink", "Icy white",
		},
	},
	{
		ID: "warm_deep", Name: "Deep Warm",
		Undertone: domain.UndertoneWarm, Depth: domain.DepthDeep,
		RecommendedColors: []string{
			"Bright orange", "Warm red", "Gold", "Copper", "Hunter green",
			"Tangerine", "Bright yellow", "Magenta", "Purple", "Fuchsia",
		},
		NotRecommendedColors: []string{
			"Pale pastels", "Light beige", "Muted colors", "Olive", "Dusty rose",
		},
	},
	{
		ID: "cool_light", Name: "Light Cool",
		Undertone: domain.UndertoneCool, Depth: domain.DepthLight,
		RecommendedColors: []string{
			"Rose pink", "Blue-red", "Lavender", "Navy", "Emerald",
			"Raspberry", "Blue-toned purple", "Silver", "Soft white", "Gray",
		},
		NotRecommendedColors: []string{
			"Orange", "Warm yellows", "Peach", "Coral", "Camel",
		},
	},
	{
		ID: "cool_medium", Name: "Medium Cool",
		Undertone: domain.UndertoneCool, Depth: domain.DepthMedium,
		RecommendedColors: []string{
			"Fuchsia", "Plum", "Ruby", "Royal blue", "Pine green",
			"True red", "Cool pink", "Cool mint", "Deep purple", "Burgundy",
		},
		NotRecommendedColors: []string{
			"Rust", "Warm brown", "Yellow", "Orange", "Olive",
		},
	},
	{
		ID: "cool_deep", Name: "Deep Cool",
		Undertone: domain.UndertoneCool, Depth: domain.DepthDeep,
		RecommendedColors: []string{
			"Royal purple", "True red", "Hot pink", "Cobalt blue", "Emerald green",
			"Pure white", "Bright berry tones", "True blue", "Electric blue", "Wine red",
		},
		NotRecommendedColors: []string{
			"Orange", "Khaki", "Muted browns", "Light pastels", "Warm yellows",
		},
	},
	{
		ID: "neutral_light", Name: "Light Neutral",
		Undertone: domain.UndertoneNeutral, Depth: domain.DepthLight,
		RecommendedColors: []string{
			"Soft pink", "Light blue", "Camel", "Medium gray", "Sage green",
			"Periwinkle", "Soft white", "Navy", "Medium purple", "Teal",
		},
		NotRecommendedColors: []string{
			"Very bright colors", "Neon colors", "Very dark colors",
		},
	},
	{
		ID: "neutral_medium", Name: "Medium Neutral",
		Undertone: domain.UndertoneNeutral, Depth: domain.DepthMedium,
		RecommendedColors: []string{
			"Teal", "Medium blue", "Coral", "Burgundy", "Olive green",
			"Medium purple", "Camel", "Forest green", "Russet", "Navy",
		},
		NotRecommendedColors: []string{
			"Neon colors", "Very pale pastels",
		},
	},
	{
		ID: "neutral_deep", Name: "Deep Neutral",
		Undertone: domain.UndertoneNeutral, Depth: domain.DepthDeep,
		RecommendedColors: []string{
			"Emerald green", "Royal blue", "Bright red", "Pure white", "Orange",
			"Fuchsia", "Cobalt blue", "Gold", "Bright yellow", "Purple",
		},
		NotRecommendedColors: []string{
			"Beige", "Pale yellow", "Light pastels", "Muted tones",
		},
	},
}

// Presets returns all curated palettes.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetFor returns the curated palette for an undertone/depth pair, or nil
// when either axis is unknown. The result is a copy; callers may mutate it.
func PresetFor(undertone domain.Undertone, depth domain.Depth) *Preset {
	for i := range presets {
		if presets[i].Undertone == undertone && presets[i].Depth == depth {
			p := presets[i]
			p.RecommendedColors = append([]string(nil), p.RecommendedColors...)
			p.NotRecommendedColors = append([]string(nil), p.NotRecommendedColors...)
			return &p
		}
	}
	return nil
}
