// Package colors holds the static color taxonomy: family and tone lookup
// tables plus the fuzzy matching used by compatibility scoring.
package colors

import "strings"

// FamilyOther is returned when a color name maps to no known family.
const FamilyOther = "other"

// families clusters near-synonymous color terms. Multi-word entries must be
// checked before their single-word components ("forest green" before "green"),
// which the substring scan below handles because families are matched against
// the whole input string.
var families = map[string][]string{
	"red":     {"red", "maroon", "burgundy", "crimson", "scarlet", "ruby", "cherry"},
	"pink":    {"pink", "rose", "fuchsia", "magenta", "salmon"},
	"orange":  {"orange", "peach", "coral", "amber", "terracotta", "rust"},
	"yellow":  {"yellow", "gold", "mustard", "lemon", "honey"},
	"green":   {"green", "olive", "emerald", "lime", "mint", "sage", "forest green", "hunter green"},
	"blue":    {"blue", "navy", "teal", "turquoise", "cobalt", "royal blue", "sky blue", "cyan"},
	"purple":  {"purple", "lavender", "violet", "plum", "lilac", "mauve", "indigo", "amethyst"},
	"brown":   {"brown", "tan", "beige", "camel", "khaki", "chestnut", "chocolate", "coffee"},
	"neutral": {"white", "black", "gray", "grey", "silver", "ivory", "cream"},
}

// familyOrder fixes the iteration order so Family is deterministic when a
// compound name mentions terms from several families ("navy red" stays red
// or blue consistently across runs).
var familyOrder = []string{"red", "pink", "orange", "yellow", "green", "blue", "purple", "brown", "neutral"}

// tones maps individual color terms to warm/cool/neutral.
var tones = map[string]string{
	"red": "warm", "burgundy": "cool", "crimson": "warm", "scarlet": "warm",
	"maroon": "cool", "ruby": "cool", "cherry": "cool",
	"pink": "cool", "rose": "cool", "salmon": "warm", "fuchsia": "cool", "magenta": "cool",
	"orange": "warm", "peach": "warm", "coral": "warm", "amber": "warm",
	"terracotta": "warm", "rust": "warm",
	"yellow": "warm", "gold": "warm", "mustard": "warm", "lemon": "cool", "honey": "warm",
	"green": "neutral", "olive": "warm", "emerald": "cool", "lime": "cool",
	"mint": "cool", "sage": "cool", "forest green": "cool", "hunter green": "cool",
	"blue": "cool", "navy": "cool", "teal": "cool", "turquoise": "cool",
	"cobalt": "cool", "royal blue": "cool", "sky blue": "cool", "cyan": "cool",
	"purple": "cool", "lavender": "cool", "violet": "cool", "plum": "cool",
	"lilac": "cool", "mauve": "cool", "indigo": "cool", "amethyst": "cool",
	"brown": "warm", "tan": "warm", "beige": "warm", "camel": "warm",
	"khaki": "warm", "chestnut": "warm", "chocolate": "warm", "coffee": "warm",
	"white": "neutral", "black": "neutral", "gray": "neutral", "grey": "neutral",
	"silver": "cool", "ivory": "warm", "cream": "warm",
}

// Family returns the color family a name belongs to, or FamilyOther.
// Matching is a case-insensitive substring scan, so compound names like
// "Navy Blue Stripe" resolve through their known components.
func Family(color string) string {
	normalized := strings.ToLower(strings.TrimSpace(color))
	if normalized == "" {
		return FamilyOther
	}
	for _, family := range familyOrder {
		for _, term := range families[family] {
			if strings.Contains(normalized, term) {
				return family
			}
		}
	}
	return FamilyOther
}

// Tone returns the undertone (warm, cool or neutral) of a color name,
// defaulting to neutral. Exact matches win over partial ones so that
// "forest green" is cool even though "green" alone is neutral.
func Tone(color string) string {
	normalized := strings.ToLower(strings.TrimSpace(color))
	if tone, ok := tones[normalized]; ok {
		return tone
	}
	// Longest matching term wins among partial matches.
	best, bestLen := "neutral", 0
	for term, tone := range tones {
		if len(term) > bestLen && strings.Contains(normalized, term) {
			best, bestLen = tone, len(term)
		}
	}
	return best
}

// SameFamily reports whether two color names resolve to the same known
// family. Unknown colors never match each other.
func SameFamily(a, b string) bool {
	fa := Family(a)
	if fa == FamilyOther {
		return false
	}
	return fa == Family(b)
}

// Match is the fuzzy equivalence used when comparing a product color against
// a recommended or discouraged color: exact case-insensitive match, substring
// containment in either direction ("Navy Blue" vs "Navy"), or shared family
// ("teal" vs "turquoise").
func Match(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	if la == lb || strings.Contains(la, lb) || strings.Contains(lb, la) {
		return true
	}
	return SameFamily(la, lb)
}
