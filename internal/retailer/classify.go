package retailer

import (
	"strings"

	"github.com/huefit/backend/internal/domain"
)

// categoryRule maps any of a keyword set to one canonical category.
// Rules are tried in order and the first match wins; when a title mentions
// keywords from several rules the earlier rule decides, which keeps
// classification deterministic even if occasionally imprecise.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{[]string{"t-shirt", "tshirt", "tee", "shirt", "blouse", "tank", "camisole", "polo", "top"}, "Tops"},
	{[]string{"dress", "gown", "jumpsuit", "romper"}, "Dresses"},
	{[]string{"skirt"}, "Skirts"},
	{[]string{"pant", "trouser", "jean", "legging", "chino", "short", "jogger"}, "Pants"},
	{[]string{"jacket", "coat", "sweater", "hoodie", "cardigan", "blazer", "parka", "vest"}, "Outerwear"},
	{[]string{"shoe", "sneaker", "boot", "sandal", "loafer", "heel", "trainer"}, "Shoes"},
	{[]string{"accessor", "hat", "scarf", "bag", "belt", "glove", "jewelry", "jewellery", "sunglass", "watch", "sock"}, "Accessories"},
	{[]string{"swim", "bikini"}, "Swimwear"},
	{[]string{"active", "sport", "athletic", "gym"}, "Activewear"},
}

// ClassifyCategory maps a raw category string onto the fixed taxonomy via
// case-insensitive substring matching. Unmatched non-empty input passes
// through verbatim; empty input becomes the Uncategorized sentinel.
func ClassifyCategory(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.Uncategorized
	}
	lower := strings.ToLower(trimmed)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return trimmed
}

var (
	womenKeywords = []string{"women", "woman", "female", "ladies", "girl"}
	menKeywords   = []string{"men", "man", "male", "boy"}
)

// ClassifyGender maps free text to a gender. Women keywords are checked
// first since "women" contains "men".
func ClassifyGender(text string) domain.Gender {
	lower := strings.ToLower(text)
	for _, kw := range womenKeywords {
		if strings.Contains(lower, kw) {
			return domain.GenderWomen
		}
	}
	for _, kw := range menKeywords {
		if strings.Contains(lower, kw) {
			return domain.GenderMen
		}
	}
	return domain.GenderUnisex
}
