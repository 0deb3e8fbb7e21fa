package retailer

import (
	"math"

	"github.com/huefit/backend/internal/domain"
)

// extraKeys are opportunistically copied into Product.Extra when present.
var extraKeys = []string{
	"brand", "material", "fabric",
	"on_sale", "is_sale", "sale",
	"original_price", "list_price", "was_price",
	"discount", "discount_percent",
}

// BuildProduct normalizes one raw catalog item into the canonical Product.
// Each field is resolved through the schema's ordered fallback chain; fields
// the payload does not expose come out as sentinels, never as zero values
// the caller has to guard against. The function is total and idempotent:
// any input map yields a fully populated Product, and the same input always
// yields the same output.
func BuildProduct(raw map[string]any, schema Schema, ret domain.Retailer) domain.Product {
	if raw == nil {
		raw = map[string]any{}
	}

	name := firstString(raw, schema.NameKeys...)
	category := resolveCategory(raw, schema)
	department := firstString(raw, "department")

	p := domain.Product{
		ID:           firstString(raw, schema.IDKeys...),
		Name:         name,
		Description:  firstString(raw, schema.DescriptionKeys...),
		Price:        decimalAt(raw, schema.PriceKeys...),
		Currency:     resolveCurrency(raw, schema),
		Colors:       resolveOptions(raw, schema.ColorListKeys, schema.ColorScalarKeys, schema.VariantKeys, "color", domain.UnknownColor),
		Sizes:        resolveOptions(raw, schema.SizeListKeys, schema.SizeScalarKeys, schema.VariantKeys, "size", domain.OneSize),
		Images:       resolveImages(raw, schema),
		Category:     category,
		RetailerName: ret.Name,
		ExternalURL:  resolveURL(raw, schema, ret),
		Gender:       resolveGender(raw, schema, category, name, department),
		Rating:       clampRating(floatAt(raw, schema.RatingKeys, "average", "value", "rate")),
		ReviewCount:  clampCount(floatAt(raw, schema.ReviewCountKeys, "count", "total", "value")),
		InStock:      stockState(raw, schema.StockBoolKeys, schema.StockTextKeys, schema.StockCountKeys),
		Extra:        resolveExtra(raw),
	}
	return p
}

func resolveCurrency(raw map[string]any, schema Schema) string {
	if c := firstString(raw, schema.CurrencyKeys...); c != "" {
		return c
	}
	// Price objects sometimes carry their own currency.
	for _, key := range schema.PriceKeys {
		if nested, ok := raw[key].(map[string]any); ok {
			if c := firstString(nested, "currency", "currency_code"); c != "" {
				return c
			}
		}
	}
	return domain.DefaultCurrency
}

// resolveOptions tries, in order: a plain or object list under listKeys, a
// variant-options entry named optionName, then a single scalar field. The
// sentinel is the terminal default.
func resolveOptions(raw map[string]any, listKeys, scalarKeys, variantKeys []string, optionName, sentinel string) []string {
	if out := stringListAt(raw, listKeys, "name", "value", "label"); len(out) > 0 {
		return out
	}
	if out := variantValues(raw, variantKeys, optionName); len(out) > 0 {
		return out
	}
	if s := firstString(raw, scalarKeys...); s != "" {
		return []string{s}
	}
	return []string{sentinel}
}

func resolveImages(raw map[string]any, schema Schema) []string {
	if out := imagesAt(raw, schema.ImageKeys...); len(out) > 0 {
		return out
	}
	return []string{domain.PlaceholderImageURL}
}

func resolveCategory(raw map[string]any, schema Schema) string {
	if c := firstString(raw, schema.CategoryKeys...); c != "" {
		return ClassifyCategory(c)
	}
	for _, key := range schema.BreadcrumbKeys {
		if leaf := breadcrumbLeaf(raw[key]); leaf != "" {
			return ClassifyCategory(leaf)
		}
	}
	return domain.Uncategorized
}

func resolveGender(raw map[string]any, schema Schema, category, name, department string) domain.Gender {
	if explicit := firstString(raw, schema.GenderKeys...); explicit != "" {
		return ClassifyGender(explicit)
	}
	return ClassifyGender(category + " " + name + " " + department)
}

func resolveURL(raw map[string]any, schema Schema, ret domain.Retailer) string {
	if u := firstString(raw, schema.URLKeys...); u != "" {
		return u
	}
	return ret.BaseURL
}

func resolveExtra(raw map[string]any) map[string]any {
	var extra map[string]any
	for _, key := range extraKeys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = v
	}
	return extra
}

func clampRating(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

// clampCount caps before the int conversion: converting a float64 above the
// int range is not defined to saturate and can come out negative.
func clampCount(n float64) int {
	if math.IsNaN(n) || n < 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
