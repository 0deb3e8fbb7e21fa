package retailer

// Schema lists, per canonical field, the raw JSON keys an adapter tries in
// priority order. One normalization engine plus N schemas replaces
// per-retailer branching in calling code; anything a schema leaves empty
// falls back to the generic conventions below.
type Schema struct {
	ResultsKeys []string // result-list key in a search response

	IDKeys          []string
	NameKeys        []string
	DescriptionKeys []string
	PriceKeys       []string
	CurrencyKeys    []string

	ColorListKeys   []string // list-valued color candidates
	ColorScalarKeys []string // single scalar color fallback
	SizeListKeys    []string
	SizeScalarKeys  []string
	VariantKeys     []string // nested variant-option lists

	ImageKeys      []string
	CategoryKeys   []string
	BreadcrumbKeys []string
	GenderKeys     []string

	RatingKeys      []string
	ReviewCountKeys []string

	StockBoolKeys  []string
	StockTextKeys  []string
	StockCountKeys []string

	URLKeys []string
}

// DefaultSchema holds the retailer-agnostic conventions used by the generic
// adapter and merged under every specific one.
func DefaultSchema() Schema {
	return Schema{
		ResultsKeys: []string{"products", "items", "results", "data"},

		IDKeys:          []string{"id", "product_id", "productId", "sku", "asin", "tcin"},
		NameKeys:        []string{"name", "title", "product_name", "productName"},
		DescriptionKeys: []string{"description", "short_description", "summary", "about"},
		PriceKeys:       []string{"price", "current_price", "sale_price", "list_price"},
		CurrencyKeys:    []string{"currency", "currency_code", "priceCurrency"},

		ColorListKeys:   []string{"colors", "colours", "color_options", "available_colors"},
		ColorScalarKeys: []string{"color", "colour"},
		SizeListKeys:    []string{"sizes", "size_options", "available_sizes"},
		SizeScalarKeys:  []string{"size"},
		VariantKeys:     []string{"variants", "variant_options", "options"},

		ImageKeys:      []string{"images", "image_urls", "image", "thumbnail", "picture"},
		CategoryKeys:   []string{"category", "product_type", "type", "department"},
		BreadcrumbKeys: []string{"breadcrumbs", "category_path", "categoryPath"},
		GenderKeys:     []string{"gender", "department", "audience"},

		RatingKeys:      []string{"rating", "average_rating", "stars", "ratings"},
		ReviewCountKeys: []string{"review_count", "reviews", "ratings_count", "num_reviews"},

		StockBoolKeys:  []string{"in_stock", "is_in_stock", "inStock", "available"},
		StockTextKeys:  []string{"availability", "stock_status", "availability_status"},
		StockCountKeys: []string{"stock", "stock_count", "inventory", "quantity"},

		URLKeys: []string{"url", "product_url", "link", "permalink"},
	}
}

// merge overlays s on top of the defaults: any field s leaves empty keeps
// the generic key chain.
func (s Schema) merge(base Schema) Schema {
	pick := func(override, fallback []string) []string {
		if len(override) > 0 {
			return override
		}
		return fallback
	}
	return Schema{
		ResultsKeys:     pick(s.ResultsKeys, base.ResultsKeys),
		IDKeys:          pick(s.IDKeys, base.IDKeys),
		NameKeys:        pick(s.NameKeys, base.NameKeys),
		DescriptionKeys: pick(s.DescriptionKeys, base.DescriptionKeys),
		PriceKeys:       pick(s.PriceKeys, base.PriceKeys),
		CurrencyKeys:    pick(s.CurrencyKeys, base.CurrencyKeys),
		ColorListKeys:   pick(s.ColorListKeys, base.ColorListKeys),
		ColorScalarKeys: pick(s.ColorScalarKeys, base.ColorScalarKeys),
		SizeListKeys:    pick(s.SizeListKeys, base.SizeListKeys),
		SizeScalarKeys:  pick(s.SizeScalarKeys, base.SizeScalarKeys),
		VariantKeys:     pick(s.VariantKeys, base.VariantKeys),
		ImageKeys:       pick(s.ImageKeys, base.ImageKeys),
		CategoryKeys:    pick(s.CategoryKeys, base.CategoryKeys),
		BreadcrumbKeys:  pick(s.BreadcrumbKeys, base.BreadcrumbKeys),
		GenderKeys:      pick(s.GenderKeys, base.GenderKeys),
		RatingKeys:      pick(s.RatingKeys, base.RatingKeys),
		ReviewCountKeys: pick(s.ReviewCountKeys, base.ReviewCountKeys),
		StockBoolKeys:   pick(s.StockBoolKeys, base.StockBoolKeys),
		StockTextKeys:   pick(s.StockTextKeys, base.StockTextKeys),
		StockCountKeys:  pick(s.StockCountKeys, base.StockCountKeys),
		URLKeys:         pick(s.URLKeys, base.URLKeys),
	}
}
