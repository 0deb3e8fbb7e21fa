package retailer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Extraction strategies for one field are tried in order; the first one that
// yields a usable value wins, otherwise the caller falls back to a sentinel.
// Every function here is total: arbitrary input produces a value or a clean
// "not found", never a panic.

// asString coerces a scalar JSON value to a string. Numbers are formatted
// without an exponent so numeric ids survive the float64 round trip.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

// firstString returns the first non-empty string among the given keys.
func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := asString(raw[key]); s != "" {
			return s
		}
	}
	return ""
}

// asDecimal accepts a bare number, a numeric string, or a nested object with
// a current/value/amount sub-field (itself number-or-string).
func asDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case string:
		s := strings.TrimSpace(strings.TrimPrefix(n, "$"))
		if s == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case map[string]any:
		for _, sub := range []string{"current", "value", "amount", "current_price"} {
			if nested, ok := n[sub]; ok {
				if d, ok := asDecimal(nested); ok {
					return d, true
				}
			}
		}
	}
	return decimal.Zero, false
}

// decimalAt resolves the first parsable decimal among the given keys,
// defaulting to zero. Negative values are treated as unparsable.
func decimalAt(raw map[string]any, keys ...string) decimal.Decimal {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if d, ok := asDecimal(v); ok && !d.IsNegative() {
				return d
			}
		}
	}
	return decimal.Zero
}

// asFloat accepts a number, a numeric string, or a nested object exposing
// one of the given sub-keys.
func asFloat(v any, subKeys ...string) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case map[string]any:
		for _, sub := range subKeys {
			if nested, ok := n[sub]; ok {
				if f, ok := asFloat(nested); ok {
					return f, true
				}
			}
		}
	}
	return 0, false
}

// floatAt resolves the first parsable float among the given keys; nested
// objects are unwrapped through subKeys (e.g. {"average": 4.2}).
func floatAt(raw map[string]any, keys []string, subKeys ...string) float64 {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if f, ok := asFloat(v, subKeys...); ok {
				return f
			}
		}
	}
	return 0
}

// stringList accepts a list of plain strings or a list of objects exposing
// one of the given sub-keys.
func stringList(v any, subKeys ...string) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		switch it := item.(type) {
		case string:
			if s := strings.TrimSpace(it); s != "" {
				out = append(out, s)
			}
		case map[string]any:
			if s := firstString(it, subKeys...); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// stringListAt resolves the first non-empty string list among the given keys.
func stringListAt(raw map[string]any, keys []string, subKeys ...string) []string {
	for _, key := range keys {
		if out := stringList(raw[key], subKeys...); len(out) > 0 {
			return out
		}
	}
	return nil
}

// variantValues digs through a "variant options" list: entries shaped like
// {"name": "Color", "values": [...]} where values is itself a plain or
// object list. Returns the values of the entry whose name matches.
func variantValues(raw map[string]any, listKeys []string, optionName string) []string {
	for _, key := range listKeys {
		options, ok := raw[key].([]any)
		if !ok {
			continue
		}
		for _, opt := range options {
			entry, ok := opt.(map[string]any)
			if !ok {
				continue
			}
			name := strings.ToLower(firstString(entry, "name", "type", "option"))
			if name != optionName {
				continue
			}
			for _, valuesKey := range []string{"values", "options", "items"} {
				if out := stringList(entry[valuesKey], "name", "value", "label"); len(out) > 0 {
					return out
				}
			}
		}
	}
	return nil
}

// imageList accepts a list of URL strings, a list of {url}/{src} objects,
// a single string, or a single nested {url} object.
func imageList(v any) []string {
	switch img := v.(type) {
	case string:
		if s := strings.TrimSpace(img); s != "" {
			return []string{s}
		}
	case []any:
		return stringList(img, "url", "src", "href", "link")
	case map[string]any:
		if s := firstString(img, "url", "src", "href", "link"); s != "" {
			return []string{s}
		}
	}
	return nil
}

// imagesAt resolves the first non-empty image sequence among the given keys.
func imagesAt(raw map[string]any, keys ...string) []string {
	for _, key := range keys {
		if out := imageList(raw[key]); len(out) > 0 {
			return out
		}
	}
	return nil
}

// breadcrumbLeaf extracts the last segment of a breadcrumb path, which may be
// a list of strings/objects or a single delimited string.
func breadcrumbLeaf(v any) string {
	switch bc := v.(type) {
	case []any:
		segments := stringList(bc, "name", "label", "title")
		if len(segments) > 0 {
			return segments[len(segments)-1]
		}
	case string:
		for _, sep := range []string{">", "/", "|"} {
			if strings.Contains(bc, sep) {
				parts := strings.Split(bc, sep)
				return strings.TrimSpace(parts[len(parts)-1])
			}
		}
		return strings.TrimSpace(bc)
	}
	return ""
}

// stockState resolves availability from boolean flags, a free-text
// availability string, or a numeric stock count. Missing data is optimistic.
func stockState(raw map[string]any, boolKeys, textKeys, countKeys []string) bool {
	for _, key := range boolKeys {
		if b, ok := raw[key].(bool); ok {
			return b
		}
	}
	for _, key := range textKeys {
		if s := asString(raw[key]); s != "" {
			lower := strings.ToLower(s)
			if strings.Contains(lower, "out of stock") || strings.Contains(lower, "unavailable") || strings.Contains(lower, "sold out") {
				return false
			}
			if strings.Contains(lower, "in stock") || strings.Contains(lower, "available") {
				return true
			}
		}
	}
	for _, key := range countKeys {
		if v, ok := raw[key]; ok {
			if n, ok := asFloat(v); ok {
				return n > 0
			}
		}
	}
	return true
}

// itemsFrom locates the result list in a search response body: the first of
// the candidate keys holding a list of objects, or the body itself when the
// response is a bare top-level array.
func itemsFrom(body any, keys []string) []map[string]any {
	collect := func(list []any) []map[string]any {
		var out []map[string]any
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}

	switch b := body.(type) {
	case map[string]any:
		for _, key := range keys {
			switch nested := b[key].(type) {
			case []any:
				if items := collect(nested); len(items) > 0 {
					return items
				}
			case map[string]any:
				// One level of nesting, e.g. {"data": {"products": [...]}}.
				for _, inner := range keys {
					if list, ok := nested[inner].([]any); ok {
						if items := collect(list); len(items) > 0 {
							return items
						}
					}
				}
			}
		}
	case []any:
		return collect(b)
	}
	return nil
}
