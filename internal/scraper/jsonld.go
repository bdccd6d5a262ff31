package scraper

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wishwatch/internal/pricing"
)

// extractJSONLD pulls product facts out of embedded JSON-LD blocks. Every
// block is parsed independently; a malformed block is skipped without
// affecting the others. Across all qualifying Product items the first found
// value per field wins.
func extractJSONLD(doc *goquery.Document) Partial {
	var result Partial

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return
		}
		var payload any
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return
		}

		items := collectItems(payload)
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok || !isProductType(obj["@type"]) {
				continue
			}
			if result.Title == "" {
				if name := stringValue(obj["name"]); name != "" {
					result.Title = cleanText(name)
				}
			}
			if result.ImageURL == "" {
				result.ImageURL = imageValue(obj["image"])
			}
			if result.Price == 0 {
				result.Price = offerPrice(obj["offers"])
			}
		}
	})

	return result
}

// collectItems turns a decoded block into a working item list: a lone object
// becomes a one-element list, and @graph members are appended as they are
// encountered.
func collectItems(payload any) []any {
	var items []any
	switch t := payload.(type) {
	case []any:
		items = append(items, t...)
	case map[string]any:
		items = append(items, t)
	default:
		return nil
	}

	for i := 0; i < len(items); i++ {
		obj, ok := items[i].(map[string]any)
		if !ok {
			continue
		}
		if graph, ok := obj["@graph"].([]any); ok {
			items = append(items, graph...)
		}
	}
	return items
}

func isProductType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "Product"
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Product" {
				return true
			}
		}
	}
	return false
}

func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// imageValue handles the image shapes schema.org allows: a bare URL, an
// array of URLs or objects, or an ImageObject with url/contentUrl.
func imageValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		if len(t) > 0 {
			return imageValue(t[0])
		}
	case map[string]any:
		if u := stringValue(t["url"]); u != "" {
			return u
		}
		return stringValue(t["contentUrl"])
	}
	return ""
}

// offerPrice reads price, then lowPrice, then highPrice from an Offer or
// the first element of an offer list. String values go through the price
// normalizer.
func offerPrice(v any) float64 {
	offer, ok := v.(map[string]any)
	if !ok {
		if list, isList := v.([]any); isList && len(list) > 0 {
			offer, ok = list[0].(map[string]any)
		}
		if !ok {
			return 0
		}
	}

	for _, key := range []string{"price", "lowPrice", "highPrice"} {
		switch val := offer[key].(type) {
		case float64:
			if val > 0 {
				return val
			}
		case string:
			if price, ok := pricing.Parse(val); ok {
				return price
			}
		}
	}
	return 0
}
