package scraper

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Amazon price locations, in order of preference. The buy box moves around
// between page templates so the list is long.
var amazonPriceCandidates = []candidate{
	text(".a-price .a-offscreen"),
	text("#priceblock_ourprice"),
	text("#priceblock_dealprice"),
	text("#priceblock_saleprice"),
	text(".priceToPay .a-offscreen"),
	text("#corePrice_feature_div .a-offscreen"),
	text("#corePriceDisplay_desktop_feature_div .a-offscreen"),
	text(".a-price-whole"),
	text("#price_inside_buybox"),
	text("#newBuyBoxPrice"),
}

var amazonTitleCandidates = []candidate{
	text("#productTitle"),
	text("#title span"),
}

var amazonImageCandidates = []candidate{
	attr("#landingImage", "src"),
	attr("#landingImage", "data-old-hires"),
	attr("#imgBlkFront", "src"),
	attr("#main-image", "src"),
	attr(".imgTagWrapper img", "src"),
}

// extractAmazon is the one strategy that cannot be a plain cascade: the
// primary image src is often a thumbnail, and the full-resolution variants
// hide in a JSON attribute keyed by URL with [width, height] values.
func extractAmazon(doc *goquery.Document) Partial {
	result := cascade{
		title: amazonTitleCandidates,
		image: amazonImageCandidates,
		price: amazonPriceCandidates,
	}.run(doc)

	// "._" in the URL marks a sized-down derivative.
	if result.ImageURL == "" || strings.Contains(result.ImageURL, "._") {
		if hiRes := amazonDynamicImage(doc); hiRes != "" {
			result.ImageURL = hiRes
		}
	}

	return result
}

func amazonDynamicImage(doc *goquery.Document) string {
	raw, ok := doc.Find("#landingImage").Attr("data-a-dynamic-image")
	if !ok || raw == "" {
		return ""
	}

	var variants map[string][]float64
	if err := json.Unmarshal([]byte(raw), &variants); err != nil {
		return ""
	}

	var best string
	var bestWidth float64
	for u, dims := range variants {
		if len(dims) == 0 {
			continue
		}
		if best == "" || dims[0] > bestWidth {
			best = u
			bestWidth = dims[0]
		}
	}
	return best
}
