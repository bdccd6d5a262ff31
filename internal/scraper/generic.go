package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wishwatch/internal/pricing"
)

// Last-resort heuristics for pages no other layer understood. Selector
// conventions here are common across storefront platforms rather than tied
// to any one retailer.

var genericPriceSelectors = []string{
	`[itemprop="price"]`,
	`[data-price]`,
	`[data-product-price]`,
	`.product-price`,
	`.price-current`,
	`.price-value`,
	`.current-price`,
	`.sale-price`,
	`.special-price`,
	`.offer-price`,
	`#price`,
	`.price`,
	`[class*="price"]`,
}

var genericImageSelectors = []string{
	`[itemprop="image"]`,
	`.product-image img`,
	`.product-gallery img`,
	`.product-photo img`,
	`#product-image img`,
	`[data-testid="product-image"] img`,
	`.gallery-image img`,
	`.main-image img`,
	`picture source`,
	`picture img`,
}

var productImageKeywords = []string{"product", "media", "images", "catalog", "item", "goods"}

var bodyPricePattern = regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)

// genericPriceCeiling bounds what the raw body-text scan will accept; page
// text is full of numbers that are not prices.
const genericPriceCeiling = 100000

func extractGeneric(doc *goquery.Document) Partial {
	return Partial{
		Price:    genericPrice(doc),
		ImageURL: genericImage(doc),
	}
}

func genericPrice(doc *goquery.Document) float64 {
	for _, selector := range genericPriceSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}

		// Data attributes are cleaner than rendered text when present.
		for _, name := range []string{"data-price", "content", "data-product-price"} {
			if v, ok := sel.Attr(name); ok && v != "" {
				if price, parsed := pricing.Parse(v); parsed {
					return price
				}
			}
		}

		if price, ok := pricing.Parse(collapseSpace(sel.Text())); ok {
			return price
		}
	}

	// Nothing matched a known selector; scan the rendered body text for a
	// dollar-prefixed amount.
	for _, match := range bodyPricePattern.FindAllStringSubmatch(doc.Find("body").Text(), -1) {
		if price, ok := pricing.Parse(match[1]); ok && price < genericPriceCeiling {
			return price
		}
	}
	return 0
}

func genericImage(doc *goquery.Document) string {
	for _, selector := range genericImageSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		src := imageSource(sel)
		if src != "" && !strings.Contains(src, "placeholder") && !strings.Contains(src, "spinner") {
			return src
		}
	}

	// Fall back to any <img> whose URL looks product-related, preferring
	// ones declared large or with no declared size at all.
	var found string
	doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			src, _ = sel.Attr("data-src")
		}
		if src == "" {
			return true
		}

		lower := strings.ToLower(src)
		keyword := false
		for _, kw := range productImageKeywords {
			if strings.Contains(lower, kw) {
				keyword = true
				break
			}
		}
		if !keyword {
			return true
		}

		width := attrInt(sel, "width")
		height := attrInt(sel, "height")
		if width >= 200 || height >= 200 || (width == 0 && height == 0) {
			found = src
			return false
		}
		return true
	})
	return found
}

func imageSource(sel *goquery.Selection) string {
	if src, ok := sel.Attr("src"); ok && src != "" {
		return src
	}
	if srcset, ok := sel.Attr("srcset"); ok && srcset != "" {
		return strings.Fields(srcset)[0]
	}
	src, _ := sel.Attr("data-src")
	return src
}

func attrInt(sel *goquery.Selection, name string) int {
	v, ok := sel.Attr(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}
