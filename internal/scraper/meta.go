package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wishwatch/internal/pricing"
)

var (
	siteSuffix = regexp.MustCompile(`\s*[-|–—:]\s*[^-|–—:]*$`)
	pipeSuffix = regexp.MustCompile(`\s*\|\s*[^|]*$`)
)

// extractMetaTags reads Open Graph, Twitter Card and generic meta tags.
// These are social-share oriented and can lag the live price, which is why
// they rank below structured data in the merge order.
func extractMetaTags(doc *goquery.Document) Partial {
	var result Partial

	title := firstNonEmpty(
		metaContent(doc, `meta[property="og:title"]`),
		metaContent(doc, `meta[name="twitter:title"]`),
		metaContent(doc, `meta[name="title"]`),
		collapseSpace(doc.Find("title").First().Text()),
	)
	result.Title = stripSiteSuffix(title)

	result.ImageURL = firstNonEmpty(
		metaContent(doc, `meta[property="og:image:secure_url"]`),
		metaContent(doc, `meta[property="og:image"]`),
		metaContent(doc, `meta[name="twitter:image"]`),
		metaContent(doc, `meta[name="twitter:image:src"]`),
	)

	priceStr := firstNonEmpty(
		metaContent(doc, `meta[property="og:price:amount"]`),
		metaContent(doc, `meta[property="product:price:amount"]`),
		metaContent(doc, `meta[property="price:amount"]`),
		metaContent(doc, `meta[itemprop="price"]`),
	)
	if priceStr != "" {
		if price, ok := pricing.Parse(priceStr); ok {
			result.Price = price
		}
	}

	return result
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// stripSiteSuffix drops a trailing " - Site Name" / " | Site Name" style
// segment from the chosen title.
func stripSiteSuffix(title string) string {
	if title == "" {
		return ""
	}
	title = siteSuffix.ReplaceAllString(title, "")
	title = pipeSuffix.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
