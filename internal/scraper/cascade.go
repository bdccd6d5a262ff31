package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wishwatch/internal/pricing"
)

// candidate is one place a field might live: a CSS selector plus either an
// attribute name or, when attr is empty, the element's text content.
type candidate struct {
	selector string
	attr     string
}

func text(selector string) candidate { return candidate{selector: selector} }

func attr(selector, name string) candidate { return candidate{selector: selector, attr: name} }

// cascade is the uniform shape of a retailer-specific extractor: ordered
// candidate lists per field, first match wins. Most retailers differ only
// in these tables, so adding one means adding data, not code.
type cascade struct {
	title []candidate
	image []candidate
	price []candidate
}

func (c cascade) run(doc *goquery.Document) Partial {
	return Partial{
		Title:    firstValue(doc, c.title),
		ImageURL: firstValue(doc, c.image),
		Price:    firstPrice(doc, c.price),
	}
}

func firstValue(doc *goquery.Document, candidates []candidate) string {
	for _, cand := range candidates {
		if v := lookup(doc, cand); v != "" {
			return v
		}
	}
	return ""
}

// firstPrice keeps trying candidates until one normalizes to a usable
// price; a populated but unparsable candidate does not stop the cascade.
func firstPrice(doc *goquery.Document, candidates []candidate) float64 {
	for _, cand := range candidates {
		raw := lookup(doc, cand)
		if raw == "" {
			continue
		}
		if price, ok := pricing.Parse(raw); ok {
			return price
		}
	}
	return 0
}

func lookup(doc *goquery.Document, cand candidate) string {
	sel := doc.Find(cand.selector).First()
	if sel.Length() == 0 {
		return ""
	}
	if cand.attr != "" {
		v, _ := sel.Attr(cand.attr)
		return strings.TrimSpace(v)
	}
	return collapseSpace(sel.Text())
}
