package scraper

import "github.com/PuerkitoBio/goquery"

// Product is the consolidated result of one extraction call. Zero values
// mean the field could not be recovered; Retailer is always set.
type Product struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Retailer    string  `json:"retailer"`
	PriceSource string  `json:"priceSource,omitempty"`
}

// Partial is a single extractor's contribution. Any subset of fields may be
// populated; the merge step keeps the first non-empty value per field.
type Partial struct {
	Title    string
	Price    float64
	ImageURL string
}

// Strategy extracts product facts from a parsed document. Strategies must
// not fail; anything they cannot find stays zero.
type Strategy func(doc *goquery.Document) Partial

// Price source labels, in decreasing order of trust.
const (
	SourceRetailer   = "retailer"
	SourceStructured = "jsonld"
	SourceMeta       = "meta"
	SourceGeneric    = "generic"
)

type layer struct {
	source string
	data   Partial
}

// merge folds ordered extraction layers into one Product, first non-empty
// value per field. The layer that supplied the price is recorded so callers
// can apply source-dependent acceptance policy.
func merge(layers []layer) Product {
	var p Product
	for _, l := range layers {
		if p.Title == "" {
			p.Title = l.data.Title
		}
		if p.Price == 0 && l.data.Price > 0 {
			p.Price = l.data.Price
			p.PriceSource = l.source
		}
		if p.ImageURL == "" {
			p.ImageURL = l.data.ImageURL
		}
	}
	return p
}
