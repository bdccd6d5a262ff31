package refresh

import "wishwatch/internal/scraper"

// PricePolicy decides whether a scraped price is trustworthy enough to
// overwrite a stored one. Generic-fallback prices are pattern-matching
// guesses, so they carry a higher floor to filter out unrelated on-page
// numbers (star ratings, counts, shipping fees).
type PricePolicy struct {
	Min        float64
	Max        float64
	MinGeneric float64
}

// DefaultPolicy is used by the background refresher. The interactive add
// flow stays permissive and does not apply a policy at all.
var DefaultPolicy = PricePolicy{Min: 5, Max: 10000, MinGeneric: 15}

func (p PricePolicy) Accept(product scraper.Product) bool {
	if product.Price <= 0 {
		return false
	}
	if product.Price < p.Min || product.Price > p.Max {
		return false
	}
	if product.PriceSource == scraper.SourceGeneric && product.Price < p.MinGeneric {
		return false
	}
	return true
}
