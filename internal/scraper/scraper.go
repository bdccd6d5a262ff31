package scraper

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"wishwatch/internal/observability"
	"wishwatch/internal/retail"
	"wishwatch/internal/urlutil"
)

// PageFetcher retrieves a page body. Implementations surface non-2xx
// responses and timeouts as errors, never as empty bodies.
type PageFetcher interface {
	FetchPage(ctx context.Context, rawURL string) ([]byte, int, error)
}

// Scraper runs the layered extraction pipeline against product pages.
// It is stateless; concurrent Extract calls need no coordination.
type Scraper struct {
	fetcher PageFetcher
}

func New(fetcher PageFetcher) *Scraper {
	return &Scraper{fetcher: fetcher}
}

// Extract fetches a product page and recovers title, price and image.
// A fetch failure is returned as an error so callers can tell "could not
// reach the page" apart from "reached it but found nothing" (zero fields,
// nil error). The page is parsed once; every extraction layer works on the
// same document.
func (s *Scraper) Extract(ctx context.Context, rawURL string) (Product, error) {
	identity := retail.Classify(rawURL)

	body, _, err := s.fetcher.FetchPage(ctx, rawURL)
	if err != nil {
		observability.IncError(observability.ClassifyFetchError(err), "scraper")
		return Product{}, err
	}
	observability.IncPagesFetched()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		observability.IncError(observability.ErrorParsing, "scraper")
		return Product{}, fmt.Errorf("parse page: %w", err)
	}

	// Decreasing trust: hand-written retailer selectors, then structured
	// data, then social meta tags, then heuristics.
	product := merge([]layer{
		{source: SourceRetailer, data: strategyFor(identity.TypeTag)(doc)},
		{source: SourceStructured, data: extractJSONLD(doc)},
		{source: SourceMeta, data: extractMetaTags(doc)},
		{source: SourceGeneric, data: extractGeneric(doc)},
	})

	product.Retailer = identity.DisplayName
	product.ImageURL = urlutil.AbsoluteURL(product.ImageURL, rawURL)

	observability.IncProductsScraped()
	return product, nil
}
