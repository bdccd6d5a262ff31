package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONLDProduct(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">
		{
			"@context": "https://schema.org",
			"@type": "Product",
			"name": "  Wireless Headphones  ",
			"image": "https://cdn.example.com/headphones.jpg",
			"offers": {"@type": "Offer", "price": 149.99, "priceCurrency": "USD"}
		}
		</script>
	</head><body></body></html>`)

	got := extractJSONLD(doc)
	assert.Equal(t, "Wireless Headphones", got.Title)
	assert.Equal(t, "https://cdn.example.com/headphones.jpg", got.ImageURL)
	assert.Equal(t, 149.99, got.Price)
}

func TestExtractJSONLDMalformedBlockSkipped(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">{not valid json at all</script>
		<script type="application/ld+json">
		{"@type": "Product", "name": "Survivor", "offers": {"price": "19.99"}}
		</script>
	</head><body></body></html>`)

	got := extractJSONLD(doc)
	assert.Equal(t, "Survivor", got.Title)
	assert.Equal(t, 19.99, got.Price)
}

func TestExtractJSONLDGraph(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">
		{
			"@context": "https://schema.org",
			"@graph": [
				{"@type": "WebPage", "name": "Some Page"},
				{"@type": "Product", "name": "Graph Product", "offers": {"lowPrice": 25, "highPrice": 40}}
			]
		}
		</script>
	</head><body></body></html>`)

	got := extractJSONLD(doc)
	assert.Equal(t, "Graph Product", got.Title)
	assert.Equal(t, 25.0, got.Price)
}

func TestExtractJSONLDArrayTypeAndOfferList(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">
		[
			{"@type": "BreadcrumbList", "name": "crumbs"},
			{
				"@type": ["Product", "Thing"],
				"name": "Sneakers",
				"image": [{"@type": "ImageObject", "url": "https://cdn.example.com/sneaker.jpg"}],
				"offers": [{"price": "89,99"}]
			}
		]
		</script>
	</head><body></body></html>`)

	got := extractJSONLD(doc)
	assert.Equal(t, "Sneakers", got.Title)
	assert.Equal(t, "https://cdn.example.com/sneaker.jpg", got.ImageURL)
	assert.Equal(t, 89.99, got.Price)
}

func TestExtractJSONLDFirstProductWins(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">
		{"@type": "Product", "name": "First", "offers": {"price": 10}}
		</script>
		<script type="application/ld+json">
		{"@type": "Product", "name": "Second", "offers": {"price": 20}}
		</script>
	</head><body></body></html>`)

	got := extractJSONLD(doc)
	assert.Equal(t, "First", got.Title)
	assert.Equal(t, 10.0, got.Price)
}

func TestExtractJSONLDNonProductIgnored(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<script type="application/ld+json">
		{"@type": "Organization", "name": "Example Corp"}
		</script>
	</head><body></body></html>`)

	got := extractJSONLD(doc)
	assert.Equal(t, Partial{}, got)
}

func TestImageValueShapes(t *testing.T) {
	assert.Equal(t, "https://a.example/x.jpg", imageValue("https://a.example/x.jpg"))
	assert.Equal(t, "https://a.example/x.jpg", imageValue([]any{"https://a.example/x.jpg", "https://a.example/y.jpg"}))
	assert.Equal(t, "https://a.example/c.jpg", imageValue(map[string]any{"contentUrl": "https://a.example/c.jpg"}))
	assert.Empty(t, imageValue([]any{}))
	assert.Empty(t, imageValue(42.0))
}

func TestOfferPriceFallbackOrder(t *testing.T) {
	assert.Equal(t, 12.0, offerPrice(map[string]any{"price": 12.0, "lowPrice": 8.0}))
	assert.Equal(t, 8.0, offerPrice(map[string]any{"lowPrice": 8.0, "highPrice": 16.0}))
	assert.Equal(t, 16.0, offerPrice(map[string]any{"highPrice": 16.0}))
	assert.Equal(t, 0.0, offerPrice(map[string]any{"price": "not a price"}))
	assert.Equal(t, 0.0, offerPrice(nil))
}
