package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyForUnknownTag(t *testing.T) {
	doc := mustDoc(t, `<html><body><h1 id="productTitle">Should Not Match</h1></body></html>`)

	for _, tag := range []string{"generic", "", "no-such-retailer"} {
		strategy := strategyFor(tag)
		require.NotNil(t, strategy, "tag %q", tag)
		assert.Equal(t, Partial{}, strategy(doc), "tag %q", tag)
	}
}

func TestCascadeRun(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<h1 data-test="product-title">  Ceramic   Mug  </h1>
		<img data-test="hero-image" src="https://cdn.example.com/mug.jpg">
		<span data-test="product-price">not-a-price</span>
		<span data-test="current-price">$14.99</span>
	</body></html>`)

	got := cascade{
		title: []candidate{text(`[data-test="product-title"]`)},
		image: []candidate{attr(`[data-test="hero-image"]`, "src")},
		price: []candidate{
			text(`[data-test="product-price"]`),
			text(`[data-test="current-price"]`),
		},
	}.run(doc)

	assert.Equal(t, "Ceramic Mug", got.Title)
	assert.Equal(t, "https://cdn.example.com/mug.jpg", got.ImageURL)
	assert.Equal(t, 14.99, got.Price, "unparsable candidate must not stop the cascade")
}

func TestCascadeMissingEverything(t *testing.T) {
	doc := mustDoc(t, `<html><body></body></html>`)

	got := cascade{
		title: []candidate{text("#title")},
		image: []candidate{attr("#image", "src")},
		price: []candidate{text("#price")},
	}.run(doc)

	assert.Equal(t, Partial{}, got)
}

func TestExtractAmazon(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<h1 id="productTitle">  Mechanical Keyboard  </h1>
		<span class="a-price"><span class="a-offscreen">$89.99</span></span>
		<img id="landingImage" src="https://m.media-amazon.com/images/I/keeb._AC_SX300_.jpg"
			data-a-dynamic-image='{"https://m.media-amazon.com/images/I/keeb-small.jpg":[600,600],"https://m.media-amazon.com/images/I/keeb-large.jpg":[1500,1500]}'>
	</body></html>`)

	got := extractAmazon(doc)
	assert.Equal(t, "Mechanical Keyboard", got.Title)
	assert.Equal(t, 89.99, got.Price)
	assert.Equal(t, "https://m.media-amazon.com/images/I/keeb-large.jpg", got.ImageURL,
		"thumbnail src must be replaced with the widest dynamic-image variant")
}

func TestAmazonDynamicImageMalformed(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<img id="landingImage" data-a-dynamic-image="{broken">
	</body></html>`)

	assert.Empty(t, amazonDynamicImage(doc))
}
