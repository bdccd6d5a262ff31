package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenericPriceFromDataAttribute(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<span data-price="34.50">$29.00 shown with discount badge</span>
	</body></html>`)

	assert.Equal(t, 34.5, genericPrice(doc))
}

func TestGenericPriceFromSelectorText(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<div class="product-price">  $ 1,299.00  </div>
	</body></html>`)

	assert.Equal(t, 1299.0, genericPrice(doc))
}

func TestGenericPriceBodyScanFallback(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<p>Limited time! Special Offer: $49.99 today only.</p>
	</body></html>`)

	assert.Equal(t, 49.99, genericPrice(doc))
}

func TestGenericPriceBodyScanCeiling(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<p>Over $2,000,000 sold to date. Yours for just $59.99.</p>
	</body></html>`)

	assert.Equal(t, 59.99, genericPrice(doc))
}

func TestGenericPriceNothingFound(t *testing.T) {
	doc := mustDoc(t, `<html><body><p>No numbers here.</p></body></html>`)
	assert.Zero(t, genericPrice(doc))
}

func TestGenericImageSkipsPlaceholder(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<div class="product-image"><img src="/img/placeholder.gif"></div>
		<div class="product-gallery"><img src="/img/product/chair.jpg"></div>
	</body></html>`)

	assert.Equal(t, "/img/product/chair.jpg", genericImage(doc))
}

func TestGenericImageKeywordScan(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<img src="/assets/logo.png" width="120" height="40">
		<img src="/media/catalog/lamp-main.jpg" width="640" height="640">
	</body></html>`)

	assert.Equal(t, "/media/catalog/lamp-main.jpg", genericImage(doc))
}

func TestGenericImageRejectsSmallDeclaredSize(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<img src="/media/catalog/lamp-thumb.jpg" width="64" height="64">
	</body></html>`)

	assert.Empty(t, genericImage(doc))
}

func TestGenericImageUndeclaredSizeAccepted(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<img src="/images/item/kettle.jpg">
	</body></html>`)

	assert.Equal(t, "/images/item/kettle.jpg", genericImage(doc))
}

func TestGenericImageSrcset(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<picture>
			<source srcset="/img/sofa-800.jpg 800w, /img/sofa-1600.jpg 1600w">
		</picture>
	</body></html>`)

	assert.Equal(t, "/img/sofa-800.jpg", genericImage(doc))
}
