package scraper

// Target marks product page elements with data-test attributes.
var targetCascade = cascade{
	title: []candidate{
		text(`[data-test="product-title"]`),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-test="product-image"] img`, "src"),
		attr("picture img", "src"),
	},
	price: []candidate{
		text(`[data-test="product-price"]`),
		text(`[data-test="current-price"]`),
	},
}
