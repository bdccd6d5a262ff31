package scraper

// Walmart mixes microdata with data-testid/data-automation hooks.
var walmartCascade = cascade{
	title: []candidate{
		text(`[itemprop="name"]`),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-testid="hero-image"] img`, "src"),
		attr(".hover-zoom-hero-image img", "src"),
	},
	price: []candidate{
		attr(`[itemprop="price"]`, "content"),
		text(`[data-automation="buybox-product-price"]`),
	},
}
