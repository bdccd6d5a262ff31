package scraper

var sephoraCascade = cascade{
	title: []candidate{
		text(`[data-at="product_name"]`),
		text("h1 span"),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-comp="ProductImage"] img`, "src"),
		attr("picture img", "src"),
	},
	price: []candidate{
		text(`[data-comp="Price"] b`),
		text(`[data-at="price"]`),
		text(".css-price"),
	},
}

var ultaCascade = cascade{
	title: []candidate{
		text(".ProductInformation h1 span"),
		text(`[data-testid="product-title"]`),
		text("h1"),
	},
	image: []candidate{
		attr(".ProductHero img", "src"),
		attr(`[data-testid="product-image"] img`, "src"),
	},
	price: []candidate{
		text(".ProductPricing span"),
		text(`[data-testid="product-price"]`),
		text(".pro-new-price"),
	},
}
