package scraper

var farfetchCascade = cascade{
	title: []candidate{
		text(`[data-testid="product-short-description"]`),
		text(`[data-component="ProductName"]`),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-component="ProductImageMain"] img`, "src"),
		attr("picture img", "src"),
	},
	price: []candidate{
		text(`[data-component="PriceLarge"]`),
		text(`[data-testid="price"]`),
		text(`[data-component="Price"]`),
	},
}

var ssenseCascade = cascade{
	title: []candidate{
		text(".product-name-title"),
		text(`[data-test="product-name"]`),
		text("h1"),
	},
	image: []candidate{
		attr(".product-images-container img", "src"),
		attr("picture img", "src"),
	},
	price: []candidate{
		text(`[data-test="product-price"]`),
		text(".price-group .price"),
		text(".product-price"),
	},
}

var netaporterCascade = cascade{
	title: []candidate{
		text(`[itemprop="name"]`),
		text(".ProductDetails24 h1"),
		text("h1"),
	},
	image: []candidate{
		attr(".ImageCarousel84 img", "src"),
		attr("picture img", "src"),
	},
	price: []candidate{
		text(`[itemprop="price"]`),
		text(".PriceWithSchema9 .style-scope"),
		text(".full-price"),
	},
}

var saksCascade = cascade{
	title: []candidate{
		text(".product-brand + .product-name"),
		text("h1.product-name"),
		text("h1"),
	},
	image: []candidate{
		attr(".primary-image img", "src"),
		attr(".pdp-image img", "src"),
	},
	price: []candidate{
		text(".product-pricing .price .value"),
		attr(".price .value", "content"),
		text(".product-price"),
	},
}

var neimanmarcusCascade = cascade{
	title: []candidate{
		text("h1.product-heading__name"),
		text(`[itemprop="name"]`),
		text("h1"),
	},
	image: []candidate{
		attr(".product-img img", "src"),
		attr(".main-media img", "src"),
	},
	price: []candidate{
		text(".product-heading__price"),
		attr(`[itemprop="price"]`, "content"),
		text(".price-adornments"),
	},
}
