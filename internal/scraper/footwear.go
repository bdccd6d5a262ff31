package scraper

var nikeCascade = cascade{
	title: []candidate{
		text("h1#pdp_product_title"),
		text(`[data-test="product-title"]`),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-testid="HeroImg"] img`, "src"),
		attr(".hero-image img", "src"),
		attr("picture img", "src"),
	},
	price: []candidate{
		text(`[data-test="product-price"]`),
		text(`[data-testid="currentPrice-container"]`),
		text(".product-price"),
	},
}

var adidasCascade = cascade{
	title: []candidate{
		text(`[data-auto-id="product-title"]`),
		text("h1.name"),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-auto-id="image-viewer"] img`, "src"),
		attr(".view-item img", "src"),
	},
	price: []candidate{
		text(`[data-auto-id="sale-price"]`),
		text(`[data-auto-id="standard-price"]`),
		text(".gl-price-item"),
	},
}

var zapposCascade = cascade{
	title: []candidate{
		text(`[itemprop="name"] span`),
		text("h1"),
	},
	image: []candidate{
		attr("#stage button img", "src"),
		attr(".product-image img", "src"),
	},
	price: []candidate{
		attr(`[itemprop="price"]`, "content"),
		text(`[itemprop="price"]`),
		text(".price"),
	},
}
