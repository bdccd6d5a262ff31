package scraper

var wayfairCascade = cascade{
	title: []candidate{
		text("h1[data-hb-id=heading]"),
		text(`[data-enzyme-id="PdpProductTitle"]`),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-enzyme-id="HeroImage"] img`, "src"),
		attr(".ProductDetailImageCarousel img", "src"),
	},
	price: []candidate{
		text(`[data-enzyme-id="PriceBlock"]`),
		text(".SFPrice"),
		text(".BasePriceBlock"),
	},
}

var homedepotCascade = cascade{
	title: []candidate{
		text("h1.product-details__title"),
		text(`[data-component="product-details-title"]`),
		text("h1"),
	},
	image: []candidate{
		attr(".mediagallery__mainimage img", "src"),
		attr(`[data-testid="product-image"] img`, "src"),
	},
	price: []candidate{
		text(".price-format__large"),
		attr(`[itemprop="price"]`, "content"),
		text(".price-detailed__wrapper"),
	},
}

var lowesCascade = cascade{
	title: []candidate{
		text("h1.product-brand-description"),
		text(`[data-selector="prd-title"]`),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-selector="prd-image"] img`, "src"),
		attr(".met-product-image img", "src"),
	},
	price: []candidate{
		text(".main-price"),
		attr(`[itemprop="price"]`, "content"),
		text(".item-price-dollar"),
	},
}

var costcoCascade = cascade{
	title: []candidate{
		text("h1[automation-id=productName]"),
		text("h1"),
	},
	image: []candidate{
		attr("#initialProductImage", "src"),
		attr(".product-image-url img", "src"),
	},
	price: []candidate{
		text(`[automation-id="productPriceOutput"]`),
		text(".value .currency + span"),
		text(".your-price .value"),
	},
}

var kohlsCascade = cascade{
	title: []candidate{
		text("h1.product-title"),
		text(`[data-testid="product-title"]`),
		text("h1"),
	},
	image: []candidate{
		attr(".pdp-image-main img", "src"),
		attr("#easyzoom-main img", "src"),
	},
	price: []candidate{
		text(".pdpprice-row2 span"),
		text(".prod_price_amount"),
		text(".sale-price"),
	},
}
