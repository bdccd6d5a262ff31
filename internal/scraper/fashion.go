package scraper

var nordstromCascade = cascade{
	title: []candidate{
		text("h1[itemprop=name]"),
		text(`[data-element="product-title"]`),
		text("h1"),
	},
	image: []candidate{
		attr(`img[name="mainProductImage"]`, "src"),
		attr(".image-zoom img", "src"),
		attr("picture img", "src"),
	},
	price: []candidate{
		text(`[data-element="current-price"]`),
		text("span.currentPriceString"),
		text(".price-current-wrapper"),
	},
}

var macysCascade = cascade{
	title: []candidate{
		text(`[data-auto="product-name"]`),
		text("h1.p-name"),
		text("h1"),
	},
	image: []candidate{
		attr(".main-picture img", "src"),
		attr(`[data-auto="main-picture"] img`, "src"),
	},
	price: []candidate{
		text(`[data-auto="main-price"]`),
		text(".price .lowest-sale-price"),
		text(".price"),
	},
}

var bloomingdalesCascade = cascade{
	title: []candidate{
		text(`[data-auto="product-name"]`),
		text("h1.b-product-name"),
		text("h1"),
	},
	image: []candidate{
		attr(".primary-image img", "src"),
		attr(`[data-auto="main-picture"] img`, "src"),
	},
	price: []candidate{
		text(`[data-auto="product-price"]`),
		text(".price-sale"),
		text(".price"),
	},
}

var asosCascade = cascade{
	title: []candidate{
		text(`[data-testid="product-title"]`),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-testid="gallery-image"] img`, "src"),
		attr(".gallery-image img", "src"),
	},
	price: []candidate{
		text(`[data-testid="current-price"]`),
		attr(`[data-id="current-price"]`, "content"),
		text(".current-price"),
	},
}

var zaraCascade = cascade{
	title: []candidate{
		text(".product-detail-info__header-name"),
		text("h1.product-name"),
		text("h1"),
	},
	image: []candidate{
		attr(".media-image__image", "src"),
		attr(".product-detail-images__image", "src"),
	},
	price: []candidate{
		text(".price-current__amount"),
		attr(`[data-qa-qualifier="price-amount-current"]`, "data-price"),
		text(".price__amount"),
	},
}

var hmCascade = cascade{
	title: []candidate{
		text("h1.primary.product-item-headline"),
		text(`[data-testid="product-name"]`),
		text("h1"),
	},
	image: []candidate{
		attr(".product-detail-main-image-container img", "src"),
		attr(`[data-testid="product-image"] img`, "src"),
	},
	price: []candidate{
		text(`[data-testid="product-price"]`),
		text(".price.parbase span"),
		text(".price-value"),
	},
}

var shopbopCascade = cascade{
	title: []candidate{
		text("#product-title"),
		text("h1"),
	},
	image: []candidate{
		attr("#productImageContainer img", "src"),
		attr(".product-image img", "src"),
	},
	price: []candidate{
		text(".pdp-price"),
		text("#retailPrice"),
		text(".originalRetailPrice"),
	},
}
