package scraper

var bestbuyCascade = cascade{
	title: []candidate{
		text(".sku-title h1"),
		text("h1.heading-5"),
		text("h1"),
	},
	image: []candidate{
		attr(".primary-image", "src"),
		attr(".shop-media-gallery img", "src"),
		attr("img.primary-button-image", "src"),
	},
	price: []candidate{
		text(".priceView-hero-price span"),
		text(".priceView-customer-price span"),
		attr(`[data-testid="customer-price"]`, "content"),
		text(".pricing-price"),
	},
}

var neweggCascade = cascade{
	title: []candidate{
		text(".product-title"),
		text("h1.product-title"),
		text("h1"),
	},
	image: []candidate{
		attr(".product-view-img-original", "src"),
		attr(".swiper-zoom-container img", "src"),
	},
	price: []candidate{
		text(".price-current"),
		attr(`[itemprop="price"]`, "content"),
		text(".product-price .price"),
	},
}

var appleCascade = cascade{
	title: []candidate{
		text("h1.rf-pdp-title"),
		text(`[data-autom="productTitle"]`),
		text("h1"),
	},
	image: []candidate{
		attr(".rf-pdp-gallery img", "src"),
		attr("picture img", "src"),
	},
	price: []candidate{
		text(`[data-autom="full-price"]`),
		text(".rf-pdp-currentprice"),
		attr(`meta[itemprop="price"]`, "content"),
	},
}

var bhphotoCascade = cascade{
	title: []candidate{
		text(`[data-selenium="productTitle"]`),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-selenium="inlineMediaMainImage"]`, "src"),
		attr(".main-image img", "src"),
	},
	price: []candidate{
		attr(`[data-selenium="pricingPrice"]`, "data-price"),
		text(`[data-selenium="pricingPrice"]`),
		text(".price_1DPoToKrLP8uWvruGqgtaY"),
	},
}
