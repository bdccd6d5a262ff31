package scraper

var ebayCascade = cascade{
	title: []candidate{
		text(".x-item-title__mainTitle span"),
		text("h1.it-ttl"),
		text("h1"),
	},
	image: []candidate{
		attr(".ux-image-carousel-item img", "src"),
		attr("#icImg", "src"),
	},
	price: []candidate{
		text(".x-price-primary span"),
		attr(`[itemprop="price"]`, "content"),
		text("#prcIsum"),
	},
}

var etsyCascade = cascade{
	title: []candidate{
		text(`h1[data-buy-box-listing-title="true"]`),
		text("h1"),
	},
	image: []candidate{
		attr(`[data-component="listing-page-image-carousel"] img`, "src"),
		attr(".carousel-image img", "src"),
	},
	price: []candidate{
		text(`[data-buy-box-region="price"] p`),
		text(".wt-text-title-larger"),
		attr(`[data-selector="price-only"]`, "content"),
	},
}
