package retail

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wishwatch/internal/urlutil"
)

// Identity is what the rest of the system knows about a retailer: a name fit
// for display and a type tag that selects an extraction strategy.
type Identity struct {
	DisplayName string
	TypeTag     string
}

// TagGeneric is the strategy tag for hosts with no dedicated extractor.
const TagGeneric = "generic"

// Unknown is returned for URLs that cannot be parsed at all.
var Unknown = Identity{DisplayName: "Unknown", TypeTag: TagGeneric}

type displayEntry struct {
	domain string
	name   string
}

// displayNames maps normalized domains to display names. Ordered so that
// suffix matching is deterministic; longer, more specific domains first
// within a brand.
var displayNames = []displayEntry{
	{"amazon.com", "Amazon"},
	{"amazon.co.uk", "Amazon UK"},
	{"amazon.ca", "Amazon Canada"},
	{"amazon.de", "Amazon DE"},
	{"ebay.com", "eBay"},
	{"walmart.com", "Walmart"},
	{"target.com", "Target"},
	{"bestbuy.com", "Best Buy"},
	{"nordstrom.com", "Nordstrom"},
	{"macys.com", "Macy's"},
	{"sephora.com", "Sephora"},
	{"ulta.com", "Ulta"},
	{"etsy.com", "Etsy"},
	{"zappos.com", "Zappos"},
	{"asos.com", "ASOS"},
	{"zara.com", "Zara"},
	{"hm.com", "H&M"},
	{"nike.com", "Nike"},
	{"adidas.com", "Adidas"},
	{"apple.com", "Apple"},
	{"costco.com", "Costco"},
	{"kohls.com", "Kohl's"},
	{"wayfair.com", "Wayfair"},
	{"homedepot.com", "Home Depot"},
	{"lowes.com", "Lowe's"},
	{"newegg.com", "Newegg"},
	{"bhphotovideo.com", "B&H Photo"},
	{"bloomingdales.com", "Bloomingdale's"},
	{"saksfifthavenue.com", "Saks Fifth Avenue"},
	{"neimanmarcus.com", "Neiman Marcus"},
	{"shopbop.com", "Shopbop"},
	{"net-a-porter.com", "Net-A-Porter"},
	{"ssense.com", "SSENSE"},
	{"farfetch.com", "Farfetch"},
}

type tagEntry struct {
	fragment string
	tag      string
}

// typeTags routes hostnames to extraction strategies by substring match.
// First match wins, so more specific fragments sit above shorter ones.
var typeTags = []tagEntry{
	{"amazon", "amazon"},
	{"target", "target"},
	{"walmart", "walmart"},
	{"bestbuy", "bestbuy"},
	{"newegg", "newegg"},
	{"bhphotovideo", "bhphoto"},
	{"apple.com", "apple"},
	{"ebay", "ebay"},
	{"etsy", "etsy"},
	{"nordstrom", "nordstrom"},
	{"macys", "macys"},
	{"bloomingdales", "bloomingdales"},
	{"saksfifthavenue", "saks"},
	{"neimanmarcus", "neimanmarcus"},
	{"shopbop", "shopbop"},
	{"net-a-porter", "netaporter"},
	{"ssense", "ssense"},
	{"farfetch", "farfetch"},
	{"asos", "asos"},
	{"zara", "zara"},
	{"hm.com", "hm"},
	{"nike", "nike"},
	{"adidas", "adidas"},
	{"zappos", "zappos"},
	{"sephora", "sephora"},
	{"ulta", "ulta"},
	{"wayfair", "wayfair"},
	{"homedepot", "homedepot"},
	{"lowes", "lowes"},
	{"costco", "costco"},
	{"kohls", "kohls"},
}

var titleCaser = cases.Title(language.Und)

// Classify resolves a product URL to a retailer identity. It never fails:
// unparseable URLs map to Unknown and unrecognized hosts fall back to a
// capitalized first DNS label with the generic tag.
func Classify(rawURL string) Identity {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return Unknown
	}
	domain := urlutil.NormalizeHost(u.Hostname())

	return Identity{
		DisplayName: displayName(domain),
		TypeTag:     typeTag(domain),
	}
}

func displayName(domain string) string {
	for _, entry := range displayNames {
		if domain == entry.domain {
			return entry.name
		}
	}
	for _, entry := range displayNames {
		brand, _, _ := strings.Cut(entry.domain, ".")
		if strings.HasSuffix(domain, entry.domain) || strings.Contains(domain, brand) {
			return entry.name
		}
	}

	label, _, _ := strings.Cut(domain, ".")
	if label == "" {
		return Unknown.DisplayName
	}
	return titleCaser.String(label)
}

func typeTag(domain string) string {
	for _, entry := range typeTags {
		if strings.Contains(domain, entry.fragment) {
			return entry.tag
		}
	}
	return TagGeneric
}
