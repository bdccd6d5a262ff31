package scraper

import "github.com/PuerkitoBio/goquery"

// strategies routes retailer type tags to their extraction strategy.
// Adding a retailer means one cascade (or function) plus one entry here;
// the orchestrator never changes.
var strategies = map[string]Strategy{
	"amazon":        extractAmazon,
	"target":        targetCascade.run,
	"walmart":       walmartCascade.run,
	"bestbuy":       bestbuyCascade.run,
	"newegg":        neweggCascade.run,
	"apple":         appleCascade.run,
	"bhphoto":       bhphotoCascade.run,
	"ebay":          ebayCascade.run,
	"etsy":          etsyCascade.run,
	"nordstrom":     nordstromCascade.run,
	"macys":         macysCascade.run,
	"bloomingdales": bloomingdalesCascade.run,
	"saks":          saksCascade.run,
	"neimanmarcus":  neimanmarcusCascade.run,
	"shopbop":       shopbopCascade.run,
	"netaporter":    netaporterCascade.run,
	"ssense":        ssenseCascade.run,
	"farfetch":      farfetchCascade.run,
	"asos":          asosCascade.run,
	"zara":          zaraCascade.run,
	"hm":            hmCascade.run,
	"nike":          nikeCascade.run,
	"adidas":        adidasCascade.run,
	"zappos":        zapposCascade.run,
	"sephora":       sephoraCascade.run,
	"ulta":          ultaCascade.run,
	"wayfair":       wayfairCascade.run,
	"homedepot":     homedepotCascade.run,
	"lowes":         lowesCascade.run,
	"costco":        costcoCascade.run,
	"kohls":         kohlsCascade.run,
}

// strategyFor never fails: tags without a dedicated strategy (including
// "generic") fall through to an empty Partial.
func strategyFor(tag string) Strategy {
	if s, ok := strategies[tag]; ok {
		return s
	}
	return func(*goquery.Document) Partial { return Partial{} }
}
