package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	currencySymbols = strings.NewReplacer("$", "", "£", "", "€", "", "¥", "", "₹", "")
	currencyCodes   = regexp.MustCompile(`(?i)USD|EUR|GBP|CAD|AUD`)
	leadingDash     = regexp.MustCompile(`^\s*-\s*`)
	numberRun       = regexp.MustCompile(`\d(?:[\d.,]*\d)?`)
)

// Parse extracts a price from a free-form string such as "$1,234.56",
// "1.234,56 €" or "Now only $24.99 (was $39.99)". The second return value
// reports whether a usable price was found; zero and negative amounts are
// treated as no price.
func Parse(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}

	cleaned := strings.TrimSpace(raw)
	cleaned = currencySymbols.Replace(cleaned)
	cleaned = currencyCodes.ReplaceAllString(cleaned, "")
	cleaned = leadingDash.ReplaceAllString(cleaned, "")

	// First contiguous digit run wins; surrounding text is discarded.
	match := numberRun.FindString(cleaned)
	if match == "" {
		return 0, false
	}

	normalized := disambiguateSeparators(match)

	price, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(price, 0) || math.IsNaN(price) || price <= 0 {
		return 0, false
	}
	return price, true
}

// disambiguateSeparators resolves comma/period ambiguity between European
// ("1.234,56") and US ("1,234.56") notation. Whichever separator appears
// last is taken as the decimal point.
func disambiguateSeparators(s string) string {
	hasComma := strings.Contains(s, ",")
	hasPeriod := strings.Contains(s, ".")

	switch {
	case hasComma && hasPeriod:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}
