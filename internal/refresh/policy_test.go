package refresh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wishwatch/internal/scraper"
)

func TestPolicyAccept(t *testing.T) {
	policy := DefaultPolicy

	testCases := []struct {
		name    string
		product scraper.Product
		want    bool
	}{
		{
			name:    "normal retailer price",
			product: scraper.Product{Price: 49.99, PriceSource: scraper.SourceRetailer},
			want:    true,
		},
		{
			name:    "zero price",
			product: scraper.Product{PriceSource: scraper.SourceRetailer},
			want:    false,
		},
		{
			name:    "below floor",
			product: scraper.Product{Price: 2.99, PriceSource: scraper.SourceStructured},
			want:    false,
		},
		{
			name:    "at floor",
			product: scraper.Product{Price: 5, PriceSource: scraper.SourceStructured},
			want:    true,
		},
		{
			name:    "above ceiling",
			product: scraper.Product{Price: 10001, PriceSource: scraper.SourceRetailer},
			want:    false,
		},
		{
			name:    "at ceiling",
			product: scraper.Product{Price: 10000, PriceSource: scraper.SourceRetailer},
			want:    true,
		},
		{
			name:    "generic below its higher floor",
			product: scraper.Product{Price: 9.99, PriceSource: scraper.SourceGeneric},
			want:    false,
		},
		{
			name:    "generic above its floor",
			product: scraper.Product{Price: 15, PriceSource: scraper.SourceGeneric},
			want:    true,
		},
		{
			name:    "meta price between floors",
			product: scraper.Product{Price: 9.99, PriceSource: scraper.SourceMeta},
			want:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.Accept(tc.product))
		})
	}
}
