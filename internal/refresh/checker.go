package refresh

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/robfig/cron/v3"

	"wishwatch/internal/observability"
	"wishwatch/internal/scraper"
	"wishwatch/internal/store"
)

const productTimeout = 20 * time.Second

// Checker sweeps every tracked product on a cron schedule, re-extracts its
// price, and records accepted changes plus a history point.
type Checker struct {
	cron     *cron.Cron
	store    *store.Store
	scraper  *scraper.Scraper
	policy   PricePolicy
	schedule string
}

func NewChecker(st *store.Store, sc *scraper.Scraper, policy PricePolicy, schedule string) *Checker {
	if schedule == "" {
		schedule = "0 0 */12 * * *" // every 12 hours
	}
	return &Checker{
		cron:     cron.New(cron.WithSeconds()),
		store:    st,
		scraper:  sc,
		policy:   policy,
		schedule: schedule,
	}
}

func (c *Checker) Start(ctx context.Context) error {
	_, err := c.cron.AddFunc(c.schedule, func() { c.checkAll(ctx) })
	if err != nil {
		return err
	}
	c.cron.Start()
	slog.Info("price checker scheduled", "schedule", c.schedule)
	return nil
}

func (c *Checker) Stop() {
	if c.cron != nil {
		c.cron.Stop()
	}
}

func (c *Checker) checkAll(ctx context.Context) {
	products, err := c.store.GetTrackedProducts(ctx)
	if err != nil {
		observability.IncError(observability.ErrorStore, "refresh")
		slog.Error("failed to list tracked products", "error", err)
		return
	}
	if len(products) == 0 {
		return
	}

	slog.Info("starting price sweep", "products", len(products))
	for _, p := range products {
		if ctx.Err() != nil {
			return
		}
		result, err := c.Refresh(ctx, p)
		if err != nil {
			slog.Warn("price refresh failed", "url", p.URL, "error", err)
			continue
		}
		if result.NewPrice == nil {
			continue
		}
		slog.Info("price refreshed",
			"url", p.URL,
			"price", *result.NewPrice,
			"change", result.ChangeType,
		)
	}
}

// Result describes the outcome of one refresh: what was stored before,
// what (if anything) was accepted now, and how the two compare.
type Result struct {
	OldPrice      *float64 `json:"oldPrice"`
	NewPrice      *float64 `json:"newPrice"`
	Changed       bool     `json:"changed"`
	ChangeType    string   `json:"changeType,omitempty"`
	ChangeAmount  float64  `json:"changeAmount,omitempty"`
	ChangePercent float64  `json:"changePercent,omitempty"`
}

// Refresh re-extracts one product's price and persists it when the policy
// accepts it. A fetch failure is returned as an error; a reachable page
// with no acceptable price updates last_checked only, so a stored price is
// never clobbered by a bad read.
func (c *Checker) Refresh(ctx context.Context, p store.Product) (Result, error) {
	result := Result{OldPrice: p.CurrentPrice}

	scrapeCtx, cancel := context.WithTimeout(ctx, productTimeout)
	defer cancel()

	product, err := c.scraper.Extract(scrapeCtx, p.URL)
	if err != nil {
		return result, err
	}

	if !c.policy.Accept(product) {
		observability.IncRefreshRejected()
		if product.Price > 0 {
			slog.Debug("rejected scraped price",
				"url", p.URL,
				"price", product.Price,
				"source", product.PriceSource,
			)
		}
		if err := c.store.TouchLastChecked(ctx, p.ID); err != nil {
			observability.IncError(observability.ErrorStore, "refresh")
		}
		return result, nil
	}

	if err := c.store.UpdatePrice(ctx, p.ID, product.Price); err != nil {
		observability.IncError(observability.ErrorStore, "refresh")
		return result, err
	}
	observability.IncPricesRefreshed()

	newPrice := product.Price
	result.NewPrice = &newPrice
	result.ChangeType = "same"

	if p.CurrentPrice != nil && *p.CurrentPrice != newPrice {
		result.Changed = true
		result.ChangeAmount = math.Abs(newPrice - *p.CurrentPrice)
		result.ChangePercent = math.Round(result.ChangeAmount / *p.CurrentPrice * 100)
		if newPrice < *p.CurrentPrice {
			result.ChangeType = "dropped"
		} else {
			result.ChangeType = "increased"
		}
	}

	return result, nil
}
