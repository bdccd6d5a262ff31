package observability

import (
	"sync"
	"sync/atomic"
)

type StatsSnapshot struct {
	PagesFetched      uint64            `json:"pages_fetched"`
	ProductsScraped   uint64            `json:"products_scraped"`
	PricesRefreshed   uint64            `json:"prices_refreshed"`
	RefreshesRejected uint64            `json:"refreshes_rejected"`
	ErrorsTotal       uint64            `json:"errors_total"`
	ErrorsByType      map[string]uint64 `json:"errors_by_type,omitempty"`
	ErrorsByComponent map[string]uint64 `json:"errors_by_component,omitempty"`
}

var (
	pagesFetched      uint64
	productsScraped   uint64
	pricesRefreshed   uint64
	refreshesRejected uint64
	errorsTotal       uint64

	statsMu           sync.Mutex
	errorsByType      = map[string]uint64{}
	errorsByComponent = map[string]uint64{}
)

func IncPagesFetched() {
	atomic.AddUint64(&pagesFetched, 1)
}

func IncProductsScraped() {
	atomic.AddUint64(&productsScraped, 1)
}

func IncPricesRefreshed() {
	atomic.AddUint64(&pricesRefreshed, 1)
}

func IncRefreshRejected() {
	atomic.AddUint64(&refreshesRejected, 1)
}

func IncError(errType, component string) {
	if errType == "" {
		errType = "unknown"
	}
	if component == "" {
		component = "unknown"
	}
	atomic.AddUint64(&errorsTotal, 1)
	statsMu.Lock()
	errorsByType[errType]++
	errorsByComponent[component]++
	statsMu.Unlock()
}

func Snapshot() StatsSnapshot {
	statsMu.Lock()
	errorsTypeCopy := copyMap(errorsByType)
	errorsComponentCopy := copyMap(errorsByComponent)
	statsMu.Unlock()

	return StatsSnapshot{
		PagesFetched:      atomic.LoadUint64(&pagesFetched),
		ProductsScraped:   atomic.LoadUint64(&productsScraped),
		PricesRefreshed:   atomic.LoadUint64(&pricesRefreshed),
		RefreshesRejected: atomic.LoadUint64(&refreshesRejected),
		ErrorsTotal:       atomic.LoadUint64(&errorsTotal),
		ErrorsByType:      errorsTypeCopy,
		ErrorsByComponent: errorsComponentCopy,
	}
}

func copyMap(src map[string]uint64) map[string]uint64 {
	if len(src) == 0 {
		return map[string]uint64{}
	}
	out := make(map[string]uint64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
