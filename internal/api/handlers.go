package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wishwatch/internal/httpx"
	"wishwatch/internal/observability"
	"wishwatch/internal/store"
)

type scrapeRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, observability.Snapshot())
}

// handleScrape powers the add-product form pre-fill. It is best effort:
// null fields are fine, only an unreachable page is an error.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	rawURL, ok := decodeURL(w, r)
	if !ok {
		return
	}

	product, err := s.scraper.Extract(r.Context(), rawURL)
	if err != nil {
		respondFetchError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	rawURL, ok := decodeURL(w, r)
	if !ok {
		return
	}

	scraped, err := s.scraper.Extract(r.Context(), rawURL)
	if err != nil {
		respondFetchError(w, err)
		return
	}

	record := store.Product{
		URL:      rawURL,
		Title:    scraped.Title,
		ImageURL: scraped.ImageURL,
		Retailer: scraped.Retailer,
	}
	if scraped.Price > 0 {
		price := scraped.Price
		record.CurrentPrice = &price
	}

	saved, err := s.store.AddProduct(r.Context(), record)
	if err != nil {
		observability.IncError(observability.ErrorStore, "api")
		respondError(w, http.StatusInternalServerError, "Failed to save product: "+err.Error())
		return
	}

	if saved.CurrentPrice != nil {
		if err := s.store.AddPriceHistory(r.Context(), saved.ID, *saved.CurrentPrice); err != nil {
			observability.IncError(observability.ErrorStore, "api")
		}
	}

	respondJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, 20)

	products, total, err := s.store.GetProducts(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch products: "+err.Error())
		return
	}
	if products == nil {
		products = []store.Product{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":  products,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (s *Server) handleRefreshProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := s.store.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load product: "+err.Error())
		return
	}

	result, err := s.checker.Refresh(r.Context(), product)
	if err != nil {
		respondRefreshError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	limit, _ := parsePagination(r, 100)
	points, err := s.store.GetPriceHistory(r.Context(), id, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch price history: "+err.Error())
		return
	}
	if points == nil {
		points = []store.PricePoint{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"items": points})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete product: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeURL(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return "", false
	}
	if req.URL == "" {
		respondError(w, http.StatusBadRequest, "URL is required")
		return "", false
	}
	if u, err := url.Parse(req.URL); err != nil || u.Host == "" {
		respondError(w, http.StatusBadRequest, "Invalid URL")
		return "", false
	}
	return req.URL, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return 0, false
	}
	return id, true
}

func respondFetchError(w http.ResponseWriter, err error) {
	var fe *httpx.FetchError
	if errors.As(err, &fe) && fe.Status > 0 {
		respondError(w, http.StatusBadGateway, "Failed to fetch URL: "+strconv.Itoa(fe.Status))
		return
	}
	respondError(w, http.StatusBadGateway, "Failed to fetch URL")
}

// respondRefreshError separates "could not reach the page" (fetch failure,
// 502) from failures in our own persistence (500). Refresh is the one path
// where both can surface from a single call.
func respondRefreshError(w http.ResponseWriter, err error) {
	var fe *httpx.FetchError
	if errors.As(err, &fe) {
		respondFetchError(w, err)
		return
	}
	respondError(w, http.StatusInternalServerError, "Failed to refresh product: "+err.Error())
}

func parsePagination(r *http.Request, defaultLimit int) (int, int) {
	q := r.URL.Query()
	limit := defaultLimit
	offset := 0

	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
