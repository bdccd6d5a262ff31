package api

import (
	"encoding/json"
	"net/http"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"wishwatch/internal/refresh"
	"wishwatch/internal/scraper"
	"wishwatch/internal/store"
)

type Server struct {
	router  *chi.Mux
	store   *store.Store
	scraper *scraper.Scraper
	checker *refresh.Checker
}

func NewServer(store *store.Store, scraper *scraper.Scraper, checker *refresh.Checker) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		store:   store,
		scraper: scraper,
		checker: checker,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/stats", s.handleStats)

	// Scrape-triggering routes fan out to retailer sites, so they get a
	// stricter request limit than plain reads.
	scrapeLimit := tollbooth.NewLimiter(1, nil)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/products", s.handleListProducts)
		r.Get("/products/{id}/history", s.handleGetHistory)
		r.Delete("/products/{id}", s.handleDeleteProduct)

		r.Group(func(r chi.Router) {
			r.Use(limitHandler(scrapeLimit))
			r.Post("/scrape", s.handleScrape)
			r.Post("/products", s.handleAddProduct)
			r.Post("/products/{id}/refresh", s.handleRefreshProduct)
		})
	})
}

func limitHandler(lmt *limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return tollbooth.LimitHandler(lmt, next)
	}
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
