package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bookspark/internal/book"
	"bookspark/internal/catalog"
	"bookspark/internal/httpx"
	"bookspark/internal/ingest"
	"bookspark/internal/reflection"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type handlers struct {
	books      *book.HTTPHandler
	catalog    *catalog.HTTPHandler
	reflection *reflection.HTTPHandler
	ingest     *ingest.HTTPHandler
}

type routerConfig struct {
	jwtSecret      string
	enableHSTS     bool
	corsOrigins    []string
	rateLimitRPS   float64
	rateLimitBurst int
	maxBodyBytes   int64
}

// newRouter registers every route and wraps the mux in the middleware
// chain. ctx bounds the rate limiter's cleanup goroutine.
func newRouter(ctx context.Context, h handlers, db pinger, cfg routerConfig, logger *slog.Logger) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	authed := httpx.AuthMiddleware(cfg.jwtSecret)

	router.HandleFunc("GET /v1/books", h.books.Lookup)
	router.Handle("POST /v1/books", authed(http.HandlerFunc(h.books.Resolve)))
	router.HandleFunc("GET /v1/books/resolved", h.books.List)
	router.HandleFunc("GET /v1/books/search", h.catalog.Search)
	router.HandleFunc("GET /v1/books/trending", h.catalog.Trending)
	router.HandleFunc("GET /v1/books/category", h.catalog.Category)
	router.HandleFunc("GET /v1/books/{id}", h.books.Get)
	router.HandleFunc("GET /v1/isbn/{isbn}", h.catalog.LookupISBN)
	router.HandleFunc("GET /v1/volumes/{id}", h.catalog.Volume)
	router.HandleFunc("GET /v1/covers", h.catalog.Covers)

	router.Handle("POST /v1/reflections/question", authed(http.HandlerFunc(h.reflection.Question)))

	router.HandleFunc("POST /internal/jobs/warm", h.ingest.Warm)

	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.rateLimitRPS, cfg.rateLimitBurst)
	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
		httpx.SecurityHeadersMiddleware(cfg.enableHSTS),
		httpx.CORSMiddleware(cfg.corsOrigins),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.maxBodyBytes),
	)
}
