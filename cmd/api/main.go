package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"bookspark/internal/book"
	"bookspark/internal/catalog"
	"bookspark/internal/config"
	"bookspark/internal/cover"
	"bookspark/internal/ingest"
	"bookspark/internal/platform/googlebooks"
	"bookspark/internal/platform/openlibrary"
	"bookspark/internal/platform/upstream"
	"bookspark/internal/reflection"
)

const maxBodyBytes = 1 << 20

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty; authenticated routes will reject every request")
	}

	dbPool, err := openDB(ctx, cfg.DBDSN, logger)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	hc := upstream.NewClient(upstream.Config{
		UserAgent:  cfg.HTTPUserAgent,
		RPS:        cfg.UpstreamRPS,
		MaxRetries: cfg.UpstreamMaxRetries,
		Timeout:    cfg.UpstreamTimeout,
	})
	olClient := openlibrary.NewClient(cfg.OpenLibraryBaseURL, hc)
	googleClient := googlebooks.NewClient(cfg.GoogleBooksBaseURL, cfg.GoogleBooksAPIKey, hc)
	covers := cover.NewResolver(cfg.OpenLibraryCoversURL, cfg.AbeBooksCoversURL)
	coverValidator := cover.NewValidator(&http.Client{Timeout: cfg.UpstreamTimeout}, cfg.HTTPUserAgent, logger)

	bookRepo := book.NewPostgresRepo(dbPool, cfg.DBTimeout)
	bookService := book.NewService(bookRepo, olClient, covers, book.Config{
		EditionLimit: cfg.EditionFetchLimit,
		MaxAuthors:   cfg.MaxAuthors,
	}, logger)
	catalogService := catalog.NewService(olClient, googleClient, covers, coverValidator, logger)
	ingestService := ingest.NewService(olClient, bookService, ingest.NewPostgresRepo(dbPool), ingest.Config{
		Subjects:   cfg.WarmSubjects,
		PerSubject: cfg.WarmLimit,
	}, logger)

	h := handlers{
		books:      book.NewHTTPHandler(bookService),
		catalog:    catalog.NewHTTPHandler(catalogService),
		reflection: reflection.NewHTTPHandler(reflection.NewSelector(nil, nil)),
		ingest:     ingest.NewHTTPHandler(ingestService, cfg.InternalSecret),
	}
	handler := newRouter(ctx, h, dbPool, routerConfig{
		jwtSecret:      cfg.JWTSecret,
		enableHSTS:     cfg.EnableHSTS,
		corsOrigins:    cfg.CORSAllowedOrigins,
		rateLimitRPS:   cfg.RateLimitRPS,
		rateLimitBurst: cfg.RateLimitBurst,
		maxBodyBytes:   maxBodyBytes,
	}, logger)

	httpServer := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", cfg.AppAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openDB(ctx context.Context, dsn string, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database (%s): %w", redactDSN(dsn), err)
	}
	logger.Info("database connection OK")
	return pool, nil
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
