package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"bookspark/internal/book"
	"bookspark/internal/catalog"
	"bookspark/internal/config"
	"bookspark/internal/cover"
	"bookspark/internal/platform/googlebooks"
	"bookspark/internal/platform/openlibrary"
	"bookspark/internal/platform/upstream"
)

var (
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "bookctl",
	Short: "Operate the bookspark catalog from the command line",
	Long: `bookctl runs the same resolution, cover and reflection code as the API
server without going through HTTP.

Commands that write (resolve, warm, migrate) need DB_DSN to point at a
reachable database. The others only talk to Open Library and Google Books.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log at debug level to stderr",
	)

	rootCmd.AddCommand(resolveCmd, coversCmd, questionCmd, searchCmd, trendingCmd, isbnCmd, volumeCmd, warmCmd, tokenCmd, migrateCmd)
}

// app holds the clients every command shares. The database pool is only
// opened by commands that need it.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	ol      *openlibrary.Client
	google  *googlebooks.Client
	covers  *cover.Resolver
	checker *cover.Validator
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	hc := upstream.NewClient(upstream.Config{
		UserAgent:  cfg.HTTPUserAgent,
		RPS:        cfg.UpstreamRPS,
		MaxRetries: cfg.UpstreamMaxRetries,
		Timeout:    cfg.UpstreamTimeout,
	})
	return &app{
		cfg:     cfg,
		logger:  logger,
		ol:      openlibrary.NewClient(cfg.OpenLibraryBaseURL, hc),
		google:  googlebooks.NewClient(cfg.GoogleBooksBaseURL, cfg.GoogleBooksAPIKey, hc),
		covers:  cover.NewResolver(cfg.OpenLibraryCoversURL, cfg.AbeBooksCoversURL),
		checker: cover.NewValidator(&http.Client{Timeout: cfg.UpstreamTimeout}, cfg.HTTPUserAgent, logger),
	}, nil
}

func (a *app) openDB(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, a.cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database: %w", err)
	}
	return pool, nil
}

// bookService returns a resolver backed by store, which may be nil for
// commands that only assemble.
func (a *app) bookService(store book.Store) *book.Service {
	return book.NewService(store, a.ol, a.covers, book.Config{
		EditionLimit: a.cfg.EditionFetchLimit,
		MaxAuthors:   a.cfg.MaxAuthors,
	}, a.logger)
}

func (a *app) catalogService() *catalog.Service {
	return catalog.NewService(a.ol, a.google, a.covers, a.checker, a.logger)
}
