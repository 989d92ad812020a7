package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookspark/db"
	"bookspark/internal/config"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, down, reset, status")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool, *command); err != nil {
		logger.Error("migration failed", "command", *command, "error", err)
		pool.Close()
		os.Exit(1)
	}
	logger.Info("migration finished", "command", *command)
}
