// Package db carries the embedded goose migrations for the books and
// ingest_runs tables.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var Migrations embed.FS

// Dir is the migrations directory inside Migrations.
const Dir = "migrations"

func prepare() error {
	goose.SetBaseFS(Migrations)
	return goose.SetDialect("postgres")
}

var commands = map[string]func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error{
	"up":    goose.UpContext,
	"down":  goose.DownContext,
	"reset": goose.ResetContext,
}

// Migrate runs a goose command (up, down, reset, status) against pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string) error {
	run, ok := commands[command]
	if !ok && command != "status" {
		return fmt.Errorf("unknown migration command %q (use up, down, reset, status)", command)
	}
	if err := prepare(); err != nil {
		return err
	}
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if command == "status" {
		return goose.StatusContext(ctx, sqlDB, Dir)
	}
	return run(ctx, sqlDB, Dir)
}

// Up applies every pending migration.
func Up(ctx context.Context, pool *pgxpool.Pool) error {
	return Migrate(ctx, pool, "up")
}
