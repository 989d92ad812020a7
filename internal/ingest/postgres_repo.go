package ingest

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CreateRun(ctx context.Context, run *Run) (string, error)
	UpdateRun(ctx context.Context, run *Run) error
	LinkBookToRun(ctx context.Context, runID string, bookID string) error
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) CreateRun(ctx context.Context, run *Run) (string, error) {
	const sql = `
		INSERT INTO ingest_runs (started_at, status, subjects, per_subject)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id string
	err := r.db.QueryRow(ctx, sql, run.StartedAt, run.Status, strings.Join(run.Subjects, ","), run.PerSubject).Scan(&id)
	return id, err
}

func (r *PostgresRepo) UpdateRun(ctx context.Context, run *Run) error {
	const sql = `
		UPDATE ingest_runs SET
			finished_at = $1,
			status = $2,
			works_fetched = $3,
			books_resolved = $4,
			books_failed = $5,
			error = $6
		WHERE id = $7`

	_, err := r.db.Exec(ctx, sql, run.FinishedAt, run.Status, run.WorksFetched, run.BooksResolved, run.BooksFailed, run.Error, run.ID)
	return err
}

func (r *PostgresRepo) LinkBookToRun(ctx context.Context, runID string, bookID string) error {
	const sql = `
		INSERT INTO ingest_run_books (run_id, book_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	_, err := r.db.Exec(ctx, sql, runID, bookID)
	return err
}
