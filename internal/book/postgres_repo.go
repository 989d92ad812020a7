package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const bookColumns = `id, open_library_key, title, authors, description,
	cover_small, cover_medium, cover_large, published_date, publisher,
	page_count, chapter_count, genres, subjects, isbn13, isbn10,
	language, source, fetched_at, created_at`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}

func (r *PostgresRepo) FindByExternalKey(ctx context.Context, key string) (Book, error) {
	return r.getOne(ctx, "open_library_key", key)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	return r.getOne(ctx, "id", id)
}

func (r *PostgresRepo) getOne(ctx context.Context, column, value string) (Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE %s = $1 LIMIT 1`, bookColumns, column)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// Insert stores b and replaces it with the row as stored, so a later read
// returns identical values. A unique violation on open_library_key is
// reported as ErrDuplicate.
func (r *PostgresRepo) Insert(ctx context.Context, b *Book) error {
	const sql = `
		INSERT INTO books (open_library_key, title, authors, description,
		                   cover_small, cover_medium, cover_large, published_date, publisher,
		                   page_count, chapter_count, genres, subjects, isbn13, isbn10,
		                   language, source, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + bookColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	stored, err := scanBook(r.db.QueryRow(timeoutCtx, sql,
		b.OpenLibraryKey, b.Title, nonNil(b.Authors), b.Description,
		b.CoverSmall, b.CoverMedium, b.CoverLarge, b.PublishedDate, b.Publisher,
		b.PageCount, b.ChapterCount, nonNil(b.Genres), nonNil(b.Subjects), b.ISBN13, b.ISBN10,
		b.Language, b.Source, b.FetchedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	*b = stored
	return nil
}

// List pages through stored books newest first using an opaque cursor.
func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, string, error) {
	after, err := decodeCursor(q.Cursor)
	if err != nil {
		return nil, "", err
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}

	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Genre != "" {
		clauses = append(clauses, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(genres) g WHERE g ILIKE $%d)", argn))
		args = append(args, "%"+q.Genre+"%")
		argn++
	}

	if after.ID != "" {
		clauses = append(clauses, fmt.Sprintf("(created_at, id) < ($%d, $%d)", argn, argn+1))
		args = append(args, after.CreatedAt, after.ID)
		argn += 2
	}

	query := fmt.Sprintf(`SELECT %s FROM books WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d`,
		bookColumns, strings.Join(clauses, " AND "), argn)
	args = append(args, q.Limit+1)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, "", err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	next := ""
	if len(out) > q.Limit {
		out = out[:q.Limit]
		last := out[len(out)-1]
		next = encodeCursor(listCursor{ID: last.ID, CreatedAt: last.CreatedAt})
	}
	return out, next, nil
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.OpenLibraryKey, &b.Title, &b.Authors, &b.Description,
		&b.CoverSmall, &b.CoverMedium, &b.CoverLarge, &b.PublishedDate, &b.Publisher,
		&b.PageCount, &b.ChapterCount, &b.Genres, &b.Subjects, &b.ISBN13, &b.ISBN10,
		&b.Language, &b.Source, &b.FetchedAt, &b.CreatedAt,
	)
	return b, err
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
