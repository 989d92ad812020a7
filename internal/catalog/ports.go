package catalog

import (
	"context"

	"bookspark/internal/platform/googlebooks"
	"bookspark/internal/platform/openlibrary"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=catalog

type OpenLibrary interface {
	Search(ctx context.Context, query string, limit, offset int) (*openlibrary.SearchResponse, error)
	Trending(ctx context.Context, period string, limit int) ([]openlibrary.TrendingWork, error)
	Subject(ctx context.Context, subject string, opts openlibrary.SubjectOptions) (*openlibrary.SubjectResponse, error)
}

type GoogleBooks interface {
	Search(ctx context.Context, query string, opts googlebooks.SearchOptions) ([]googlebooks.Result, int, error)
	SearchByISBN(ctx context.Context, isbn string) (*googlebooks.Result, error)
	GetVolume(ctx context.Context, id string) (*googlebooks.Result, error)
}
