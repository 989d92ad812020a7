package book

import (
	"context"

	"bookspark/internal/platform/openlibrary"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Store is the persistence contract for resolved books.
type Store interface {
	FindByExternalKey(ctx context.Context, key string) (Book, error)
	Insert(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id string) (Book, error)
	List(ctx context.Context, q Query) ([]Book, string, error)
	Ping(ctx context.Context) error
}

// WorkSource is the bibliographic API the resolver reads from.
type WorkSource interface {
	GetWork(ctx context.Context, key string) (*openlibrary.Work, error)
	GetEditions(ctx context.Context, key string, limit int) ([]openlibrary.Edition, error)
	GetAuthor(ctx context.Context, key string) (*openlibrary.Author, error)
}
