package book

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a book is neither stored nor resolvable.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicate is returned by Store.Insert when the external key already exists.
	ErrDuplicate = errors.New("book already exists")
)

const (
	SourceOpenLibrary = "open_library"
	DefaultLanguage   = "en"
)

// Book is the normalized record derived from an Open Library work, its
// chosen edition and resolved author names. Nullable columns are pointers.
type Book struct {
	ID             string    `json:"id,omitempty"`
	OpenLibraryKey string    `json:"open_library_key"`
	Title          string    `json:"title"`
	Authors        []string  `json:"authors"`
	Description    *string   `json:"description"`
	CoverSmall     *string   `json:"cover_small"`
	CoverMedium    *string   `json:"cover_medium"`
	CoverLarge     *string   `json:"cover_large"`
	PublishedDate  *string   `json:"published_date"`
	Publisher      *string   `json:"publisher"`
	PageCount      *int      `json:"page_count"`
	ChapterCount   *int      `json:"chapter_count"`
	Genres         []string  `json:"genres"`
	Subjects       []string  `json:"subjects"`
	ISBN13         *string   `json:"isbn13"`
	ISBN10         *string   `json:"isbn10"`
	Language       string    `json:"language"`
	Source         string    `json:"source"`
	FetchedAt      time.Time `json:"fetched_at"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// Query filters and paginates stored books, newest first.
type Query struct {
	Genre  string
	Cursor string
	Limit  int
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intPtr(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
