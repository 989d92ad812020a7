// Package catalog serves book discovery straight from the upstream
// bibliographic APIs: search, trending lists, subject browsing, ISBN lookup
// and cover candidates. Nothing here is persisted.
package catalog

import (
	"errors"
)

var (
	ErrEmptyQuery = errors.New("search query is empty")
	ErrNotFound   = errors.New("catalog entry not found")
)

const (
	SourceOpenLibrary = "open_library"
	SourceGoogleBooks = "google_books"
)

// Book is a discovery summary. CoverURL is the first of CoverURLs.
type Book struct {
	Key          string   `json:"key"`
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	Year         *int     `json:"year"`
	CoverURL     *string  `json:"coverUrl"`
	CoverURLs    []string `json:"coverUrls"`
	PageCount    *int     `json:"pageCount,omitempty"`
	EditionCount int      `json:"editionCount,omitempty"`
	Source       string   `json:"source"`

	Description string   `json:"description,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	ISBN13      string   `json:"isbn13,omitempty"`
	ISBN10      string   `json:"isbn10,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	RatingCount int      `json:"ratingCount,omitempty"`
}

type SearchQuery struct {
	Q      string
	Limit  int
	Offset int
	// OrderBy is relevance (default) or newest. Only Google Books honours it.
	OrderBy string
}

type SearchResult struct {
	Books  []Book `json:"books"`
	Total  int    `json:"total"`
	Source string `json:"source"`
}

type CategoryQuery struct {
	Subject string
	Limit   int
	Offset  int
	// Sort is editions (default), old, new or rating.
	Sort string
}

type CategoryResult struct {
	Books        []Book `json:"books"`
	Total        int    `json:"total"`
	CategoryName string `json:"categoryName"`
	Offset       int    `json:"offset"`
	HasMore      bool   `json:"hasMore"`
}

type CoverQuery struct {
	ISBNs   []string
	CoverID int
	Size    string
	// Validate probes the candidates and reports the first real image.
	Validate bool
}

type CoverResult struct {
	Best       *string  `json:"best"`
	Candidates []string `json:"candidates"`
	Validated  bool     `json:"validated"`
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func optInt(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
