// Package cover builds ranked cover image URLs for a book from its ISBNs and
// Open Library cover id, and optionally probes them to skip placeholders.
package cover

import (
	"fmt"
	"strings"
)

const (
	DefaultOpenLibraryURL = "https://covers.openlibrary.org"
	DefaultAbeBooksURL    = "https://pictures.abebooks.com/isbn"
)

type Size string

const (
	Small  Size = "S"
	Medium Size = "M"
	Large  Size = "L"
)

// ParseSize accepts S, M or L in any case and defaults to Large.
func ParseSize(s string) Size {
	switch Size(strings.ToUpper(strings.TrimSpace(s))) {
	case Small:
		return Small
	case Medium:
		return Medium
	default:
		return Large
	}
}

// Prefixes treated as English-language publishers. This is a prefix match
// only, not a registration-group lookup.
var englishPrefixes = []string{"9780", "9781", "0", "1"}

// SelectBestISBN returns the preferred ISBN-13 and ISBN-10 from isbns.
// Within each length the first English-prefixed entry wins, else the first
// entry of that length. Either result may be empty.
func SelectBestISBN(isbns []string) (isbn13, isbn10 string) {
	var any13, any10 string
	for _, isbn := range isbns {
		switch len(isbn) {
		case 13:
			if any13 == "" {
				any13 = isbn
			}
			if isbn13 == "" && isEnglish(isbn) {
				isbn13 = isbn
			}
		case 10:
			if any10 == "" {
				any10 = isbn
			}
			if isbn10 == "" && isEnglish(isbn) {
				isbn10 = isbn
			}
		}
	}
	if isbn13 == "" {
		isbn13 = any13
	}
	if isbn10 == "" {
		isbn10 = any10
	}
	return isbn13, isbn10
}

func isEnglish(isbn string) bool {
	for _, p := range englishPrefixes {
		if strings.HasPrefix(isbn, p) {
			return true
		}
	}
	return false
}

// Resolver turns identifiers into candidate URLs against configurable hosts.
type Resolver struct {
	openLibraryURL string
	abeBooksURL    string
}

func NewResolver(openLibraryURL, abeBooksURL string) *Resolver {
	if openLibraryURL == "" {
		openLibraryURL = DefaultOpenLibraryURL
	}
	if abeBooksURL == "" {
		abeBooksURL = DefaultAbeBooksURL
	}
	return &Resolver{
		openLibraryURL: strings.TrimRight(openLibraryURL, "/"),
		abeBooksURL:    strings.TrimRight(abeBooksURL, "/"),
	}
}

var Default = NewResolver("", "")

func (r *Resolver) OpenLibraryISBN(isbn string, size Size) string {
	return fmt.Sprintf("%s/b/isbn/%s-%s.jpg", r.openLibraryURL, isbn, size)
}

func (r *Resolver) OpenLibraryID(coverID int, size Size) string {
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", r.openLibraryURL, coverID, size)
}

// AbeBooks only serves one size.
func (r *Resolver) AbeBooks(isbn string) string {
	return fmt.Sprintf("%s/%s-L.jpg", r.abeBooksURL, isbn)
}

// Candidates returns cover URLs best-first: Open Library and AbeBooks by
// ISBN-13, the same pair by ISBN-10, then Open Library by cover id. Missing
// identifiers shorten the list; duplicates are dropped keeping first position.
// A coverID <= 0 means none.
func (r *Resolver) Candidates(isbns []string, coverID int, size Size) []string {
	isbn13, isbn10 := SelectBestISBN(isbns)

	urls := make([]string, 0, 5)
	if isbn13 != "" {
		urls = append(urls, r.OpenLibraryISBN(isbn13, size), r.AbeBooks(isbn13))
	}
	if isbn10 != "" {
		urls = append(urls, r.OpenLibraryISBN(isbn10, size), r.AbeBooks(isbn10))
	}
	if coverID > 0 {
		urls = append(urls, r.OpenLibraryID(coverID, size))
	}
	return dedupe(urls)
}

// Best returns the first candidate, or "" when there is none.
func (r *Resolver) Best(isbns []string, coverID int, size Size) string {
	if c := r.Candidates(isbns, coverID, size); len(c) > 0 {
		return c[0]
	}
	return ""
}

// BestCoverCandidates is Candidates on the default hosts.
func BestCoverCandidates(isbns []string, coverID int, size Size) []string {
	return Default.Candidates(isbns, coverID, size)
}

func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := urls[:0]
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
