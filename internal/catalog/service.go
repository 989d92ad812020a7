package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bookspark/internal/cover"
	"bookspark/internal/platform/googlebooks"
	"bookspark/internal/platform/openlibrary"
)

const (
	defaultLimit   = 20
	maxLimit       = 100
	maxGoogleLimit = 40
)

type Service struct {
	ol        OpenLibrary
	google    GoogleBooks
	covers    *cover.Resolver
	validator *cover.Validator
	logger    *slog.Logger
}

// NewService wires the discovery sources. google and validator may be nil:
// search then has no fallback and cover validation is refused.
func NewService(ol OpenLibrary, google GoogleBooks, covers *cover.Resolver, validator *cover.Validator, logger *slog.Logger) *Service {
	if covers == nil {
		covers = cover.Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ol: ol, google: google, covers: covers, validator: validator, logger: logger}
}

// Search queries Open Library and falls back to Google Books when Open
// Library fails or finds nothing.
func (s *Service) Search(ctx context.Context, q SearchQuery) (SearchResult, error) {
	q.Q = strings.TrimSpace(q.Q)
	if q.Q == "" {
		return SearchResult{}, ErrEmptyQuery
	}
	q.Limit = clampLimit(q.Limit, defaultLimit, maxLimit)
	if q.Offset < 0 {
		q.Offset = 0
	}

	res, olErr := s.ol.Search(ctx, q.Q, q.Limit, q.Offset)
	if olErr == nil && len(res.Docs) > 0 {
		books := make([]Book, 0, len(res.Docs))
		for _, doc := range res.Docs {
			books = append(books, s.fromSearchDoc(doc))
		}
		return SearchResult{Books: books, Total: res.NumFound, Source: SourceOpenLibrary}, nil
	}
	if olErr != nil {
		s.logger.Warn("open library search failed", "query", q.Q, "error", olErr)
	}

	if s.google == nil {
		if olErr != nil {
			return SearchResult{}, fmt.Errorf("search %q: %w", q.Q, olErr)
		}
		return SearchResult{Books: []Book{}, Total: res.NumFound, Source: SourceOpenLibrary}, nil
	}

	results, total, err := s.google.Search(ctx, q.Q, googlebooks.SearchOptions{
		Limit:      min(q.Limit, maxGoogleLimit),
		StartIndex: q.Offset,
		OrderBy:    q.OrderBy,
	})
	if err != nil {
		if olErr != nil {
			return SearchResult{}, fmt.Errorf("search %q: %w", q.Q, errors.Join(olErr, err))
		}
		s.logger.Warn("google books fallback failed", "query", q.Q, "error", err)
		return SearchResult{Books: []Book{}, Source: SourceOpenLibrary}, nil
	}

	books := make([]Book, 0, len(results))
	for _, r := range results {
		books = append(books, s.fromGoogle(r))
	}
	return SearchResult{Books: books, Total: total, Source: SourceGoogleBooks}, nil
}

// Trending lists popular works for daily, weekly, monthly or yearly.
func (s *Service) Trending(ctx context.Context, period string, limit int) ([]Book, error) {
	works, err := s.ol.Trending(ctx, openlibrary.NormalizePeriod(period), clampLimit(limit, defaultLimit, maxLimit))
	if err != nil {
		return nil, fmt.Errorf("trending %s: %w", period, err)
	}
	books := make([]Book, 0, len(works))
	for _, w := range works {
		books = append(books, s.summary(w.Key, w.Title, w.AuthorNames, w.FirstPublishYear, nil, w.CoverID, w.EditionCount))
	}
	return books, nil
}

// Subjects is the curated list shown when no subject is chosen.
func (s *Service) Subjects() []openlibrary.Subject {
	return openlibrary.PopularSubjects
}

func (s *Service) Category(ctx context.Context, q CategoryQuery) (CategoryResult, error) {
	q.Limit = clampLimit(q.Limit, defaultLimit, maxLimit)
	if q.Offset < 0 {
		q.Offset = 0
	}

	res, err := s.ol.Subject(ctx, q.Subject, openlibrary.SubjectOptions{Limit: q.Limit, Offset: q.Offset, Sort: q.Sort})
	if err != nil {
		if errors.Is(err, openlibrary.ErrNotFound) {
			return CategoryResult{}, fmt.Errorf("%w: subject %s", ErrNotFound, q.Subject)
		}
		return CategoryResult{}, fmt.Errorf("category %s: %w", q.Subject, err)
	}

	books := make([]Book, 0, len(res.Works))
	for _, w := range res.Works {
		authors := make([]string, 0, len(w.Authors))
		for _, a := range w.Authors {
			authors = append(authors, a.Name)
		}
		books = append(books, s.summary(w.Key, w.Title, authors, w.FirstPublishYear, nil, w.CoverID, w.EditionCount))
	}

	return CategoryResult{
		Books:        books,
		Total:        res.WorkCount,
		CategoryName: res.Name,
		Offset:       q.Offset,
		HasMore:      q.Offset+len(books) < res.WorkCount,
	}, nil
}

func (s *Service) LookupISBN(ctx context.Context, isbn string) (Book, error) {
	if s.google == nil {
		return Book{}, fmt.Errorf("%w: isbn %s", ErrNotFound, isbn)
	}
	r, err := s.google.SearchByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, googlebooks.ErrNotFound) {
			return Book{}, fmt.Errorf("%w: isbn %s", ErrNotFound, isbn)
		}
		return Book{}, fmt.Errorf("lookup isbn %s: %w", isbn, err)
	}
	return s.fromGoogle(*r), nil
}

// Volume fetches a Google Books volume by id, the key carried by books
// whose source is google_books.
func (s *Service) Volume(ctx context.Context, id string) (Book, error) {
	if s.google == nil {
		return Book{}, fmt.Errorf("%w: volume %s", ErrNotFound, id)
	}
	r, err := s.google.GetVolume(ctx, id)
	if err != nil {
		if errors.Is(err, googlebooks.ErrNotFound) {
			return Book{}, fmt.Errorf("%w: volume %s", ErrNotFound, id)
		}
		return Book{}, fmt.Errorf("volume %s: %w", id, err)
	}
	return s.fromGoogle(*r), nil
}

// Covers returns the ranked candidates and, when asked, the first one that
// answers with a real image.
func (s *Service) Covers(ctx context.Context, q CoverQuery) (CoverResult, error) {
	size := cover.ParseSize(q.Size)
	candidates := s.covers.Candidates(q.ISBNs, q.CoverID, size)
	res := CoverResult{Candidates: nonNil(candidates)}

	if !q.Validate {
		if len(candidates) > 0 {
			res.Best = &candidates[0]
		}
		return res, nil
	}
	if s.validator == nil {
		return res, errors.New("cover validation is not configured")
	}

	res.Validated = true
	best, err := s.validator.FirstValid(ctx, candidates)
	if err != nil {
		if errors.Is(err, cover.ErrNoValidCover) {
			return res, nil
		}
		return res, err
	}
	res.Best = &best
	return res, nil
}

func (s *Service) fromSearchDoc(doc openlibrary.SearchDoc) Book {
	b := s.summary(doc.Key, doc.Title, doc.AuthorNames, doc.FirstPublishYear, doc.ISBN, doc.CoverID, doc.EditionCount)
	b.PageCount = optInt(doc.NumberOfPagesMedian)
	return b
}

func (s *Service) summary(key, title string, authors []string, year int, isbns []string, coverID, editions int) Book {
	urls := s.covers.Candidates(isbns, coverID, cover.Large)
	b := Book{
		Key:          key,
		Title:        title,
		Authors:      nonNil(authors),
		Year:         optInt(year),
		CoverURLs:    nonNil(urls),
		EditionCount: editions,
		Source:       SourceOpenLibrary,
	}
	if len(urls) > 0 {
		b.CoverURL = &urls[0]
	}
	return b
}

// fromGoogle prefers the volume's own thumbnail, then ISBN-derived candidates.
func (s *Service) fromGoogle(r googlebooks.Result) Book {
	var isbns []string
	for _, isbn := range []string{r.ISBN13, r.ISBN10} {
		if isbn != "" {
			isbns = append(isbns, isbn)
		}
	}
	urls := s.covers.Candidates(isbns, 0, cover.Large)
	if r.CoverURL != "" {
		urls = append([]string{r.CoverURL}, urls...)
	}

	b := Book{
		Key:         r.Key,
		Title:       r.Title,
		Authors:     nonNil(r.Authors),
		Year:        optInt(r.Year),
		CoverURLs:   nonNil(urls),
		PageCount:   optInt(r.PageCount),
		Source:      SourceGoogleBooks,
		Description: r.Description,
		Publisher:   r.Publisher,
		ISBN13:      r.ISBN13,
		ISBN10:      r.ISBN10,
		Categories:  r.Categories,
		Rating:      r.Rating,
		RatingCount: r.RatingCount,
	}
	if len(urls) > 0 {
		b.CoverURL = optString(urls[0])
	}
	return b
}
