package book

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"bookspark/internal/cover"
	"bookspark/internal/platform/openlibrary"
)

type Config struct {
	EditionLimit int
	MaxAuthors   int
}

// Service resolves Open Library works into stored books.
type Service struct {
	store  Store
	works  WorkSource
	covers *cover.Resolver
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store Store, works WorkSource, covers *cover.Resolver, cfg Config, logger *slog.Logger) *Service {
	if cfg.EditionLimit <= 0 {
		cfg.EditionLimit = 50
	}
	if cfg.MaxAuthors <= 0 {
		cfg.MaxAuthors = 3
	}
	if covers == nil {
		covers = cover.Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, works: works, covers: covers, cfg: cfg, logger: logger, now: time.Now}
}

// ResolveOrFetch returns the stored book for key, building and inserting it
// on first use. A concurrent insert of the same key is resolved by reading
// back the winner's row.
func (s *Service) ResolveOrFetch(ctx context.Context, key string) (Book, error) {
	key = openlibrary.WorkPath(key)

	b, err := s.store.FindByExternalKey(ctx, key)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Book{}, fmt.Errorf("find book %s: %w", key, err)
	}

	b, err = s.Assemble(ctx, key)
	if err != nil {
		return Book{}, err
	}

	if err := s.store.Insert(ctx, &b); err != nil {
		if !errors.Is(err, ErrDuplicate) {
			return Book{}, fmt.Errorf("insert book %s: %w", key, err)
		}
		s.logger.Info("book inserted concurrently, reading back", "key", key)
		existing, err := s.store.FindByExternalKey(ctx, key)
		if err != nil {
			return Book{}, fmt.Errorf("read back book %s: %w", key, err)
		}
		return existing, nil
	}
	return b, nil
}

// Preview returns the stored book for key if there is one, otherwise a
// freshly assembled book that is not persisted. stored reports which.
func (s *Service) Preview(ctx context.Context, key string) (b Book, stored bool, err error) {
	key = openlibrary.WorkPath(key)

	b, err = s.store.FindByExternalKey(ctx, key)
	if err == nil {
		return b, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Book{}, false, fmt.Errorf("find book %s: %w", key, err)
	}
	b, err = s.Assemble(ctx, key)
	return b, false, err
}

func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, q Query) ([]Book, string, error) {
	return s.store.List(ctx, q)
}

// Assemble builds a book from the work, its editions and its authors
// without touching the store. Only the work lookup is fatal; it is reported
// as ErrNotFound whatever the cause.
func (s *Service) Assemble(ctx context.Context, key string) (Book, error) {
	key = openlibrary.WorkPath(key)

	work, err := s.works.GetWork(ctx, key)
	if err != nil {
		s.logger.Info("work lookup failed", "key", key, "error", err)
		return Book{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	editions, err := s.works.GetEditions(ctx, key, s.cfg.EditionLimit)
	if err != nil {
		s.logger.Warn("fetch editions failed", "key", key, "error", err)
		editions = nil
	}
	best := BestEdition(editions)
	fields := pickEditionFields(best, editions)

	authors := s.resolveAuthors(ctx, work.AuthorKeys())

	coverID := fields.CoverID
	if len(work.Covers) > 0 {
		coverID = work.Covers[0]
	}
	isbns := make([]string, 0, 2)
	if fields.ISBN13 != "" {
		isbns = append(isbns, fields.ISBN13)
	}
	if fields.ISBN10 != "" {
		isbns = append(isbns, fields.ISBN10)
	}

	subjects := head(work.Subjects, subjectScanLimit)

	return Book{
		OpenLibraryKey: key,
		Title:          work.Title,
		Authors:        authors,
		Description:    strPtr(work.Description.String()),
		CoverSmall:     strPtr(s.covers.Best(isbns, coverID, cover.Small)),
		CoverMedium:    strPtr(s.covers.Best(isbns, coverID, cover.Medium)),
		CoverLarge:     strPtr(s.covers.Best(isbns, coverID, cover.Large)),
		PublishedDate:  strPtr(fields.PublishDate),
		Publisher:      strPtr(fields.Publisher),
		PageCount:      intPtr(fields.PageCount),
		Genres:         Genres(subjects),
		Subjects:       head(subjects, maxSubjects),
		ISBN13:         strPtr(fields.ISBN13),
		ISBN10:         strPtr(fields.ISBN10),
		Language:       DefaultLanguage,
		Source:         SourceOpenLibrary,
		FetchedAt:      s.now().UTC().Truncate(time.Microsecond),
	}, nil
}

// resolveAuthors looks up the first MaxAuthors keys concurrently and keeps
// the names that resolved, in declaration order.
func (s *Service) resolveAuthors(ctx context.Context, keys []string) []string {
	if len(keys) > s.cfg.MaxAuthors {
		keys = keys[:s.cfg.MaxAuthors]
	}
	names := make([]string, len(keys))

	var g errgroup.Group
	for i, key := range keys {
		g.Go(func() error {
			a, err := s.works.GetAuthor(ctx, key)
			if err != nil {
				s.logger.Warn("fetch author failed", "author", key, "error", err)
				return nil
			}
			names[i] = a.Name
			return nil
		})
	}
	_ = g.Wait()

	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
