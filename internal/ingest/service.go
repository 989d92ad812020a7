package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bookspark/internal/book"
	"bookspark/internal/platform/openlibrary"
)

type Config struct {
	Subjects   []string
	PerSubject int
}

type SubjectSource interface {
	Subject(ctx context.Context, subject string, opts openlibrary.SubjectOptions) (*openlibrary.SubjectResponse, error)
}

type Resolver interface {
	ResolveOrFetch(ctx context.Context, key string) (book.Book, error)
}

// Service pre-resolves the works listed under popular subjects so the first
// reader of each book hits the store instead of Open Library.
type Service struct {
	subjects   SubjectSource
	resolver   Resolver
	ingestRepo Repository
	cfg        Config
	logger     *slog.Logger
}

func NewService(subjects SubjectSource, resolver Resolver, ingestRepo Repository, cfg Config, logger *slog.Logger) *Service {
	if cfg.PerSubject <= 0 {
		cfg.PerSubject = 20
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		subjects:   subjects,
		resolver:   resolver,
		ingestRepo: ingestRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run resolves up to perSubject works for each subject. Empty arguments
// fall back to the configured defaults. A failing subject listing fails the
// run; a failing work is counted and skipped.
func (s *Service) Run(ctx context.Context, subjects []string, perSubject int) (run *Run, err error) {
	if len(subjects) == 0 {
		subjects = s.cfg.Subjects
	}
	if perSubject <= 0 {
		perSubject = s.cfg.PerSubject
	}

	run = &Run{
		Status:     StatusRunning,
		Subjects:   subjects,
		PerSubject: perSubject,
		StartedAt:  time.Now().UTC(),
	}
	runID, rErr := s.ingestRepo.CreateRun(ctx, run)
	if rErr != nil {
		return nil, fmt.Errorf("create ingest run: %w", rErr)
	}
	run.ID = runID

	defer func() {
		now := time.Now().UTC()
		run.FinishedAt = &now
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}

		if run.Error != "" {
			run.Status = StatusFailed
		} else {
			run.Status = StatusCompleted
		}
		// Record the outcome even when the request context is gone.
		if updateErr := s.ingestRepo.UpdateRun(context.WithoutCancel(ctx), run); updateErr != nil {
			s.logger.Error("update ingest run failed", "run", run.ID, "error", updateErr)
		}
	}()

	seen := make(map[string]bool)
	for _, subject := range subjects {
		subject = strings.TrimSpace(subject)
		if subject == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return run, err
		}

		res, err := s.subjects.Subject(ctx, subject, openlibrary.SubjectOptions{Limit: perSubject})
		if err != nil {
			run.Error = fmt.Sprintf("list subject %s: %v", subject, err)
			return run, err
		}

		for _, w := range res.Works {
			key := openlibrary.WorkPath(w.Key)
			if w.Key == "" || seen[key] {
				continue
			}
			seen[key] = true
			run.WorksFetched++

			b, err := s.resolver.ResolveOrFetch(ctx, key)
			if err != nil {
				if ctx.Err() != nil {
					return run, ctx.Err()
				}
				s.logger.Warn("resolve work failed", "run", run.ID, "key", key, "error", err)
				run.BooksFailed++
				continue
			}
			run.BooksResolved++
			if err := s.ingestRepo.LinkBookToRun(ctx, run.ID, b.ID); err != nil {
				s.logger.Warn("link book to run failed", "run", run.ID, "book", b.ID, "error", err)
			}
		}
		s.logger.Info("subject warmed", "run", run.ID, "subject", subject, "works", len(res.Works))
	}

	return run, nil
}
