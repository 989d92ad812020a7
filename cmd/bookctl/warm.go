package main

import (
	"github.com/spf13/cobra"

	"bookspark/internal/book"
	"bookspark/internal/ingest"
)

var (
	warmSubjects []string
	warmLimit    int
)

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Resolve the works listed under popular subjects into the store",
	Long: `Warm lists each subject on Open Library and resolves its works, so the
first reader of each book is served from the database. Subjects default to
WARM_SUBJECTS and the per-subject limit to WARM_LIMIT.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp()
		if err != nil {
			return err
		}
		pool, err := a.openDB(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		resolver := a.bookService(book.NewPostgresRepo(pool, a.cfg.DBTimeout))
		svc := ingest.NewService(a.ol, resolver, ingest.NewPostgresRepo(pool), ingest.Config{
			Subjects:   a.cfg.WarmSubjects,
			PerSubject: a.cfg.WarmLimit,
		}, a.logger)

		run, err := svc.Run(ctx, warmSubjects, warmLimit)
		if run != nil {
			if perr := printOutput(cmd.OutOrStdout(), outputFormat, run); perr != nil {
				return perr
			}
		}
		return err
	},
}

func init() {
	warmCmd.Flags().StringSliceVar(&warmSubjects, "subject", nil, "subject to warm (repeatable)")
	warmCmd.Flags().IntVar(&warmLimit, "limit", 0, "works per subject")
}
