package main

import (
	"github.com/spf13/cobra"

	"bookspark/internal/book"
)

var resolveDryRun bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <work-key>",
	Short: "Resolve an Open Library work into a stored book",
	Long: `Resolve returns the stored book for a work key, fetching and storing it
on first use. With --dry-run the book is assembled from Open Library and
printed without touching the database.

Examples:
  bookctl resolve OL45804W
  bookctl resolve /works/OL45804W --dry-run -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp()
		if err != nil {
			return err
		}

		var b book.Book
		if resolveDryRun {
			b, err = a.bookService(nil).Assemble(ctx, args[0])
		} else {
			pool, dbErr := a.openDB(ctx)
			if dbErr != nil {
				return dbErr
			}
			defer pool.Close()
			store := book.NewPostgresRepo(pool, a.cfg.DBTimeout)
			b, err = a.bookService(store).ResolveOrFetch(ctx, args[0])
		}
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), outputFormat, b)
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveDryRun, "dry-run", false, "assemble without reading or writing the database")
}
