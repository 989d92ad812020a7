package main

import (
	"strings"

	"github.com/spf13/cobra"

	"bookspark/internal/catalog"
)

var (
	searchLimit    int
	searchOffset   int
	searchOrder    string
	trendingPeriod string
	trendingLimit  int
	coverISBNs     []string
	coverID        int
	coverSize      string
	coverValidate  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Open Library, falling back to Google Books",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		res, err := a.catalogService().Search(cmd.Context(), catalog.SearchQuery{
			Q:       strings.Join(args, " "),
			Limit:   searchLimit,
			Offset:  searchOffset,
			OrderBy: searchOrder,
		})
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), outputFormat, res)
	},
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List trending works",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		books, err := a.catalogService().Trending(cmd.Context(), trendingPeriod, trendingLimit)
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), outputFormat, books)
	},
}

var isbnCmd = &cobra.Command{
	Use:   "isbn <isbn>",
	Short: "Look up an ISBN on Google Books",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		b, err := a.catalogService().LookupISBN(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), outputFormat, b)
	},
}

var volumeCmd = &cobra.Command{
	Use:   "volume <id>",
	Short: "Fetch a Google Books volume by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		b, err := a.catalogService().Volume(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), outputFormat, b)
	},
}

var coversCmd = &cobra.Command{
	Use:   "covers",
	Short: "List ranked cover URL candidates",
	Long: `Covers prints the candidate cover URLs for the given identifiers in
preference order. With --validate each candidate is probed and the first
real image is reported as best.

Examples:
  bookctl covers --isbn 9780441013593 --isbn 0441013597
  bookctl covers --cover-id 12345 --size M --validate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		isbns := make([]string, 0, len(coverISBNs))
		for _, isbn := range coverISBNs {
			if isbn = strings.TrimSpace(isbn); isbn != "" {
				isbns = append(isbns, isbn)
			}
		}
		res, err := a.catalogService().Covers(cmd.Context(), catalog.CoverQuery{
			ISBNs:    isbns,
			CoverID:  coverID,
			Size:     coverSize,
			Validate: coverValidate,
		})
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), outputFormat, res)
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "max results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "results to skip")
	searchCmd.Flags().StringVar(&searchOrder, "order", "relevance", "relevance or newest (Google Books fallback only)")

	trendingCmd.Flags().StringVar(&trendingPeriod, "period", "daily", "daily, weekly, monthly or yearly")
	trendingCmd.Flags().IntVar(&trendingLimit, "limit", 20, "max results")

	coversCmd.Flags().StringSliceVar(&coverISBNs, "isbn", nil, "ISBN-13 or ISBN-10 (repeatable)")
	coversCmd.Flags().IntVar(&coverID, "cover-id", 0, "Open Library cover id")
	coversCmd.Flags().StringVar(&coverSize, "size", "L", "S, M or L")
	coversCmd.Flags().BoolVar(&coverValidate, "validate", false, "probe candidates with HEAD requests")
}
