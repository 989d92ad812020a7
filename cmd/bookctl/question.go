package main

import (
	"github.com/spf13/cobra"

	"bookspark/internal/reflection"
)

var (
	questionGenres  []string
	questionChapter int
	questionTotal   int
)

var questionCmd = &cobra.Command{
	Use:   "question",
	Short: "Draw a reflection question",
	Long: `Question draws one reflection question for the given genres. When both
--chapter and --total are set and the reader is near the end, closing
questions join the pool.

Examples:
  bookctl question --genre "Science Fiction"
  bookctl question --genre mystery --chapter 9 --total 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var progress *reflection.Progress
		if cmd.Flags().Changed("chapter") && cmd.Flags().Changed("total") {
			progress = &reflection.Progress{Chapter: questionChapter, Total: questionTotal}
		}
		q := reflection.NewSelector(nil, nil).Next(questionGenres, progress)
		return printOutput(cmd.OutOrStdout(), outputFormat, q)
	},
}

func init() {
	questionCmd.Flags().StringSliceVarP(&questionGenres, "genre", "g", nil, "genre label (repeatable)")
	questionCmd.Flags().IntVar(&questionChapter, "chapter", 0, "current chapter")
	questionCmd.Flags().IntVar(&questionTotal, "total", 0, "total chapters")
}
