package book

import (
	"sort"

	"bookspark/internal/platform/openlibrary"
)

// Edition score weights.
const (
	scoreEnglish   = 10
	scorePages     = 5
	scoreISBN13    = 3
	scoreISBN10    = 2
	scorePublisher = 2
	scoreCover     = 1
)

// ScoreEdition rates an edition by language and completeness.
func ScoreEdition(e openlibrary.Edition) int {
	score := 0
	if e.HasLanguage("eng") {
		score += scoreEnglish
	}
	if e.NumberOfPages > 0 {
		score += scorePages
	}
	if len(e.ISBN13) > 0 {
		score += scoreISBN13
	}
	if len(e.ISBN10) > 0 {
		score += scoreISBN10
	}
	if len(e.Publishers) > 0 {
		score += scorePublisher
	}
	if len(e.Covers) > 0 {
		score += scoreCover
	}
	return score
}

// BestEdition returns the highest scoring edition, earliest first on ties,
// or nil for an empty list. The input is not reordered.
func BestEdition(editions []openlibrary.Edition) *openlibrary.Edition {
	if len(editions) == 0 {
		return nil
	}
	idx := make([]int, len(editions))
	scores := make([]int, len(editions))
	for i := range editions {
		idx[i] = i
		scores[i] = ScoreEdition(editions[i])
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	best := editions[idx[0]]
	return &best
}

// editionFields are the values taken from editions, preferring the chosen
// edition and otherwise the first edition that has each one.
type editionFields struct {
	PageCount   int
	ISBN13      string
	ISBN10      string
	Publisher   string
	PublishDate string
	CoverID     int
}

func pickEditionFields(best *openlibrary.Edition, all []openlibrary.Edition) editionFields {
	var f editionFields
	if best != nil {
		f.PageCount = best.NumberOfPages
		f.ISBN13 = first(best.ISBN13)
		f.ISBN10 = first(best.ISBN10)
		f.Publisher = first(best.Publishers)
		f.PublishDate = best.PublishDate
		if len(best.Covers) > 0 {
			f.CoverID = best.Covers[0]
		}
	}
	for _, e := range all {
		if f.PageCount <= 0 && e.NumberOfPages > 0 {
			f.PageCount = e.NumberOfPages
		}
		if f.ISBN13 == "" {
			f.ISBN13 = first(e.ISBN13)
		}
		if f.ISBN10 == "" {
			f.ISBN10 = first(e.ISBN10)
		}
		if f.Publisher == "" {
			f.Publisher = first(e.Publishers)
		}
		if f.PublishDate == "" {
			f.PublishDate = e.PublishDate
		}
	}
	return f
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}
