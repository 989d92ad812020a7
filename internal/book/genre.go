package book

import "strings"

const (
	subjectScanLimit = 20
	maxGenres        = 5
	maxSubjects      = 10
)

var genreKeywords = []string{
	"fiction", "non-fiction", "nonfiction", "mystery", "thriller", "romance",
	"fantasy", "science fiction", "horror", "biography", "memoir", "history",
	"self-help", "business", "philosophy", "poetry", "drama", "adventure",
}

// Genres returns up to five subjects that contain a genre keyword,
// case-insensitively, in subject order.
func Genres(subjects []string) []string {
	out := []string{}
	for _, s := range subjects {
		if len(out) == maxGenres {
			break
		}
		lower := strings.ToLower(s)
		for _, kw := range genreKeywords {
			if strings.Contains(lower, kw) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func head(ss []string, n int) []string {
	if len(ss) > n {
		ss = ss[:n]
	}
	return append([]string{}, ss...)
}
