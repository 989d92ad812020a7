package openlibrary

import (
	"encoding/json"
	"strings"
)

// Text is a free-text field that Open Library serves either as a plain
// string or as a {"type": "/type/text", "value": "..."} object. Any other
// shape decodes to the empty string.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}
	var wrapped struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		*t = Text(wrapped.Value)
		return nil
	}
	*t = ""
	return nil
}

func (t Text) String() string { return string(t) }

type AuthorRef struct {
	Author struct {
		Key string `json:"key"`
	} `json:"author"`
}

// Work matches /works/{key}.json
type Work struct {
	Key         string      `json:"key"`
	Title       string      `json:"title"`
	Description Text        `json:"description"`
	Covers      []int       `json:"covers"`
	Subjects    []string    `json:"subjects"`
	Authors     []AuthorRef `json:"authors"`
}

// AuthorKeys returns the non-empty author keys in declaration order.
func (w *Work) AuthorKeys() []string {
	keys := make([]string, 0, len(w.Authors))
	for _, a := range w.Authors {
		if k := strings.TrimSpace(a.Author.Key); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

type LanguageRef struct {
	Key string `json:"key"`
}

// Edition matches an entry of /works/{key}/editions.json. NumberOfPages is
// zero when unknown.
type Edition struct {
	Key           string        `json:"key"`
	Title         string        `json:"title"`
	ISBN13        []string      `json:"isbn_13"`
	ISBN10        []string      `json:"isbn_10"`
	NumberOfPages int           `json:"number_of_pages"`
	Publishers    []string      `json:"publishers"`
	PublishDate   string        `json:"publish_date"`
	Covers        []int         `json:"covers"`
	Languages     []LanguageRef `json:"languages"`
}

// HasLanguage reports whether the edition declares /languages/{code}.
func (e *Edition) HasLanguage(code string) bool {
	want := "/languages/" + code
	for _, l := range e.Languages {
		if l.Key == want {
			return true
		}
	}
	return false
}

// Author matches /authors/{key}.json
type Author struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Bio    Text   `json:"bio"`
	Photos []int  `json:"photos"`
}

// SearchDoc is a single search.json document.
type SearchDoc struct {
	Key                 string   `json:"key"`
	Title               string   `json:"title"`
	AuthorNames         []string `json:"author_name"`
	FirstPublishYear    int      `json:"first_publish_year"`
	CoverID             int      `json:"cover_i"`
	ISBN                []string `json:"isbn"`
	Subjects            []string `json:"subject"`
	Languages           []string `json:"language"`
	EditionCount        int      `json:"edition_count"`
	NumberOfPagesMedian int      `json:"number_of_pages_median"`
}

// SearchResponse matches search.json
type SearchResponse struct {
	NumFound int         `json:"numFound"`
	Start    int         `json:"start"`
	Docs     []SearchDoc `json:"docs"`
}

// TrendingWork matches an entry of /trending/{period}.json
type TrendingWork struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorKeys       []string `json:"author_key"`
	AuthorNames      []string `json:"author_name"`
	CoverID          int      `json:"cover_i"`
	FirstPublishYear int      `json:"first_publish_year"`
	EditionCount     int      `json:"edition_count"`
}

// SubjectWork matches an entry of /subjects/{slug}.json
type SubjectWork struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Authors []struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"authors"`
	CoverID          int `json:"cover_id"`
	FirstPublishYear int `json:"first_publish_year"`
	EditionCount     int `json:"edition_count"`
}

type SubjectResponse struct {
	Name      string        `json:"name"`
	WorkCount int           `json:"work_count"`
	Works     []SubjectWork `json:"works"`
}

// Subject is an entry of the curated browse list.
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var PopularSubjects = []Subject{
	{ID: "fiction", Name: "Fiction", Icon: "book"},
	{ID: "mystery", Name: "Mystery & Thriller", Icon: "search"},
	{ID: "romance", Name: "Romance", Icon: "heart"},
	{ID: "science_fiction", Name: "Science Fiction", Icon: "rocket"},
	{ID: "fantasy", Name: "Fantasy", Icon: "sparkles"},
	{ID: "horror", Name: "Horror", Icon: "skull"},
	{ID: "biography", Name: "Biography", Icon: "user"},
	{ID: "history", Name: "History", Icon: "clock"},
	{ID: "self-help", Name: "Self-Help", Icon: "lightbulb"},
	{ID: "business", Name: "Business", Icon: "briefcase"},
	{ID: "philosophy", Name: "Philosophy", Icon: "brain"},
	{ID: "poetry", Name: "Poetry", Icon: "feather"},
	{ID: "young_adult", Name: "Young Adult", Icon: "users"},
	{ID: "children", Name: "Children's Books", Icon: "baby"},
	{ID: "classics", Name: "Classics", Icon: "bookmark"},
	{ID: "literary_fiction", Name: "Literary Fiction", Icon: "book-open"},
}
