package openlibrary

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"bookspark/internal/platform/upstream"
)

const DefaultBaseURL = "https://openlibrary.org"

var (
	ErrNotFound  = errors.New("openlibrary: not found")
	ErrMalformed = errors.New("openlibrary: malformed response")
)

var (
	//go:embed schemas/work.json
	workSchemaJSON string
	//go:embed schemas/edition.json
	editionSchemaJSON string
	//go:embed schemas/author.json
	authorSchemaJSON string

	workSchema    = jsonschema.MustCompileString("work.json", workSchemaJSON)
	editionSchema = jsonschema.MustCompileString("edition.json", editionSchemaJSON)
	authorSchema  = jsonschema.MustCompileString("author.json", authorSchemaJSON)
)

var searchFields = strings.Join([]string{
	"key", "title", "author_name", "first_publish_year", "cover_i", "isbn",
	"subject", "language", "edition_count", "number_of_pages_median",
}, ",")

type Client struct {
	http    *upstream.Client
	baseURL string
}

func NewClient(baseURL string, hc *upstream.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: hc, baseURL: strings.TrimRight(baseURL, "/")}
}

// WorkPath normalizes "OL45804W" or "/works/OL45804W" to "/works/OL45804W".
func WorkPath(key string) string {
	return withPrefix(key, "/works/")
}

// AuthorPath normalizes an author key the same way WorkPath does.
func AuthorPath(key string) string {
	return withPrefix(key, "/authors/")
}

func withPrefix(key, prefix string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, prefix) {
		return key
	}
	return prefix + strings.TrimPrefix(key, "/")
}

// GetWork fetches a work. A missing work or a body that fails schema
// validation are both reported as errors; the caller decides how to surface them.
func (c *Client) GetWork(ctx context.Context, key string) (*Work, error) {
	path := WorkPath(key)
	body, err := c.http.GetRaw(ctx, c.baseURL+path+".json")
	if err != nil {
		return nil, c.wrap(err, path)
	}
	var w Work
	if err := decodeValidated(body, workSchema, &w); err != nil {
		return nil, fmt.Errorf("work %s: %w", path, err)
	}
	w.Covers = positive(w.Covers)
	return &w, nil
}

// GetEditions fetches up to limit editions of a work. Entries that fail
// schema validation are dropped rather than failing the whole list.
func (c *Client) GetEditions(ctx context.Context, key string, limit int) ([]Edition, error) {
	path := WorkPath(key)
	u := fmt.Sprintf("%s%s/editions.json?limit=%d", c.baseURL, path, limit)

	var res struct {
		Entries []json.RawMessage `json:"entries"`
	}
	if err := c.http.GetJSON(ctx, u, &res); err != nil {
		return nil, c.wrap(err, path)
	}

	out := make([]Edition, 0, len(res.Entries))
	for _, raw := range res.Entries {
		var e Edition
		if err := decodeValidated(raw, editionSchema, &e); err != nil {
			continue
		}
		e.Covers = positive(e.Covers)
		out = append(out, e)
	}
	return out, nil
}

func (c *Client) GetAuthor(ctx context.Context, key string) (*Author, error) {
	path := AuthorPath(key)
	body, err := c.http.GetRaw(ctx, c.baseURL+path+".json")
	if err != nil {
		return nil, c.wrap(err, path)
	}
	var a Author
	if err := decodeValidated(body, authorSchema, &a); err != nil {
		return nil, fmt.Errorf("author %s: %w", path, err)
	}
	return &a, nil
}

func (c *Client) Search(ctx context.Context, query string, limit, offset int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	params.Set("fields", searchFields)

	var res SearchResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/search.json?"+params.Encode(), &res); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	for i := range res.Docs {
		if res.Docs[i].CoverID < 0 {
			res.Docs[i].CoverID = 0
		}
	}
	return &res, nil
}

// Trending periods accepted by /trending/{period}.json.
var trendingPeriods = map[string]bool{"daily": true, "weekly": true, "monthly": true, "yearly": true}

// NormalizePeriod maps unknown periods to "daily".
func NormalizePeriod(period string) string {
	if trendingPeriods[period] {
		return period
	}
	return "daily"
}

func (c *Client) Trending(ctx context.Context, period string, limit int) ([]TrendingWork, error) {
	u := fmt.Sprintf("%s/trending/%s.json?limit=%d", c.baseURL, NormalizePeriod(period), limit)
	var res struct {
		Works []TrendingWork `json:"works"`
	}
	if err := c.http.GetJSON(ctx, u, &res); err != nil {
		return nil, fmt.Errorf("trending: %w", err)
	}
	return res.Works, nil
}

type SubjectOptions struct {
	Limit  int
	Offset int
	// Sort is one of editions (default), old, new, rating.
	Sort string
}

var whitespace = regexp.MustCompile(`\s+`)

// SubjectSlug lower-cases a subject and joins words with underscores.
func SubjectSlug(subject string) string {
	return whitespace.ReplaceAllString(strings.ToLower(subject), "_")
}

func (c *Client) Subject(ctx context.Context, subject string, opts SubjectOptions) (*SubjectResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(opts.Limit))
	params.Set("offset", strconv.Itoa(opts.Offset))
	switch opts.Sort {
	case "old", "new", "rating":
		params.Set("sort", opts.Sort)
	}

	u := fmt.Sprintf("%s/subjects/%s.json?%s", c.baseURL, url.PathEscape(SubjectSlug(subject)), params.Encode())
	var res SubjectResponse
	if err := c.http.GetJSON(ctx, u, &res); err != nil {
		return nil, c.wrap(err, "subject "+subject)
	}
	if res.Name == "" {
		res.Name = subject
	}
	return &res, nil
}

func (c *Client) wrap(err error, what string) error {
	if upstream.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}

func decodeValidated(raw []byte, schema *jsonschema.Schema, target any) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func positive(ids []int) []int {
	out := ids[:0]
	for _, id := range ids {
		if id > 0 {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
