// Package googlebooks is a small client for the Google Books volumes API,
// used as the discovery fallback when Open Library has nothing to offer.
package googlebooks

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"bookspark/internal/platform/upstream"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/books/v1"
	maxPageSize    = 40
)

var ErrNotFound = errors.New("googlebooks: not found")

type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
	Small          string `json:"small"`
	Medium         string `json:"medium"`
	Large          string `json:"large"`
	ExtraLarge     string `json:"extraLarge"`
}

type VolumeInfo struct {
	Title               string               `json:"title"`
	Subtitle            string               `json:"subtitle"`
	Authors             []string             `json:"authors"`
	Publisher           string               `json:"publisher"`
	PublishedDate       string               `json:"publishedDate"`
	Description         string               `json:"description"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers"`
	PageCount           int                  `json:"pageCount"`
	Categories          []string             `json:"categories"`
	AverageRating       float64              `json:"averageRating"`
	RatingsCount        int                  `json:"ratingsCount"`
	ImageLinks          *ImageLinks          `json:"imageLinks"`
	Language            string               `json:"language"`
}

type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

type searchResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

// Result is a volume flattened into the fields the catalog cares about.
type Result struct {
	Key         string
	Title       string
	Authors     []string
	Year        int
	CoverURL    string
	PageCount   int
	Description string
	Publisher   string
	ISBN13      string
	ISBN10      string
	Categories  []string
	Rating      float64
	RatingCount int
}

type SearchOptions struct {
	Limit      int
	StartIndex int
	// OrderBy is relevance (default) or newest.
	OrderBy string
}

type Client struct {
	http    *upstream.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string, hc *upstream.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: hc, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

// Search runs a volumes query. Limit is capped at 40, the API maximum.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]Result, int, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	orderBy := opts.OrderBy
	if orderBy != "newest" {
		orderBy = "relevance"
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(limit))
	params.Set("startIndex", strconv.Itoa(opts.StartIndex))
	params.Set("orderBy", orderBy)
	params.Set("printType", "books")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	var res searchResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/volumes?"+params.Encode(), &res); err != nil {
		return nil, 0, fmt.Errorf("google books search %q: %w", query, err)
	}

	out := make([]Result, 0, len(res.Items))
	for _, v := range res.Items {
		out = append(out, v.Result())
	}
	return out, res.TotalItems, nil
}

func (c *Client) GetVolume(ctx context.Context, id string) (*Result, error) {
	u := c.baseURL + "/volumes/" + url.PathEscape(id)
	if c.apiKey != "" {
		u += "?key=" + url.QueryEscape(c.apiKey)
	}
	var v Volume
	if err := c.http.GetJSON(ctx, u, &v); err != nil {
		if upstream.IsNotFound(err) {
			return nil, fmt.Errorf("%w: volume %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("google books volume %s: %w", id, err)
	}
	r := v.Result()
	return &r, nil
}

// SearchByISBN returns the first volume matching isbn.
func (c *Client) SearchByISBN(ctx context.Context, isbn string) (*Result, error) {
	results, _, err := c.Search(ctx, "isbn:"+strings.TrimSpace(isbn), SearchOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: isbn %s", ErrNotFound, isbn)
	}
	return &results[0], nil
}

func (v Volume) Result() Result {
	info := v.VolumeInfo
	isbn13, isbn10 := ISBNs(info.IndustryIdentifiers)
	return Result{
		Key:         v.ID,
		Title:       info.Title,
		Authors:     info.Authors,
		Year:        Year(info.PublishedDate),
		CoverURL:    CoverURL(info.ImageLinks),
		PageCount:   info.PageCount,
		Description: info.Description,
		Publisher:   info.Publisher,
		ISBN13:      isbn13,
		ISBN10:      isbn10,
		Categories:  info.Categories,
		Rating:      info.AverageRating,
		RatingCount: info.RatingsCount,
	}
}

// CoverURL picks the largest image link and upgrades it to https, zoom=2
// and no page-curl effect.
func CoverURL(links *ImageLinks) string {
	if links == nil {
		return ""
	}
	var u string
	for _, candidate := range []string{links.ExtraLarge, links.Large, links.Medium, links.Thumbnail, links.SmallThumbnail} {
		if candidate != "" {
			u = candidate
			break
		}
	}
	if u == "" {
		return ""
	}
	u = strings.Replace(u, "http://", "https://", 1)
	u = strings.Replace(u, "&edge=curl", "", 1)
	return strings.Replace(u, "zoom=1", "zoom=2", 1)
}

func ISBNs(ids []IndustryIdentifier) (isbn13, isbn10 string) {
	for _, id := range ids {
		switch id.Type {
		case "ISBN_13":
			if isbn13 == "" {
				isbn13 = id.Identifier
			}
		case "ISBN_10":
			if isbn10 == "" {
				isbn10 = id.Identifier
			}
		}
	}
	return isbn13, isbn10
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// Year extracts the first four-digit run of a published date, or 0.
func Year(publishedDate string) int {
	m := yearPattern.FindString(publishedDate)
	if m == "" {
		return 0
	}
	y, _ := strconv.Atoi(m)
	return y
}
