package openlibrary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookspark/internal/platform/upstream"
)

func newTestServer(t *testing.T, routes map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	hc := upstream.NewClient(upstream.Config{RetryDelay: time.Millisecond, Timeout: 2 * time.Second})
	return NewClient(srv.URL, hc)
}

func TestText_UnmarshalJSON(t *testing.T) {
	cases := []struct{ in, want string }{
		{`"plain"`, "plain"},
		{`{"type":"/type/text","value":"wrapped"}`, "wrapped"},
		{`42`, ""},
		{`null`, ""},
	}
	for _, c := range cases {
		var got Text
		require.NoError(t, json.Unmarshal([]byte(c.in), &got), c.in)
		assert.Equal(t, c.want, got.String(), c.in)
	}
}

func TestWorkPath(t *testing.T) {
	assert.Equal(t, "/works/OL45804W", WorkPath("OL45804W"))
	assert.Equal(t, "/works/OL45804W", WorkPath("/works/OL45804W"))
	assert.Equal(t, "/works/OL45804W", WorkPath(" /works/OL45804W "))
	assert.Equal(t, "/authors/OL1A", AuthorPath("OL1A"))
}

func TestClient_GetWork(t *testing.T) {
	c := newTestServer(t, map[string]string{
		"/works/OL45804W.json": `{
			"key": "/works/OL45804W",
			"title": "Example Book",
			"description": {"type": "/type/text", "value": "A story."},
			"covers": [-1, 12345],
			"subjects": ["Fiction", "Science Fiction"],
			"authors": [{"author": {"key": "/authors/OL1A"}}, {"author": {"key": ""}}]
		}`,
		"/works/OLBADW.json": `{"key": "/works/OLBADW", "covers": ["x"]}`,
	})
	ctx := context.Background()

	t.Run("decodes and normalizes", func(t *testing.T) {
		w, err := c.GetWork(ctx, "OL45804W")
		require.NoError(t, err)
		assert.Equal(t, "Example Book", w.Title)
		assert.Equal(t, "A story.", w.Description.String())
		assert.Equal(t, []int{12345}, w.Covers)
		assert.Equal(t, []string{"/authors/OL1A"}, w.AuthorKeys())
	})

	t.Run("missing work", func(t *testing.T) {
		_, err := c.GetWork(ctx, "/works/OL0W")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects malformed work", func(t *testing.T) {
		_, err := c.GetWork(ctx, "OLBADW")
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestClient_GetEditions(t *testing.T) {
	c := newTestServer(t, map[string]string{
		"/works/OL45804W/editions.json": `{"entries": [
			{"key": "/books/OL1M", "isbn_13": ["9781234567890"], "number_of_pages": 320, "publishers": ["Acme"], "languages": [{"key": "/languages/eng"}]},
			{"key": "/books/OL2M", "number_of_pages": "many"},
			{"key": "/books/OL3M", "covers": [0, 7]}
		]}`,
	})

	eds, err := c.GetEditions(context.Background(), "OL45804W", 50)
	require.NoError(t, err)
	require.Len(t, eds, 2)
	assert.Equal(t, 320, eds[0].NumberOfPages)
	assert.True(t, eds[0].HasLanguage("eng"))
	assert.Equal(t, []int{7}, eds[1].Covers)
}

func TestClient_GetAuthor(t *testing.T) {
	c := newTestServer(t, map[string]string{
		"/authors/OL1A.json": `{"key": "/authors/OL1A", "name": "Jane Doe", "bio": "Writer."}`,
	})

	a, err := c.GetAuthor(context.Background(), "/authors/OL1A")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", a.Name)
	assert.Equal(t, "Writer.", a.Bio.String())

	_, err = c.GetAuthor(context.Background(), "OL2A")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Search(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		_, _ = w.Write([]byte(`{"numFound": 1, "start": 20, "docs": [{"key": "/works/OL1W", "title": "Dune", "cover_i": -1}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, upstream.NewClient(upstream.Config{}))
	res, err := c.Search(context.Background(), "dune herbert", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, "dune herbert", gotQuery)
	assert.Equal(t, 1, res.NumFound)
	assert.Equal(t, 0, res.Docs[0].CoverID)
}

func TestClient_Trending(t *testing.T) {
	c := newTestServer(t, map[string]string{
		"/trending/daily.json": `{"works": [{"key": "/works/OL1W", "title": "Dune"}]}`,
	})

	works, err := c.Trending(context.Background(), "hourly", 5)
	require.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, "Dune", works[0].Title)
}

func TestClient_Subject(t *testing.T) {
	var gotPath, gotSort string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSort = r.URL.Query().Get("sort")
		_, _ = w.Write([]byte(`{"work_count": 2, "works": [{"key": "/works/OL1W", "title": "Dune", "cover_id": 9}]}`))
	}))
	defer srv.Close()
	c := NewClient(srv.URL, upstream.NewClient(upstream.Config{}))

	res, err := c.Subject(context.Background(), "Science  Fiction", SubjectOptions{Limit: 10, Sort: "editions"})
	require.NoError(t, err)
	assert.Equal(t, "/subjects/science_fiction.json", gotPath)
	assert.Empty(t, gotSort)
	assert.Equal(t, "Science  Fiction", res.Name)
	assert.Equal(t, 2, res.WorkCount)

	_, err = c.Subject(context.Background(), "fantasy", SubjectOptions{Sort: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", gotSort)
}

func TestNormalizePeriod(t *testing.T) {
	assert.Equal(t, "weekly", NormalizePeriod("weekly"))
	assert.Equal(t, "daily", NormalizePeriod(""))
	assert.Equal(t, "daily", NormalizePeriod("forever"))
}
