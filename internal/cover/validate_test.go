package cover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		switch r.URL.Path {
		case "/real.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			w.Header().Set("Content-Length", "48213")
		case "/placeholder.jpg":
			w.Header().Set("Content-Type", "image/gif")
			w.Header().Set("Content-Length", "43")
		case "/html":
			w.Header().Set("Content-Type", "text/html")
			w.Header().Set("Content-Length", "5000")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestValidator_Valid(t *testing.T) {
	srv := newImageServer(t)
	v := NewValidator(srv.Client(), "", nil)
	ctx := context.Background()

	assert.True(t, v.Valid(ctx, srv.URL+"/real.jpg"))
	assert.False(t, v.Valid(ctx, srv.URL+"/placeholder.jpg"))
	assert.False(t, v.Valid(ctx, srv.URL+"/html"))
	assert.False(t, v.Valid(ctx, srv.URL+"/missing.jpg"))
	assert.False(t, v.Valid(ctx, "http://127.0.0.1:0/unreachable.jpg"))
}

func TestValidator_FirstValid(t *testing.T) {
	srv := newImageServer(t)
	v := NewValidator(srv.Client(), "", nil)
	ctx := context.Background()

	got, err := v.FirstValid(ctx, []string{
		srv.URL + "/missing.jpg",
		srv.URL + "/placeholder.jpg",
		srv.URL + "/real.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/real.jpg", got)

	_, err = v.FirstValid(ctx, []string{srv.URL + "/placeholder.jpg"})
	assert.ErrorIs(t, err, ErrNoValidCover)

	_, err = v.FirstValid(ctx, nil)
	assert.ErrorIs(t, err, ErrNoValidCover)
}
