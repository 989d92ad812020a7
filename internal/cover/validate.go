package cover

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"bookspark/internal/platform/upstream"
)

var ErrNoValidCover = errors.New("no valid cover")

// MinImageBytes is the smallest declared size accepted as a real cover.
// Open Library answers missing covers with a tiny placeholder.
const MinImageBytes = 1000

// Validator probes candidate URLs with HEAD requests.
type Validator struct {
	client    upstream.Doer
	userAgent string
	logger    *slog.Logger
}

func NewValidator(client upstream.Doer, userAgent string, logger *slog.Logger) *Validator {
	if client == nil {
		client = http.DefaultClient
	}
	if userAgent == "" {
		userAgent = upstream.DefaultUserAgent
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{client: client, userAgent: userAgent, logger: logger}
}

// Valid reports whether url answers OK with an image content type and a
// declared length of at least MinImageBytes. An absent Content-Length is
// accepted. Any transport error counts as invalid.
func (v *Validator) Valid(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", v.userAgent)

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Debug("cover probe failed", "url", url, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return false
	}
	if resp.ContentLength >= 0 && resp.ContentLength < MinImageBytes {
		return false
	}
	return true
}

// FirstValid probes urls in order and returns the first that validates.
func (v *Validator) FirstValid(ctx context.Context, urls []string) (string, error) {
	for _, u := range urls {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if v.Valid(ctx, u) {
			return u, nil
		}
	}
	return "", ErrNoValidCover
}
