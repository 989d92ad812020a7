package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookspark/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

func intParam(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}

type searchParams struct {
	OrderBy string `json:"orderBy" validate:"omitempty,oneof=relevance newest"`
}

// Search handles GET /v1/books/search
// @Summary Search books
// @Description Search Open Library, falling back to Google Books
// @Tags catalog
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Offset" default(0)
// @Param orderBy query string false "relevance or newest" default(relevance)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/books/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := searchParams{OrderBy: r.URL.Query().Get("orderBy")}
	if details := httpx.ValidateStruct(params); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	res, err := h.svc.Search(r.Context(), SearchQuery{
		Q:       r.URL.Query().Get("q"),
		Limit:   intParam(r, "limit"),
		Offset:  intParam(r, "offset"),
		OrderBy: params.OrderBy,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}

// Trending handles GET /v1/books/trending
// @Summary Trending books
// @Tags catalog
// @Produce json
// @Param period query string false "daily, weekly, monthly or yearly" default(daily)
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/books/trending [get]
func (h *HTTPHandler) Trending(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.Trending(r.Context(), r.URL.Query().Get("period"), intParam(r, "limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"books": books, "total": len(books)}, nil)
}

type categoryParams struct {
	Sort string `json:"sort" validate:"omitempty,oneof=editions old new rating"`
}

// Category handles GET /v1/books/category
// @Summary Browse a subject
// @Description Without a category the curated subject list is returned
// @Tags catalog
// @Produce json
// @Param category query string false "Subject name"
// @Param sort query string false "editions, old, new or rating"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/category [get]
func (h *HTTPHandler) Category(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	subject := strings.TrimSpace(query.Get("category"))
	if subject == "" {
		httpx.JSONSuccess(w, r, map[string]any{"categories": h.svc.Subjects()}, nil)
		return
	}

	params := categoryParams{Sort: query.Get("sort")}
	if details := httpx.ValidateStruct(params); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	res, err := h.svc.Category(r.Context(), CategoryQuery{
		Subject: subject,
		Limit:   intParam(r, "limit"),
		Offset:  intParam(r, "offset"),
		Sort:    params.Sort,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}

type isbnParams struct {
	ISBN string `json:"isbn" validate:"required,isbn"`
}

// LookupISBN handles GET /v1/isbn/{isbn}
// @Summary Look up a book by ISBN
// @Tags catalog
// @Produce json
// @Param isbn path string true "ISBN-10 or ISBN-13"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/isbn/{isbn} [get]
func (h *HTTPHandler) LookupISBN(w http.ResponseWriter, r *http.Request) {
	params := isbnParams{ISBN: r.PathValue("isbn")}
	if details := httpx.ValidateStruct(params); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	isbn := strings.NewReplacer("-", "", " ", "").Replace(params.ISBN)
	b, err := h.svc.LookupISBN(r.Context(), isbn)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Volume handles GET /v1/volumes/{id}
// @Summary Get a Google Books volume
// @Description Resolves books whose key came from a Google Books search
// @Tags catalog
// @Produce json
// @Param id path string true "Google Books volume id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/volumes/{id} [get]
func (h *HTTPHandler) Volume(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Volume(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Covers handles GET /v1/covers
// @Summary Cover URL candidates
// @Description Ranked cover URLs for ISBNs and an Open Library cover id
// @Tags covers
// @Produce json
// @Param isbn query []string false "ISBNs, repeated or comma separated"
// @Param coverId query int false "Open Library cover id"
// @Param size query string false "S, M or L" default(L)
// @Param validate query bool false "Probe candidates and report the first real image"
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/covers [get]
func (h *HTTPHandler) Covers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var isbns []string
	for _, v := range query["isbn"] {
		for _, isbn := range strings.Split(v, ",") {
			if isbn = strings.TrimSpace(isbn); isbn != "" {
				isbns = append(isbns, isbn)
			}
		}
	}
	validate, _ := strconv.ParseBool(query.Get("validate"))

	res, err := h.svc.Covers(r.Context(), CoverQuery{
		ISBNs:    isbns,
		CoverID:  intParam(r, "coverId"),
		Size:     query.Get("size"),
		Validate: validate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrEmptyQuery):
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Query parameter q is required", nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
	default:
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "Upstream service unavailable", nil)
	}
}
