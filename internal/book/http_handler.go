package book

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"bookspark/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type resolveRequest struct {
	OpenLibraryKey string `json:"openLibraryKey" validate:"required,work_key"`
}

type previewResponse struct {
	Book
	FromOpenLibrary bool `json:"from_open_library"`
}

// Lookup handles GET /v1/books?openLibraryKey=OL45804W
// @Summary Preview a book by Open Library key
// @Description Returns the stored book, or a freshly assembled one that is not saved
// @Tags books
// @Produce json
// @Param openLibraryKey query string true "Open Library work key"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books [get]
func (h *HTTPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(r.URL.Query().Get("openLibraryKey"))
	if key == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "openLibraryKey is required", nil)
		return
	}
	if details := httpx.ValidateStruct(resolveRequest{OpenLibraryKey: key}); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	b, stored, err := h.service.Preview(r.Context(), key)
	if err != nil {
		writeBookError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, previewResponse{Book: b, FromOpenLibrary: !stored}, nil)
}

// Resolve handles POST /v1/books
// @Summary Resolve and store a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books [post]
func (h *HTTPHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.service.ResolveOrFetch(r.Context(), req.OpenLibraryKey)
	if err != nil {
		writeBookError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Get handles GET /v1/books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeBookError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// List handles GET /v1/books/resolved
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	books, next, err := h.service.List(r.Context(), Query{
		Genre:  strings.TrimSpace(query.Get("genre")),
		Cursor: query.Get("cursor"),
		Limit:  limit,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCursor) {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid cursor", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.JSONSuccess(w, r, books, map[string]any{
		"limit":       limit,
		"next_cursor": next,
		"has_more":    next != "",
	})
}

func writeBookError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
