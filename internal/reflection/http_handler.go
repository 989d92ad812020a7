package reflection

import (
	"net/http"

	"bookspark/internal/httpx"
)

type HTTPHandler struct {
	selector *Selector
}

func NewHTTPHandler(selector *Selector) *HTTPHandler {
	return &HTTPHandler{selector: selector}
}

type questionRequest struct {
	BookTitle     string   `json:"bookTitle" validate:"max=500"`
	Genres        []string `json:"genres" validate:"max=50,dive,max=200"`
	ChapterNumber *int     `json:"chapterNumber" validate:"omitempty,gte=0"`
	TotalChapters *int     `json:"totalChapters" validate:"omitempty,gte=0"`
}

type questionResponse struct {
	Question  string `json:"question"`
	Context   string `json:"context"`
	BookTitle string `json:"bookTitle,omitempty"`
}

// Question handles POST /v1/reflections/question
// @Summary Next reflection question
// @Description Pick a reflection prompt for the book's genres and reading progress
// @Tags reflections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/reflections/question [post]
func (h *HTTPHandler) Question(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	var progress *Progress
	if req.ChapterNumber != nil && req.TotalChapters != nil {
		progress = &Progress{Chapter: *req.ChapterNumber, Total: *req.TotalChapters}
	}

	q := h.selector.Next(req.Genres, progress)
	httpx.JSONSuccess(w, r, questionResponse{
		Question:  q.Question,
		Context:   q.Context,
		BookTitle: req.BookTitle,
	}, nil)
}
