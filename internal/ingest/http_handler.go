package ingest

import (
	"crypto/subtle"
	"net/http"

	"bookspark/internal/httpx"
)

type HTTPHandler struct {
	svc    *Service
	secret string
}

func NewHTTPHandler(svc *Service, secret string) *HTTPHandler {
	return &HTTPHandler{svc: svc, secret: secret}
}

type warmRequest struct {
	Subjects   []string `json:"subjects" validate:"max=50,dive,required,max=100"`
	PerSubject int      `json:"perSubject" validate:"gte=0,lte=1000"`
}

// Warm handles POST /internal/jobs/warm
// @Summary Warm the book cache
// @Description Resolve the works listed under the given subjects into the store
// @Tags internal
// @Accept json
// @Produce json
// @Param X-Internal-Secret header string true "Internal secret for authentication"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /internal/jobs/warm [post]
func (h *HTTPHandler) Warm(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get("X-Internal-Secret")
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.secret)) != 1 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid internal secret", nil)
		return
	}

	var req warmRequest
	if r.ContentLength != 0 {
		if !httpx.DecodeAndValidate(w, r, &req) {
			return
		}
	}

	run, err := h.svc.Run(r.Context(), req.Subjects, req.PerSubject)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INGEST_FAILED", err.Error(), nil)
		return
	}

	httpx.JSONSuccess(w, r, run, nil)
}
