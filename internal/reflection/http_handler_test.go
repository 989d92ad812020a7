package reflection

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookspark/internal/httpx"
)

func TestHTTPHandler_Question(t *testing.T) {
	handler := NewHTTPHandler(NewSelector(nil, nil))

	t.Run("success", func(t *testing.T) {
		body := `{"bookTitle": "Dune", "genres": ["Science Fiction"], "chapterNumber": 40, "totalChapters": 48}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/reflections/question", strings.NewReader(body))

		handler.Question(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Success bool             `json:"success"`
			Data    questionResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Dune", resp.Data.BookTitle)
		assert.NotEmpty(t, resp.Data.Question)
		assert.NotEmpty(t, resp.Data.Context)
	})

	t.Run("invalid json", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/reflections/question", strings.NewReader("{"))

		handler.Question(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative chapter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/reflections/question", strings.NewReader(`{"chapterNumber": -1}`))

		handler.Question(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp httpx.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "chapterNumber", resp.Error.Details[0].Field)
	})
}
