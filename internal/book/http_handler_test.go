package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookspark/internal/httpx"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func TestHTTPHandler_Lookup(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		h := NewHTTPHandler(NewService(newMemStore(), nil, nil, Config{}, quietLogger))
		w := httptest.NewRecorder()
		h.Lookup(w, httptest.NewRequest(http.MethodGet, "/v1/books", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", decodeEnvelope(t, w).Error.Code)
	})

	t.Run("malformed key", func(t *testing.T) {
		h := NewHTTPHandler(NewService(newMemStore(), nil, nil, Config{}, quietLogger))
		w := httptest.NewRecorder()
		h.Lookup(w, httptest.NewRequest(http.MethodGet, "/v1/books?openLibraryKey=/authors/OL1A", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w).Error.Code)
	})

	t.Run("unstored work is previewed without saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		works := NewMockWorkSource(ctrl)
		expectExampleWork(works)
		store := newMemStore()

		h := NewHTTPHandler(NewService(store, works, nil, Config{}, quietLogger))
		w := httptest.NewRecorder()
		h.Lookup(w, httptest.NewRequest(http.MethodGet, "/v1/books?openLibraryKey=OL45804W", nil))

		require.Equal(t, http.StatusOK, w.Code)
		data := decodeEnvelope(t, w).Data
		var got previewResponse
		require.NoError(t, json.Unmarshal(data, &got))
		assert.True(t, got.FromOpenLibrary)
		assert.Equal(t, "Example Book", got.Title)
		assert.Equal(t, workKey, got.OpenLibraryKey)
		assert.Zero(t, store.inserts)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.Equal(t, true, fields["from_open_library"])
		assert.NotContains(t, fields, "fromOpenLibrary")
	})

	t.Run("stored work", func(t *testing.T) {
		store := newMemStore()
		store.byKey[workKey] = Book{ID: "book-1", OpenLibraryKey: workKey, Title: "Stored"}

		h := NewHTTPHandler(NewService(store, nil, nil, Config{}, quietLogger))
		w := httptest.NewRecorder()
		h.Lookup(w, httptest.NewRequest(http.MethodGet, "/v1/books?openLibraryKey=/works/OL45804W", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var got previewResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &got))
		assert.False(t, got.FromOpenLibrary)
		assert.Equal(t, "Stored", got.Title)
	})

	t.Run("unknown work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		works := NewMockWorkSource(ctrl)
		works.EXPECT().GetWork(gomock.Any(), "/works/OL1W").Return(nil, errors.New("404"))

		h := NewHTTPHandler(NewService(newMemStore(), works, nil, Config{}, quietLogger))
		w := httptest.NewRecorder()
		h.Lookup(w, httptest.NewRequest(http.MethodGet, "/v1/books?openLibraryKey=OL1W", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Resolve(t *testing.T) {
	t.Run("persists the book", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		works := NewMockWorkSource(ctrl)
		expectExampleWork(works)
		store := newMemStore()

		h := NewHTTPHandler(NewService(store, works, nil, Config{}, quietLogger))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/books", strings.NewReader(`{"openLibraryKey": "OL45804W"}`))
		h.Resolve(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var got Book
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &got))
		assert.Equal(t, "book-1", got.ID)
		assert.Equal(t, 1, store.inserts)
	})

	t.Run("validation", func(t *testing.T) {
		h := NewHTTPHandler(NewService(newMemStore(), nil, nil, Config{}, quietLogger))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/books", strings.NewReader(`{}`))
		h.Resolve(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp httpx.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "openLibraryKey", resp.Error.Details[0].Field)
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	const id = "3f6c8a52-2d1e-4b8f-9a51-0c7d2e4b6a10"

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockStore(ctrl)
		store.EXPECT().GetByID(gomock.Any(), id).Return(Book{ID: id, Title: "Dune"}, nil)

		h := NewHTTPHandler(NewService(store, nil, nil, Config{}, quietLogger))
		r := httptest.NewRequest(http.MethodGet, "/v1/books/"+id, nil)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockStore(ctrl)
		store.EXPECT().GetByID(gomock.Any(), id).Return(Book{}, ErrNotFound)

		h := NewHTTPHandler(NewService(store, nil, nil, Config{}, quietLogger))
		r := httptest.NewRequest(http.MethodGet, "/v1/books/"+id, nil)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non uuid never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewHTTPHandler(NewService(NewMockStore(ctrl), nil, nil, Config{}, quietLogger))
		r := httptest.NewRequest(http.MethodGet, "/v1/books/abc", nil)
		r.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		h.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockStore(ctrl)
		store.EXPECT().GetByID(gomock.Any(), id).Return(Book{}, errors.New("conn refused"))

		h := NewHTTPHandler(NewService(store, nil, nil, Config{}, quietLogger))
		r := httptest.NewRequest(http.MethodGet, "/v1/books/"+id, nil)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.Get(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_List(t *testing.T) {
	t.Run("passes filters and reports the next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockStore(ctrl)
		store.EXPECT().
			List(gomock.Any(), Query{Genre: "fantasy", Cursor: "abc", Limit: 20}).
			Return([]Book{{ID: "1"}}, "next", nil)

		h := NewHTTPHandler(NewService(store, nil, nil, Config{}, quietLogger))
		w := httptest.NewRecorder()
		h.List(w, httptest.NewRequest(http.MethodGet, "/v1/books/resolved?genre=fantasy&cursor=abc&limit=500", nil))

		require.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "next", env.Meta["next_cursor"])
		assert.Equal(t, true, env.Meta["has_more"])
	})

	t.Run("empty page is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, "", nil)

		h := NewHTTPHandler(NewService(store, nil, nil, Config{}, quietLogger))
		w := httptest.NewRecorder()
		h.List(w, httptest.NewRequest(http.MethodGet, "/v1/books/resolved", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, w).Data))
	})

	t.Run("bad cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, "", ErrInvalidCursor)

		h := NewHTTPHandler(NewService(store, nil, nil, Config{}, quietLogger))
		w := httptest.NewRecorder()
		h.List(w, httptest.NewRequest(http.MethodGet, "/v1/books/resolved?cursor=zzz", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
