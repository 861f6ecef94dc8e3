package book

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data       []Book `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

func newTestHandler(books []Book) *Handler {
	service := NewService(NewStore(books), discardLogger(), 100)
	return NewHandler(service)
}

func doRequest(t *testing.T, handler *Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, target, nil)
	handler.Routes().ServeHTTP(recorder, request)

	var body envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

/*
TestHandler_ListBooks checks the /all envelope shape and pagination.
*/
func TestHandler_ListBooks(t *testing.T) {
	handler := newTestHandler(sampleBooks())

	t.Run("defaults", func(t *testing.T) {
		recorder, body := doRequest(t, handler, "/all")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 3, body.Total)
		assert.Equal(t, 1, body.Page)
		assert.Equal(t, 100, body.Limit)
		assert.Equal(t, 1, body.TotalPages)
		assert.Len(t, body.Data, 3)
	})

	t.Run("second_page", func(t *testing.T) {
		_, body := doRequest(t, handler, "/all?limit=2&page=2")

		assert.Equal(t, 3, body.Total)
		assert.Equal(t, 2, body.TotalPages)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Le Petit Prince", body.Data[0].Name)
	})

	t.Run("page_beyond_range", func(t *testing.T) {
		recorder, body := doRequest(t, handler, "/all?limit=2&page=99")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, body.Data)
		assert.Equal(t, 3, body.Total, "total reports the full count even off the end")
		assert.Contains(t, recorder.Body.String(), `"data":[]`, "empty page is a JSON array, not null")
	})

	t.Run("astronomical_page_is_empty_not_500", func(t *testing.T) {
		recorder, body := doRequest(t, handler, "/all?page=4611686018427387903&limit=1000")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, body.Data)
		assert.Equal(t, 3, body.Total)
	})

	t.Run("invalid_params_fall_back", func(t *testing.T) {
		_, body := doRequest(t, handler, "/all?limit=zero&page=-3")

		assert.Equal(t, 1, body.Page)
		assert.Equal(t, 100, body.Limit)
	})
}

/*
TestHandler_SearchBooks checks filtering through the full HTTP path.
*/
func TestHandler_SearchBooks(t *testing.T) {
	handler := newTestHandler(sampleBooks())

	t.Run("single_filter", func(t *testing.T) {
		recorder, body := doRequest(t, handler, "/search?author=tolkien")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 1, body.Total)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "The Hobbit", body.Data[0].Name)
	})

	t.Run("and_semantics", func(t *testing.T) {
		_, body := doRequest(t, handler, "/search?author=rowling&language=french")
		assert.Equal(t, 0, body.Total)
		assert.Empty(t, body.Data)
	})

	t.Run("no_filters_equals_all", func(t *testing.T) {
		_, searchBody := doRequest(t, handler, "/search?limit=2&page=1")
		_, allBody := doRequest(t, handler, "/all?limit=2&page=1")

		assert.Equal(t, allBody, searchBody)
	})

	t.Run("unknown_params_ignored", func(t *testing.T) {
		recorder, body := doRequest(t, handler, "/search?frobnicate=yes")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 3, body.Total)
	})

	t.Run("no_matches_is_200", func(t *testing.T) {
		recorder, body := doRequest(t, handler, "/search?genre=horror")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 0, body.Total)
		assert.Equal(t, 0, body.TotalPages)
		assert.Empty(t, body.Data)
	})
}

/*
TestHandler_Idempotence: identical requests against the immutable store
return byte-identical envelopes.
*/
func TestHandler_Idempotence(t *testing.T) {
	handler := newTestHandler(sampleBooks())

	first, _ := doRequest(t, handler, "/search?language=english&limit=1&page=2")
	second, _ := doRequest(t, handler, "/search?language=english&limit=1&page=2")

	assert.Equal(t, first.Body.String(), second.Body.String())
}
