package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAPIKeyMiddleware(t *testing.T) {
	router := newTestRouter(t, "secret")

	t.Run("missing key", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/words", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, resp.Success)
	})

	t.Run("wrong key", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/api/v1/words", nil)
		require.NoError(t, err)
		req.Header.Set("X-API-Key", "not-the-key")

		rec := serve(router, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct key", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/api/v1/words", nil)
		require.NoError(t, err)
		req.Header.Set("X-API-Key", "secret")

		rec := serve(router, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health stays unprotected", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
	})
}

func TestAPIKeyMiddleware_Disabled(t *testing.T) {
	router := newTestRouter(t, "")

	rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/words", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}
