package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shopapi/internal/handlers"
	"shopapi/pkg/lib/logger/slogdiscard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := handlers.RequestLogger(slogdiscard.NewDiscardLogger())(next)

	t.Run("generates id", func(t *testing.T) {
		ww := httptest.NewRecorder()
		h.ServeHTTP(ww, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, ww.Code)
		_, err := uuid.Parse(ww.Header().Get(handlers.RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(handlers.RequestIDHeader, "abc-123")
		ww := httptest.NewRecorder()
		h.ServeHTTP(ww, req)

		assert.Equal(t, "abc-123", ww.Header().Get(handlers.RequestIDHeader))
	})
}
