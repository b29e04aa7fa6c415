package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePool struct {
	err error
}

func (f *fakePool) Ping(ctx context.Context) error { return f.err }

func (f *fakePool) Close() {}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Database reachable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(&fakePool{})(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Database down", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(&fakePool{err: errors.New("connection refused")})(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Memory backend has no pool", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(nil)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
