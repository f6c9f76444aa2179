package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPServer(t *testing.T) {
	srv := NewHTTPServer(HTTPConfig{
		Port:           1234,
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second,
		WriteTimeout:   2 * time.Second,
		IdleTimeout:    3 * time.Second,
		ReadHeader:     4 * time.Second,
	}, http.NotFoundHandler())

	assert.Equal(t, ":1234", srv.Addr)
	assert.Equal(t, 1<<20, srv.MaxHeaderBytes)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
	assert.Equal(t, 3*time.Second, srv.IdleTimeout)
	assert.Equal(t, 4*time.Second, srv.ReadHeaderTimeout)
}

func TestNewChiRouter_Instrumented(t *testing.T) {
	mux := NewChiRouter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mux.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Instrument(mux, "test")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, rr.Body.String())
}
