package controllers

import (
	"context"
	stderrors "errors"
	"io"
	"landmark-explorer/internal/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounter int

func (c fixedCounter) Count() int { return int(c) }

type brokenWriter struct {
	header http.Header
	code   int
}

func (w *brokenWriter) Header() http.Header {
	return w.header
}

func (w *brokenWriter) WriteHeader(code int) {
	w.code = code
}

func (w *brokenWriter) Write([]byte) (int, error) {
	return 0, stderrors.New("connection reset")
}

func TestHealthCheckBackendFailure(t *testing.T) {
	handler := HealthCheckHandler(fixedCounter(12), map[string]Pinger{
		"redis":    func(ctx context.Context) error { return nil },
		"database": func(ctx context.Context) error { return stderrors.New("down") },
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"Unreachable"`)
	assert.Contains(t, rec.Body.String(), `"landmarks":12`)
}

func TestHealthCheckLogsEncodeFailure(t *testing.T) {
	logger.Logger.SetOutput(io.Discard)
	hook := test.NewLocal(logger.Logger)
	defer hook.Reset()

	w := &brokenWriter{header: http.Header{}}
	HealthCheckHandler(fixedCounter(1), nil)(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Failed to encode health check response", entry.Message)
}
