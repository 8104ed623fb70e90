package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"", "verbose"} {
		logger, err := NewLogger(level)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	}

	logger, err := NewLogger("DEBUG")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	fallback := zap.NewExample()
	assert.Same(t, fallback, FromContext(context.Background(), fallback))
	assert.NotNil(t, FromContext(context.Background(), nil))

	scoped := zap.NewNop()
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx, fallback))
}

func TestRequestLoggerRecordsStatus(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	r := chi.NewRouter()
	r.Use(RequestLogger(zap.New(core)))
	r.Get("/api/{kind}", func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context(), nil).Info("handling")
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/plants", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "handling", entries[0].Message)
	completed := entries[1]
	assert.Equal(t, zapcore.WarnLevel, completed.Level)
	assert.Equal(t, "/api/{kind}", completed.ContextMap()["route"])
	assert.EqualValues(t, http.StatusTeapot, completed.ContextMap()["status"])
}
