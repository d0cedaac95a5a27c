package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	md "github.com/perpusid/circulation-service/pkg/middleware"
)

func TestRequestLoggerConfig_UsesInjectedLogger(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(md.RequestLoggerConfig(log)))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	r := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "/ping", entries[0].ContextMap()["URI"])
	require.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
}
