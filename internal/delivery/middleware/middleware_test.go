package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lowkey/config"
	deliverycontext "lowkey/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(logger *slog.Logger, debug bool) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	e := newTestEcho(slog.New(slog.DiscardHandler), false)
	e.GET("/ping", func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, deliverycontext.GetRequestID(c), deliverycontext.GetRequestIDFromContext(ctx))
		assert.NotNil(t, deliverycontext.GetLogger(ctx))

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(ctx))
	})

	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{name: "client id is kept", header: "req-abc-123", reuse: true},
		{name: "missing id is generated", header: ""},
		{name: "overlong id is replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "control characters are replaced", header: "evil\tid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, rec.Body.String())
			if tt.reuse {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	e := newTestEcho(logger, false)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/teapot", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "short and stout") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teapot", nil))
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"route":"/teapot"`)
}

func TestLoggerMiddleware_DebugLogsEverything(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	e := newTestEcho(logger, true)
	e.GET("/offers/:name", func(c echo.Context) error {
		deliverycontext.SetSeller(c, "seller-9", []string{"seller"})

		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/offers/kettle?x=1", nil))

	out := buf.String()
	assert.Contains(t, out, `"route":"/offers/:name"`)
	assert.Contains(t, out, `"seller_id":"seller-9"`)
	assert.Contains(t, out, `"query":"x=1"`)
	assert.Contains(t, out, `"level":"INFO"`)
}
