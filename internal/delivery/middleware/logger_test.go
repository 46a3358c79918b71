package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mutuals/config"
	deliverycontext "mutuals/internal/delivery/context"
	"mutuals/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	userID := uuid.New()
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/v1/search", func(c echo.Context) error {
		deliverycontext.SetSession(c, &usecase.Session{ExternalID: "uid", UserID: userID})

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=secret%20name", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP request", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "/api/v1/search", line["route"])
	assert.Equal(t, userID.String(), line["user_id"])
	assert.EqualValues(t, 11, line["query_length"])
	assert.NotContains(t, buf.String(), "secret")
}

func TestLoggerMiddleware_DisabledWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())
}
