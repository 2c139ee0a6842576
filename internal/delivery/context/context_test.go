package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithRequest(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithRequest(context.Background(), "req-1", base)

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	logger := GetLoggerOrDefault(ctx, fallback)
	assert.NotSame(t, fallback, logger)
	assert.NotSame(t, base, logger)
}

func TestGetters_OutsideRequest(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	assert.Nil(t, GetActorFromContext(ctx))
}

func TestActor_VisibleToUseCases(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	actor := entity.NewActor(uuid.New(), []string{"consumer"})

	assert.Nil(t, GetActor(c))

	SetActor(c, actor)

	assert.Same(t, actor, GetActor(c))
	assert.Same(t, actor, GetActorFromContext(c.Request().Context()))
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	req = req.WithContext(WithRequest(req.Context(), "abc", logger))
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "abc", GetRequestID(c))
}
