package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"harvest/internal/delivery/api/response"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/service"
	"harvest/internal/infra/cache"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	// HeaderIdempotencyKey is the request header clients use to make a mutation safe to retry.
	HeaderIdempotencyKey = "Idempotency-Key"
	// HeaderIdempotentReplayed marks a response served from the idempotency store.
	HeaderIdempotentReplayed = "Idempotent-Replayed"

	maxIdempotencyKeyLength = 128
)

// IdempotencyMiddleware replays the stored response for a repeated Idempotency-Key.
type IdempotencyMiddleware struct {
	store    service.IdempotencyStore
	settings cache.IdempotencySettings
	logger   *slog.Logger
}

// IdempotencyMiddlewareParams holds dependencies for IdempotencyMiddleware, injected by Fx.
type IdempotencyMiddlewareParams struct {
	fx.In

	Store    service.IdempotencyStore `optional:"true"`
	Settings cache.IdempotencySettings
	Logger   *slog.Logger
}

// NewIdempotencyMiddleware creates the middleware. A nil store turns it into a pass-through.
func NewIdempotencyMiddleware(params IdempotencyMiddlewareParams) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{
		store:    params.Store,
		settings: params.Settings,
		logger:   params.Logger,
	}
}

// Handle applies to unsafe methods carrying an Idempotency-Key header.
func (m *IdempotencyMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		key := req.Header.Get(HeaderIdempotencyKey)
		if m.store == nil || key == "" || isSafeMethod(req.Method) {
			return next(c)
		}
		if len(key) > maxIdempotencyKeyLength {
			return response.BadRequest(c, "INVALID_IDEMPOTENCY_KEY", "Idempotency-Key is too long")
		}

		ctx := req.Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
		scoped := scopeIdempotencyKey(c, key)

		cached, err := m.store.Get(ctx, scoped)
		if err != nil {
			logger.Warn("Idempotency lookup failed, processing request normally", slog.Any("error", err))

			return next(c)
		}
		if cached != nil {
			c.Response().Header().Set(HeaderIdempotentReplayed, "true")

			return c.Blob(cached.StatusCode, cached.ContentType, cached.Body)
		}

		acquired, err := m.store.Acquire(ctx, scoped, m.settings.LockTTL)
		if err != nil {
			logger.Warn("Idempotency claim failed, processing request normally", slog.Any("error", err))

			return next(c)
		}
		if !acquired {
			return response.Conflict(c, "IDEMPOTENCY_IN_PROGRESS", "相同的 Idempotency-Key 請求正在處理中")
		}

		var body []byte
		dump := echomiddleware.BodyDump(func(_ echo.Context, _, resBody []byte) {
			body = resBody
		})

		handlerErr := dump(next)(c)

		// Storage must outlive a canceled client request.
		storeCtx := context.WithoutCancel(ctx)
		status := c.Response().Status
		if handlerErr != nil || status >= http.StatusInternalServerError {
			if err := m.store.Release(storeCtx, scoped); err != nil {
				logger.Warn("Failed to release idempotency key", slog.Any("error", err))
			}

			return handlerErr
		}

		resp := &service.IdempotentResponse{
			StatusCode:  status,
			ContentType: c.Response().Header().Get(echo.HeaderContentType),
			Body:        body,
		}
		if err := m.store.Save(storeCtx, scoped, resp, m.settings.ResponseTTL); err != nil {
			logger.Warn("Failed to store idempotent response", slog.Any("error", err))
		}

		return nil
	}
}

func isSafeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// scopeIdempotencyKey binds a client key to the caller and the resolved request path, so a key
// reused for another user or another resource id is a different request.
func scopeIdempotencyKey(c echo.Context, key string) string {
	caller := "anonymous"
	if actor := deliverycontext.GetActor(c); actor != nil {
		caller = actor.UserID.String()
	}

	return caller + ":" + c.Request().Method + ":" + c.Request().URL.Path + ":" + key
}
