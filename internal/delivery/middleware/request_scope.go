package middleware

import (
	"log/slog"

	deliverycontext "harvest/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Client supplied ids longer than this are replaced.
const maxRequestIDLength = 64

// RequestScopeMiddleware assigns every request an id and a logger tagged with it
type RequestScopeMiddleware struct {
	logger *slog.Logger
}

// NewRequestScopeMiddleware is the constructor for RequestScopeMiddleware
func NewRequestScopeMiddleware(logger *slog.Logger) *RequestScopeMiddleware {
	return &RequestScopeMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id from the client or generates one.
func (m *RequestScopeMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequest(c.Request().Context(), requestID, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// validRequestID accepts short printable ASCII ids, so the value is safe to log and echo.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
