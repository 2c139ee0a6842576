package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "harvest/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestScopeMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id is reused", incoming: "checkout-7f3a", keep: true},
		{name: "missing id is generated"},
		{name: "oversized id is replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "id with spaces is replaced", incoming: "bad id"},
		{name: "non ascii id is replaced", incoming: "訂單-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestScopeMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestID(c)

				return c.NoContent(http.StatusNoContent)
			})(c)
			require.NoError(t, err)

			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				_, parseErr := uuid.Parse(seen)
				assert.NoError(t, parseErr)
			}
		})
	}
}
