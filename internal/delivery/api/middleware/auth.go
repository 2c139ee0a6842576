package middleware

import (
	"strings"

	"harvest/internal/delivery/api/response"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller as an entity.Actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		actor, ok := m.parse(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// OptionalAuthenticate attaches the caller when a valid token is present and lets anonymous requests through.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		actor, ok := m.parse(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

func (m *AuthMiddleware) parse(authHeader string) (*entity.Actor, bool) {
	tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || tokenString == "" {
		return nil, false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, false
	}

	return entity.NewActor(claims.UserID, claims.Roles), true
}

// RequireRole is a middleware factory that checks if the user has one of the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := deliverycontext.GetActor(c)
			if actor == nil {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
			}

			for _, role := range roles {
				if actor.HasRole(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "UNAUTHORIZED", "Permission denied: missing required role")
		}
	}
}
