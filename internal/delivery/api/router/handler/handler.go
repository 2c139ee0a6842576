// Package handler contains the echo handlers of the public API.
package handler

import (
	"net/http"

	"harvest/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseIDParam parses a UUID path parameter, writing a 400 when it is malformed.
func parseIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = response.BadRequest(c, "INVALID_ID", "Invalid "+name)

		return uuid.Nil, false
	}

	return id, true
}

// bindAndValidate decodes the body into req and runs struct validation, writing a 400 on failure.
func bindAndValidate(c echo.Context, req any) bool {
	if err := c.Bind(req); err != nil {
		_ = response.BindingError(c, "INVALID_INPUT", "Invalid request body")

		return false
	}
	if err := c.Validate(req); err != nil {
		_ = response.ValidationError(c, err)

		return false
	}

	return true
}
