// Package response writes the JSON envelope every API endpoint answers with.
package response

import (
	"fmt"
	"net/http"

	deliverycontext "harvest/internal/delivery/context"
	domainerrors "harvest/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope is the body of every JSON response. Exactly one of Data and Error is set.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  MetaInfo   `json:"meta"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo carries the request id so clients can quote it in support requests.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success writes data with statusCode.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{Data: data, Meta: meta(c)})
}

// OK writes data with 200.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created writes data with 201.
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Attachment streams a generated file such as a farm order export.
func Attachment(c echo.Context, contentType, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, contentType, data)
}

// Error writes an error envelope. Details never leave the server on 5xx, 401 or 403.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, Envelope{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func BindingError(c echo.Context, errorCode, message string) error {
	return BadRequest(c, errorCode, message)
}

func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func Conflict(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// ValidationError writes a 400 carrying the validator's field messages.
func ValidationError(c echo.Context, err error) error {
	return WriteAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
}

// WriteAppError renders a domain error with its own status, code and message.
func WriteAppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError renders domain errors. Anything else is returned for the
// central error handler to log and mask.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return WriteAppError(c, appErr)
	}

	return errors.WithStack(err)
}

func meta(c echo.Context) MetaInfo {
	return MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
