package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	origin    *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is reports whether target is the predefined error e was derived from via WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e == t || (e.origin != nil && e.origin == t)
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	origin := e
	if e.origin != nil {
		origin = e.origin
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		origin:    origin,
	}
}

// Predefined error types
var (
	// Ledger and catalog errors
	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"數量必須為正整數",
		"",
	)

	ErrInsufficientQuantity = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_QUANTITY",
		"可用數量不足",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"價格必須大於零",
		"",
	)

	ErrHarvestAlreadyRecorded = NewBaseError(
		http.StatusConflict,
		"HARVEST_ALREADY_RECORDED",
		"已記錄收成日期",
		"",
	)

	ErrCropNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該作物",
		"",
	)

	ErrPlantedCropNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該種植紀錄",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該商品",
		"",
	)

	// Farm-related errors
	ErrFarmNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該農場",
		"",
	)

	ErrFarmNotApproved = NewBaseError(
		http.StatusConflict,
		"FARM_NOT_APPROVED",
		"農場尚未通過審核",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"不允許的狀態轉換",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該訂單",
		"",
	)

	ErrFarmOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該農場訂單",
		"",
	)

	ErrInvalidDeliveryCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DELIVERY_CODE",
		"取貨碼錯誤",
		"",
	)

	ErrDeliveryCodeExpired = NewBaseError(
		http.StatusGone,
		"DELIVERY_CODE_EXPIRED",
		"取貨碼已過期",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusForbidden,
		"UNAUTHORIZED",
		"您沒有權限執行此操作",
		"",
	)

	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"請先登入",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
