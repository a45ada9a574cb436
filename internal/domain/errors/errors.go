package errors

import (
	"net/http"

	"solarjuice/internal/errors"
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

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so errors
// produced by WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User and authentication errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"an account with this email already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email, password or role",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid access token",
		"",
	)

	ErrRoleNotAllowed = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_ALLOWED",
		"this role cannot be used here",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Shop and machine errors
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"shop not found",
		"",
	)

	ErrMachineNotFound = NewBaseError(
		http.StatusNotFound,
		"MACHINE_NOT_FOUND",
		"machine not found",
		"",
	)

	ErrNoSolarCharge = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_SOLAR_CHARGE",
		"the machine is not receiving any solar charge",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"the QR code does not identify a shop",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrInvalidOrderTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_ORDER_TRANSITION",
		"the order cannot move to the requested status",
		"",
	)

	ErrInsufficientBattery = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_BATTERY",
		"the machine battery cannot produce this many glasses",
		"",
	)

	// Registration errors
	ErrRegistrationNotFound = NewBaseError(
		http.StatusNotFound,
		"REGISTRATION_NOT_FOUND",
		"shop registration not found",
		"",
	)

	ErrRegistrationNotPending = NewBaseError(
		http.StatusConflict,
		"REGISTRATION_NOT_PENDING",
		"the shop registration has already been reviewed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"store transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// StoreExecuteError represents a failure inside the state store, implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "store execution failed").Error()
}

func (e *StoreExecuteError) Unwrap() error {
	return e.err
}

func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

func (e *StoreExecuteError) Message() string {
	return "store execution failed"
}

func (e *StoreExecuteError) Details() string {
	return e.details
}
