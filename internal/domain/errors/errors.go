package errors

import (
	"net/http"

	"rewards/internal/errors"
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

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so errors.Is keeps
// working on copies produced by WithDetails.
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
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Offer and claim errors
	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"Offer not found",
		"",
	)

	ErrOfferExpired = NewBaseError(
		http.StatusUnprocessableEntity,
		"OFFER_EXPIRED",
		"Offer is not available at this time",
		"",
	)

	ErrSoldOut = NewBaseError(
		http.StatusUnprocessableEntity,
		"SOLD_OUT",
		"Offer is sold out",
		"",
	)

	ErrClaimNotFound = NewBaseError(
		http.StatusNotFound,
		"CLAIM_NOT_FOUND",
		"Claim not found",
		"",
	)

	ErrGateway = NewBaseError(
		http.StatusUnprocessableEntity,
		"GATEWAY_ERROR",
		"Payment gateway is unavailable, please try again",
		"",
	)

	ErrVoucherNotFound = NewBaseError(
		http.StatusNotFound,
		"VOUCHER_NOT_FOUND",
		"Voucher not found",
		"",
	)

	// Redemption errors
	ErrInvalidCode = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_CODE",
		"Invalid redeem code",
		"",
	)

	ErrAlreadyRedeemed = NewBaseError(
		http.StatusUnprocessableEntity,
		"ALREADY_REDEEMED",
		"Offer already redeemed",
		"",
	)

	ErrInsufficientQuantity = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_QUANTITY",
		"Requested quantity exceeds the redeemable quantity",
		"",
	)

	ErrClaimNotRedeemable = NewBaseError(
		http.StatusUnprocessableEntity,
		"CLAIM_NOT_REDEEMABLE",
		"Claim cannot be redeemed",
		"",
	)

	// Ledger errors
	ErrInsufficientBalance = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_BALANCE",
		"Insufficient balance",
		"",
	)

	ErrInvalidAmount = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_AMOUNT",
		"Amount must be positive",
		"",
	)

	ErrComponentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPONENT_NOT_FOUND",
		"Point component not found",
		"",
	)

	ErrRecipeNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		"Recipe not found",
		"",
	)

	// Mission errors
	ErrMissionNotFound = NewBaseError(
		http.StatusNotFound,
		"MISSION_NOT_FOUND",
		"Mission not found",
		"",
	)

	ErrAlreadyAutoDisbursed = NewBaseError(
		http.StatusUnprocessableEntity,
		"ALREADY_AUTO_DISBURSED",
		"Mission rewards are disbursed automatically",
		"",
	)

	ErrMissionNotCompleted = NewBaseError(
		http.StatusUnprocessableEntity,
		"MISSION_NOT_COMPLETED",
		"Mission is not completed yet",
		"",
	)

	ErrRewardAlreadyClaimed = NewBaseError(
		http.StatusUnprocessableEntity,
		"REWARD_ALREADY_CLAIMED",
		"Mission reward already claimed",
		"",
	)

	ErrMissionNotRearmable = NewBaseError(
		http.StatusUnprocessableEntity,
		"MISSION_NOT_REARMABLE",
		"Only accumulated missions can be re-armed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
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

// Unwrap exposes the driver error.
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
