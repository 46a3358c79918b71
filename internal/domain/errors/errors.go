package errors

import (
	"net/http"

	"mutuals/internal/errors"
)

// Kind classifies failures for callers that need to react differently to them.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindPreconditionFailed
	KindConflict
	KindStoreUnavailable
	KindNotifierFailure
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPreconditionFailed:
		return "precondition_failed"
	case KindConflict:
		return "conflict"
	case KindStoreUnavailable:
		return "store_unavailable"
	case KindNotifierFailure:
		return "notifier_failure"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Is matches errors sharing the same business code, so WithDetails copies
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

func (e *BaseError) Kind() Kind {
	return e.kind
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"找不到該使用者資料",
		"",
	)

	ErrProfileNotRegistered = NewBaseError(
		KindNotFound,
		http.StatusForbidden,
		"PROFILE_NOT_REGISTERED",
		"尚未完成註冊",
		"",
	)

	// Like-related errors
	ErrSelfLike = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"SELF_LIKE",
		"無法對自己按讚",
		"",
	)

	ErrPhoneRequired = NewBaseError(
		KindPreconditionFailed,
		http.StatusPreconditionFailed,
		"PHONE_REQUIRED",
		"請先設定手機號碼",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_PHONE",
		"無效的手機號碼",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"無效的 QR Code",
		"",
	)

	// Authentication-related errors
	ErrSessionInvalid = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"無效或已過期的登入憑證",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// StoreUnavailableError represents a failed store round-trip, implementing the AppError interface
type StoreUnavailableError struct {
	err     error
	details string
}

// NewStoreUnavailableError creates a store-related error
func NewStoreUnavailableError(err error, details string) AppError {
	return &StoreUnavailableError{
		err:     err,
		details: details,
	}
}

func (e *StoreUnavailableError) Error() string {
	return errors.Wrap(e.err, "store unavailable: "+e.details).Error()
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}

func (e *StoreUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

func (e *StoreUnavailableError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

func (e *StoreUnavailableError) Message() string {
	return "資料存取暫時無法使用"
}

func (e *StoreUnavailableError) Details() string {
	return e.details
}

func (e *StoreUnavailableError) Kind() Kind {
	return KindStoreUnavailable
}

// NotifierError represents a failed best-effort side channel (SMS, notification append)
type NotifierError struct {
	err     error
	details string
}

// NewNotifierError creates a notifier-related error
func NewNotifierError(err error, details string) AppError {
	return &NotifierError{
		err:     err,
		details: details,
	}
}

func (e *NotifierError) Error() string {
	return errors.Wrap(e.err, "notifier failed: "+e.details).Error()
}

func (e *NotifierError) Unwrap() error {
	return e.err
}

func (e *NotifierError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *NotifierError) ErrorCode() string {
	return "NOTIFIER_FAILED"
}

func (e *NotifierError) Message() string {
	return "通知發送失敗"
}

func (e *NotifierError) Details() string {
	return e.details
}

func (e *NotifierError) Kind() Kind {
	return KindNotifierFailure
}

// KindOf returns the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}
