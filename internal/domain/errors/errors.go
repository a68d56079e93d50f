package errors

import (
	"net/http"

	"inador/internal/errors"
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
	return e.message
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
	// Gate/session errors
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"此操作需要先完成 Google 登入",
		"",
	)

	ErrVerificationFailed = NewBaseError(
		http.StatusUnauthorized,
		"VERIFICATION_FAILED",
		"需要 Google 登入才能使用本服務",
		"",
	)

	ErrVerificationCancelled = NewBaseError(
		http.StatusUnauthorized,
		"VERIFICATION_CANCELLED",
		"登入已取消，請重新嘗試並完成 Google 登入",
		"",
	)

	// Credit errors
	ErrInsufficientCredits = NewBaseError(
		http.StatusPaymentRequired,
		"INSUFFICIENT_CREDITS",
		"點數不足，無法執行此操作",
		"",
	)

	ErrPersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"資料儲存失敗，請稍後再試",
		"",
	)

	ErrStarterBonusUnavailable = NewBaseError(
		http.StatusConflict,
		"STARTER_BONUS_UNAVAILABLE",
		"目前沒有可領取的 Starter 點數",
		"",
	)

	// Payment processor errors
	ErrInvalidSignature = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SIGNATURE",
		"Webhook 簽章驗證失敗",
		"",
	)

	ErrMissingIdentity = NewBaseError(
		http.StatusOK,
		"MISSING_IDENTITY",
		"無法辨識付款對應的帳號",
		"",
	)

	ErrNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"NOT_CONFIGURED",
		"金流服務尚未設定",
		"",
	)

	ErrMissingProduct = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PRODUCT",
		"缺少商品代碼",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
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

// VerificationMessage maps a categorized interactive-auth failure to the
// user-facing message shown for it. Unknown reasons fall back to the generic
// "verification required" message.
func VerificationMessage(reason string) *BaseError {
	switch reason {
	case "unauthorized-domain":
		return verificationError(reason, "網域未獲授權，請將本站網域加入認證供應商的授權清單")
	case "popup-blocked":
		return verificationError(reason, "彈出視窗遭到封鎖，請允許彈出視窗後再試一次")
	case "popup-closed-by-user":
		return NewBaseError(
			http.StatusUnauthorized,
			"VERIFICATION_CANCELLED",
			ErrVerificationCancelled.Message(),
			reason,
		)
	case "operation-not-allowed":
		return verificationError(reason, "Google 登入功能已停用，請聯絡管理員")
	case "invalid-api-key":
		return verificationError(reason, "API 金鑰無效，請檢查認證設定")
	case "network-request-failed":
		return verificationError(reason, "網路連線異常，請檢查網路後再試一次")
	default:
		return verificationError(reason, ErrVerificationFailed.Message())
	}
}

func verificationError(reason, message string) *BaseError {
	return NewBaseError(http.StatusUnauthorized, "VERIFICATION_FAILED", message, reason)
}
