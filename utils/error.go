package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Kind classifies an operation failure. Every state-changing and read
// operation fails fast with the most specific kind it can determine.
type Kind string

const (
	KindUnauthenticated  Kind = "unauthenticated"
	KindPermissionDenied Kind = "permission_denied"
	KindInvalidArgument  Kind = "invalid_argument"
	KindNotFound         Kind = "not_found"
	KindAlreadyExists    Kind = "already_exists"
	KindUnavailable      Kind = "unavailable"
	KindInternal         Kind = "internal"
)

// AppError carries a kind plus an operator-facing message. The user-facing
// message is derived from the kind at the transport edge.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// E builds an AppError with a plain message.
func E(kind Kind, message string) error {
	return &AppError{Kind: kind, Message: message}
}

// Ef builds an AppError with a formatted message.
func Ef(kind Kind, format string, args ...any) error {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, message string, err error) error {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, defaulting to Internal for errors that
// did not originate in this module.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// httpStatus maps each kind to its HTTP status.
func httpStatus(kind Kind) int {
	switch kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// userMessage maps each kind to the localized message shown to staff. The
// wording follows the original product copy.
func userMessage(kind Kind) string {
	switch kind {
	case KindUnauthenticated:
		return "يجب تسجيل الدخول أولاً"
	case KindPermissionDenied:
		return "ليس لديك صلاحية لهذا الإجراء"
	case KindInvalidArgument:
		return "بيانات غير صحيحة"
	case KindNotFound:
		return "السجل غير موجود"
	case KindAlreadyExists:
		return "البريد الإلكتروني مستخدم بالفعل"
	case KindUnavailable:
		return "الخدمة غير متاحة حالياً، حاول مرة أخرى"
	default:
		return "حدث خطأ غير متوقع"
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: userMessage(KindInternal),
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError writes the response for a classified error. Internal failures
// are logged with full context and surfaced with a generic message only.
func JSONError(c *gin.Context, err error) {
	logger := GetLogger()
	kind := KindOf(err)

	resp := ErrorResponse{Message: userMessage(kind)}
	if kind == KindInternal {
		logger.Error("internal error", zap.Error(err), zap.String("path", c.FullPath()))
	} else {
		logger.Warn("request failed", zap.String("kind", string(kind)), zap.Error(err))
		var appErr *AppError
		if errors.As(err, &appErr) {
			resp.Details = appErr.Message
		}
	}

	c.JSON(httpStatus(kind), resp)
}
