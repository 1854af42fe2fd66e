package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewError builds an error whose message is safe to show to clients. Log fields
// stay on the server side.
func NewError(httpStatusCode int, message string, logFields ...zap.Field) *CustomError {
	severity := zapcore.ErrorLevel
	if httpStatusCode < fiber.StatusInternalServerError {
		severity = zapcore.WarnLevel
	}

	return &CustomError{
		HttpStatusCode: httpStatusCode,
		Message:        message,
		LogMessage:     message,
		LogSeverity:    severity,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}

func (cerr *CustomError) SetLogMessage(logMessage string) *CustomError {
	cerr.LogMessage = logMessage
	return cerr
}

func (cerr *CustomError) Wrap(cause error) *CustomError {
	cerr.cause = cause
	if cause != nil {
		cerr.LogFields = append(cerr.LogFields, zap.Error(cause))
	}

	return cerr
}

func BadRequest(message string, logFields ...zap.Field) *CustomError {
	return NewError(fiber.StatusBadRequest, message, logFields...)
}

func Unauthorized(message string, logFields ...zap.Field) *CustomError {
	return NewError(fiber.StatusUnauthorized, message, logFields...)
}

func Forbidden(message string, logFields ...zap.Field) *CustomError {
	return NewError(fiber.StatusForbidden, message, logFields...)
}

func NotFound(message string, logFields ...zap.Field) *CustomError {
	return NewError(fiber.StatusNotFound, message, logFields...)
}

func NotAcceptable(message string, logFields ...zap.Field) *CustomError {
	return NewError(fiber.StatusNotAcceptable, message, logFields...)
}

func Conflict(message string, logFields ...zap.Field) *CustomError {
	return NewError(fiber.StatusConflict, message, logFields...)
}

// Gone signals that the access token expired while a valid refresh token is
// still available; the client is expected to call the refresh endpoint.
func Gone(message string, logFields ...zap.Field) *CustomError {
	return NewError(fiber.StatusGone, message, logFields...).SetSeverity(zapcore.InfoLevel)
}

func UnprocessableEntity(message string, logFields ...zap.Field) *CustomError {
	return NewError(fiber.StatusUnprocessableEntity, message, logFields...)
}

func Internal(message string, logFields ...zap.Field) *CustomError {
	return NewError(fiber.StatusInternalServerError, message, logFields...)
}

func HasStatus(err error, httpStatusCode int) bool {
	var cerr *CustomError
	if !errors.As(err, &cerr) {
		return false
	}

	return cerr.HttpStatusCode == httpStatusCode
}
