package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fittrack-api/pkg/logger"
)

// Middleware is the fiber ErrorHandler of the application.
func Middleware(ctx *fiber.Ctx, err error) error {
	cerr := From(err)

	log := logger.FromContext(ctx.UserContext()).Desugar()
	if len(cerr.LogFields) > 0 {
		log = log.With(cerr.LogFields...)
	}
	log.Log(cerr.LogSeverity, cerr.LogMessage)

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return ctx.
		Status(cerr.HttpStatusCode).
		Send(cerr.SerializeCerror())
}

// From converts any error into a CustomError, hiding the details of unknown ones.
func From(err error) *CustomError {
	var cerr *CustomError
	if errors.As(err, &cerr) {
		return cerr
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return NewError(fiberErr.Code, fiberErr.Message).SetSeverity(zapcore.WarnLevel)
	}

	return Internal("internal server error", zap.Error(err))
}
