package logger

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

const ContextKey = "logger"

type contextKey struct{}

// Middleware attaches a request scoped logger to the fiber locals and to the
// user context handed to services.
func Middleware(logger *zap.SugaredLogger) func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		log := logger.With(
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
		)

		requestId, ok := ctx.Locals(requestid.ConfigDefault.ContextKey).(string)
		if ok && requestId != "" {
			log = log.With(zap.String("requestId", requestId))
		}

		ctx.Locals(ContextKey, log)
		ctx.SetUserContext(InjectContext(ctx.UserContext(), log))
		return ctx.Next()
	}
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		logger, isOk := ctx.Value(contextKey{}).(*zap.SugaredLogger)
		if isOk {
			return logger
		}
	}

	return zap.NewNop().Sugar()
}

func FromFiberContext(ctx *fiber.Ctx) *zap.SugaredLogger {
	logger, isOk := ctx.Locals(ContextKey).(*zap.SugaredLogger)
	if isOk {
		return logger
	}

	return FromContext(ctx.UserContext())
}

func InjectContext(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}
