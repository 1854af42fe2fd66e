package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/logger"
	"fittrack-api/pkg/server"
)

type handler struct {
	authService Service
	transport   CredentialTransport
	authorize   fiber.Handler
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Post("/v1/auth/login", h.Login)
	app.Post("/v1/auth/verify", h.VerifyEmail)
	app.Post("/v1/auth/refresh-token", h.RefreshToken)
	app.Post("/v1/auth/logout", h.Logout)
	app.Get("/v1/auth/profile", h.authorize, h.Profile)
}

func NewHandler(authService Service, transport CredentialTransport, authorize fiber.Handler) server.Handler {
	return &handler{
		authService: authService,
		transport:   transport,
		authorize:   authorize,
	}
}

func (h *handler) Login(ctx *fiber.Ctx) error {
	log := logger.FromFiberContext(ctx).With(zap.String("eventName", "login"))

	var payload LoginPayload
	err := server.ParseBody(ctx, &payload)
	if err != nil {
		return err
	}

	result, err := h.authService.Login(ctx.UserContext(), &payload)
	if err != nil {
		return err
	}

	h.transport.Issue(ctx, &result.Tokens)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Login successful",
			"data":    result,
		})
}

func (h *handler) VerifyEmail(ctx *fiber.Ctx) error {
	log := logger.FromFiberContext(ctx).With(zap.String("eventName", "verifyEmail"))

	var payload VerifyPayload
	err := server.ParseBody(ctx, &payload)
	if err != nil {
		return err
	}

	profile, err := h.authService.VerifyEmail(ctx.UserContext(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Email verified successfully",
			"data":    profile,
		})
}

// RefreshToken answers every verification failure with the same 403 so the
// client only learns that it has to sign in again.
func (h *handler) RefreshToken(ctx *fiber.Ctx) error {
	log := logger.FromFiberContext(ctx).With(zap.String("eventName", "refreshToken"))

	_, refreshToken := h.transport.Extract(ctx)
	accessToken, err := h.authService.RefreshToken(ctx.UserContext(), refreshToken)
	if err != nil {
		return cerror.Forbidden(SignInRequiredMessage).Wrap(err)
	}

	h.transport.IssueAccessToken(ctx, accessToken)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message":     "Token refreshed successfully",
			"accessToken": accessToken,
		})
}

func (h *handler) Logout(ctx *fiber.Ctx) error {
	h.transport.Clear(ctx)

	logger.FromFiberContext(ctx).
		With(zap.String("eventName", "logout")).
		Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Logout successful",
		})
}

func (h *handler) Profile(ctx *fiber.Ctx) error {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return cerror.Unauthorized("Unauthorized request")
	}

	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message":  "User profile fetched successfully",
			"userInfo": claims.UserClaims,
		})
}
