package account

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/jwt_generator"
	"fittrack-api/pkg/logger"
	"fittrack-api/pkg/server"
)

type handler struct {
	accountService Service
	authorize      fiber.Handler
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Post("/v1/users/register", h.Register)
	app.Post("/v1/admins/register", h.RegisterAdmin)
	app.Get("/v1/users/profile", h.authorize, h.GetProfile)
	app.Put("/v1/users/profile", h.authorize, h.UpdateProfile)
}

// NewHandler wires the account routes. authorize guards the profile routes and
// must store the decoded claims under jwt_generator.ClaimsLocalsKey.
func NewHandler(accountService Service, authorize fiber.Handler) server.Handler {
	return &handler{
		accountService: accountService,
		authorize:      authorize,
	}
}

func (h *handler) Register(ctx *fiber.Ctx) error {
	log := logger.FromFiberContext(ctx).With(zap.String("eventName", "registerUser"))

	var payload RegisterPayload
	err := server.ParseBody(ctx, &payload)
	if err != nil {
		return err
	}

	profile, err := h.accountService.Register(ctx.UserContext(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(fiber.Map{
			"message": "User created successfully",
			"data":    profile,
		})
}

func (h *handler) RegisterAdmin(ctx *fiber.Ctx) error {
	log := logger.FromFiberContext(ctx).With(zap.String("eventName", "registerAdmin"))

	var payload AdminRegisterPayload
	err := server.ParseBody(ctx, &payload)
	if err != nil {
		return err
	}

	profile, err := h.accountService.RegisterAdmin(ctx.UserContext(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(fiber.Map{
			"message": "Admin created successfully",
			"data":    profile,
		})
}

func (h *handler) GetProfile(ctx *fiber.Ctx) error {
	log := logger.FromFiberContext(ctx).With(zap.String("eventName", "getProfile"))

	claims, err := claimsFromLocals(ctx)
	if err != nil {
		return err
	}

	profile, err := h.accountService.GetProfile(ctx.UserContext(), claims.Id)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Profile retrieved successfully",
			"data":    profile,
		})
}

func (h *handler) UpdateProfile(ctx *fiber.Ctx) error {
	log := logger.FromFiberContext(ctx).With(zap.String("eventName", "updateProfile"))

	claims, err := claimsFromLocals(ctx)
	if err != nil {
		return err
	}

	var payload ProfileUpdatePayload
	err = server.ParseBody(ctx, &payload)
	if err != nil {
		return err
	}

	profile, err := h.accountService.UpdateProfile(ctx.UserContext(), claims.Id, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Profile updated successfully",
			"data":    profile,
		})
}

func claimsFromLocals(ctx *fiber.Ctx) (*jwt_generator.Claims, error) {
	claims, ok := ctx.Locals(jwt_generator.ClaimsLocalsKey).(*jwt_generator.Claims)
	if !ok || claims == nil {
		return nil, cerror.Unauthorized("Unauthorized request")
	}

	return claims, nil
}
