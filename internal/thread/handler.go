package thread

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fittrack-api/internal/auth"
	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/jwt_generator"
	"fittrack-api/pkg/logger"
	"fittrack-api/pkg/server"
)

type handler struct {
	threadService Service
	authorize     fiber.Handler
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Post("/v1/threads", h.authorize, h.CreateThread)
	app.Get("/v1/threads", h.authorize, h.ListThreads)
	app.Delete("/v1/threads/:threadId", h.authorize, auth.RequireRole(jwt_generator.RoleAdmin), h.DeleteThread)
}

func NewHandler(threadService Service, authorize fiber.Handler) server.Handler {
	return &handler{
		threadService: threadService,
		authorize:     authorize,
	}
}

func (h *handler) CreateThread(ctx *fiber.Ctx) error {
	log := logger.FromFiberContext(ctx).With(zap.String("eventName", "createThread"))

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return cerror.Unauthorized("Unauthorized request")
	}

	var payload CreateThreadPayload
	err := server.ParseBody(ctx, &payload)
	if err != nil {
		return err
	}

	thread, err := h.threadService.CreateThread(ctx.UserContext(), claims.Id, &payload)
	if err != nil {
		return err
	}

	log.Infow(logger.EventFinishedSuccessfully, zap.String("roomId", thread.RoomId))
	return ctx.
		Status(fiber.StatusCreated).
		JSON(fiber.Map{
			"message": "Thread created successfully",
			"data":    thread,
		})
}

func (h *handler) ListThreads(ctx *fiber.Ctx) error {
	log := logger.FromFiberContext(ctx).With(zap.String("eventName", "listThreads"))

	threads, err := h.threadService.ListThreads(ctx.UserContext())
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Threads fetched successfully",
			"data":    threads,
		})
}

func (h *handler) DeleteThread(ctx *fiber.Ctx) error {
	log := logger.FromFiberContext(ctx).With(zap.String("eventName", "deleteThread"))

	threadId := ctx.Params("threadId")
	err := h.threadService.DeleteThread(ctx.UserContext(), threadId)
	if err != nil {
		return err
	}

	log.Infow(logger.EventFinishedSuccessfully, zap.String("threadId", threadId))
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Thread deleted successfully",
		})
}
