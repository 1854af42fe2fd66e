package realtime

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fittrack-api/pkg/config"
	"fittrack-api/pkg/logger"
	"fittrack-api/pkg/server"
)

const (
	SocketPath         = "/ws"
	socketIdLocalsKey  = "socketId"
	UpgradeRequiredMsg = "Websocket upgrade required"
)

type Handler interface {
	server.Handler
	Upgrade(ctx *fiber.Ctx) error
	Serve(conn *websocket.Conn)
}

type handler struct {
	baseCtx      context.Context
	gateway      *Gateway
	cookieName   string
	cookieSecure bool
	cookieSite   string
	cookieDomain string
}

// NewHandler exposes the gateway over websocket. baseCtx is handed to every
// connection since the request context is gone once the upgrade completes.
func NewHandler(baseCtx context.Context, gateway *Gateway, cfg *config.Config) Handler {
	h := &handler{
		baseCtx:    baseCtx,
		gateway:    gateway,
		cookieName: cfg.Cookie.SocketCookieName,
		cookieSite: fiber.CookieSameSiteLaxMode,
	}
	if cfg.IsProduction() {
		h.cookieSecure = true
		h.cookieSite = fiber.CookieSameSiteNoneMode
		h.cookieDomain = cfg.Cookie.Domain
	}

	return h
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Get(SocketPath, h.Upgrade, websocket.New(h.Serve))
}

func (h *handler) Upgrade(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.NewError(fiber.StatusUpgradeRequired, UpgradeRequiredMsg)
	}

	socketId := uuid.New().String()
	ctx.Locals(socketIdLocalsKey, socketId)
	ctx.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    socketId,
		Path:     "/",
		Domain:   h.cookieDomain,
		Secure:   h.cookieSecure,
		HTTPOnly: true,
		SameSite: h.cookieSite,
	})

	return ctx.Next()
}

func (h *handler) Serve(conn *websocket.Conn) {
	socketId, _ := conn.Locals(socketIdLocalsKey).(string)

	log := logger.FromContext(h.baseCtx)
	err := h.gateway.Serve(h.baseCtx, socketId, conn)
	if err != nil {
		log.Warnw(
			"socket connection rejected",
			zap.String("socketId", socketId),
			zap.Error(err),
		)
	}
}
