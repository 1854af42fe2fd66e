package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/config"
	"fittrack-api/pkg/jwt_generator"
	"fittrack-api/pkg/logger"
)

type Middleware struct {
	jwtGenerator jwt_generator.JwtGenerator
	jwtConfig    config.JwtConfig
	transport    CredentialTransport
}

func NewMiddleware(
	jwtGenerator jwt_generator.JwtGenerator,
	cfg *config.Config,
	transport CredentialTransport,
) *Middleware {
	return &Middleware{
		jwtGenerator: jwtGenerator,
		jwtConfig:    cfg.Jwt,
		transport:    transport,
	}
}

// Authorize never refreshes on its own. An expired access token with a still
// valid refresh token is answered with 410 so the client calls the refresh
// endpoint itself.
func (m *Middleware) Authorize(ctx *fiber.Ctx) error {
	accessToken, refreshToken := m.transport.Extract(ctx)
	if accessToken == "" {
		return cerror.Unauthorized("Unauthorized!! (Token not found)")
	}

	claims, err := m.jwtGenerator.VerifyToken(accessToken, m.jwtConfig.AccessTokenSecret)
	if err == nil {
		ctx.Locals(jwt_generator.ClaimsLocalsKey, claims)
		logger.FromFiberContext(ctx).Debugw("request authorized", zap.String("accountId", claims.Id))
		return ctx.Next()
	}

	if !errors.Is(err, jwt_generator.ErrExpired) {
		return cerror.Unauthorized("Unauthorized request").Wrap(err)
	}

	if refreshToken == "" {
		return cerror.Unauthorized("Unauthorized!! (Refresh token not found)")
	}

	_, err = m.jwtGenerator.VerifyToken(refreshToken, m.jwtConfig.RefreshTokenSecret)
	if err != nil {
		return cerror.Unauthorized("Unauthorized!! (Refresh token expired or invalid)").Wrap(err)
	}

	return cerror.Gone("Access token expired. Need to refresh token.")
}

// RequireRole must run after Authorize.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(ctx)
		if !ok || claims.Role != role {
			return cerror.Forbidden("Forbidden request", zap.String("requiredRole", role))
		}

		return ctx.Next()
	}
}

func ClaimsFromContext(ctx *fiber.Ctx) (*jwt_generator.Claims, bool) {
	claims, ok := ctx.Locals(jwt_generator.ClaimsLocalsKey).(*jwt_generator.Claims)
	if !ok || claims == nil {
		return nil, false
	}

	return claims, true
}
