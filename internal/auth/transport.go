package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"fittrack-api/pkg/config"
	"fittrack-api/pkg/jwt_generator"
)

// CredentialTransport moves the token pair between the server and the client.
type CredentialTransport interface {
	Issue(ctx *fiber.Ctx, tokens *jwt_generator.Tokens)
	IssueAccessToken(ctx *fiber.Ctx, accessToken string)
	Clear(ctx *fiber.Ctx)
	Extract(ctx *fiber.Ctx) (accessToken, refreshToken string)
}

type cookieTransport struct {
	secure   bool
	sameSite string
	domain   string
}

// NewCookieTransport keeps the tokens in HTTP-only cookies. Production builds
// get secure cross-site cookies bound to the configured domain.
func NewCookieTransport(cfg *config.Config) CredentialTransport {
	if cfg.IsProduction() {
		return &cookieTransport{
			secure:   true,
			sameSite: fiber.CookieSameSiteNoneMode,
			domain:   cfg.Cookie.Domain,
		}
	}

	return &cookieTransport{
		secure:   false,
		sameSite: fiber.CookieSameSiteLaxMode,
	}
}

func (t *cookieTransport) Issue(ctx *fiber.Ctx, tokens *jwt_generator.Tokens) {
	ctx.Cookie(t.newCookie(AccessTokenCookieName, tokens.AccessToken))
	ctx.Cookie(t.newCookie(RefreshTokenCookieName, tokens.RefreshToken))
}

func (t *cookieTransport) IssueAccessToken(ctx *fiber.Ctx, accessToken string) {
	ctx.Cookie(t.newCookie(AccessTokenCookieName, accessToken))
}

func (t *cookieTransport) Clear(ctx *fiber.Ctx) {
	for _, name := range []string{AccessTokenCookieName, RefreshTokenCookieName} {
		cookie := t.newCookie(name, "")
		cookie.MaxAge = 0
		cookie.Expires = time.Unix(0, 0)
		ctx.Cookie(cookie)
	}
}

func (t *cookieTransport) Extract(ctx *fiber.Ctx) (string, string) {
	return ctx.Cookies(AccessTokenCookieName), ctx.Cookies(RefreshTokenCookieName)
}

func (t *cookieTransport) newCookie(name, value string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   t.domain,
		MaxAge:   int(CookieMaxAge.Seconds()),
		Secure:   t.secure,
		HTTPOnly: true,
		SameSite: t.sameSite,
	}
}
