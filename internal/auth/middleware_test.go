//go:build unit

package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/jwt_generator"
)

func newMiddlewareTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	middleware := NewMiddleware(jwt_generator.NewJwtGenerator(), TestConfig, NewCookieTransport(TestConfig))

	app.Get("/protected", middleware.Authorize, func(ctx *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(ctx)
		if !ok {
			return ctx.SendStatus(fiber.StatusInternalServerError)
		}

		return ctx.SendString(claims.Id)
	})
	app.Get("/admin", middleware.Authorize, RequireRole(jwt_generator.RoleAdmin), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	return app
}

func issueTestToken(t *testing.T, secret []byte, role string, lifetime time.Duration) string {
	token, err := jwt_generator.NewJwtGenerator().GenerateToken(
		jwt_generator.UserClaims{Id: TestAccountId, Email: TestEmail, Role: role},
		secret,
		lifetime,
	)
	require.NoError(t, err)

	return token
}

func newProtectedRequest(path, accessToken, refreshToken string) *http.Request {
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if accessToken != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookieName, Value: accessToken})
	}
	if refreshToken != "" {
		req.AddCookie(&http.Cookie{Name: RefreshTokenCookieName, Value: refreshToken})
	}

	return req
}

func TestMiddleware_Authorize(t *testing.T) {
	accessSecret := TestConfig.Jwt.AccessTokenSecret
	refreshSecret := TestConfig.Jwt.RefreshTokenSecret

	validAccess := issueTestToken(t, accessSecret, jwt_generator.RoleMember, time.Hour)
	expiredAccess := issueTestToken(t, accessSecret, jwt_generator.RoleMember, -time.Minute)
	validRefresh := issueTestToken(t, refreshSecret, jwt_generator.RoleMember, time.Hour)
	expiredRefresh := issueTestToken(t, refreshSecret, jwt_generator.RoleMember, -time.Minute)

	testCases := []struct {
		name            string
		accessToken     string
		refreshToken    string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "valid access token should pass",
			accessToken:    validAccess,
			expectedStatus: fiber.StatusOK,
		},
		{
			name:            "missing access token should return unauthorized",
			refreshToken:    validRefresh,
			expectedStatus:  fiber.StatusUnauthorized,
			expectedMessage: "Token not found",
		},
		{
			name:            "expired access token without refresh token should return unauthorized",
			accessToken:     expiredAccess,
			expectedStatus:  fiber.StatusUnauthorized,
			expectedMessage: "Refresh token not found",
		},
		{
			name:            "expired access token with valid refresh token should return gone",
			accessToken:     expiredAccess,
			refreshToken:    validRefresh,
			expectedStatus:  fiber.StatusGone,
			expectedMessage: "Need to refresh token",
		},
		{
			name:            "expired access token with expired refresh token should return unauthorized",
			accessToken:     expiredAccess,
			refreshToken:    expiredRefresh,
			expectedStatus:  fiber.StatusUnauthorized,
			expectedMessage: "Refresh token expired or invalid",
		},
		{
			name:            "expired access token with access token as refresh token should return unauthorized",
			accessToken:     expiredAccess,
			refreshToken:    validAccess,
			expectedStatus:  fiber.StatusUnauthorized,
			expectedMessage: "Refresh token expired or invalid",
		},
		{
			name:            "refresh token used as access token should return unauthorized",
			accessToken:     validRefresh,
			refreshToken:    validRefresh,
			expectedStatus:  fiber.StatusUnauthorized,
			expectedMessage: "Unauthorized request",
		},
		{
			name:            "malformed access token should return unauthorized",
			accessToken:     "abcd.abcd.abcd",
			expectedStatus:  fiber.StatusUnauthorized,
			expectedMessage: "Unauthorized request",
		},
	}

	app := newMiddlewareTestApp()
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resp, err := app.Test(newProtectedRequest("/protected", testCase.accessToken, testCase.refreshToken))
			require.NoError(t, err)

			assert.Equal(t, testCase.expectedStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			if testCase.expectedMessage != "" {
				assert.Contains(t, string(body), testCase.expectedMessage)
			} else {
				assert.Equal(t, TestAccountId, string(body))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	app := newMiddlewareTestApp()
	accessSecret := TestConfig.Jwt.AccessTokenSecret

	t.Run("member should be forbidden", func(t *testing.T) {
		memberAccess := issueTestToken(t, accessSecret, jwt_generator.RoleMember, time.Hour)

		resp, err := app.Test(newProtectedRequest("/admin", memberAccess, ""))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin should pass", func(t *testing.T) {
		adminAccess := issueTestToken(t, accessSecret, jwt_generator.RoleAdmin, time.Hour)

		resp, err := app.Test(newProtectedRequest("/admin", adminAccess, ""))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("without authorize should be forbidden", func(t *testing.T) {
		app := fiber.New(fiber.Config{ErrorHandler: cerror.Middleware})
		app.Get("/admin", RequireRole(jwt_generator.RoleAdmin), func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(fiber.StatusNoContent)
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
