//go:build unit

package auth

import (
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack-api/internal/account"
	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/config"
	"fittrack-api/pkg/jwt_generator"
	"fittrack-api/pkg/notification"
)

type memoryRepository struct {
	mutex    sync.Mutex
	accounts map[string]*account.Document
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{accounts: map[string]*account.Document{}}
}

func (r *memoryRepository) InsertAccount(_ context.Context, document *account.Document) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == document.Email {
			return cerror.Conflict("Email already exists")
		}
	}
	stored := *document
	r.accounts[document.Id] = &stored

	return nil
}

func (r *memoryRepository) FindAccountWithEmail(_ context.Context, email string) (*account.Document, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == email {
			found := *existing
			return &found, nil
		}
	}

	return nil, cerror.NotFound("Account not found")
}

func (r *memoryRepository) FindAccountWithId(_ context.Context, accountId string) (*account.Document, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, ok := r.accounts[accountId]
	if !ok {
		return nil, cerror.NotFound("Account not found")
	}
	found := *existing

	return &found, nil
}

func (r *memoryRepository) ActivateAccount(
	_ context.Context,
	accountId, verifyToken string,
	updatedAt int64,
) (*account.Document, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, ok := r.accounts[accountId]
	if !ok || existing.IsActive || existing.VerifyToken != verifyToken {
		return nil, cerror.NotAcceptable("Your account is already active!")
	}
	existing.IsActive = true
	existing.VerifyToken = ""
	existing.UpdatedAt = updatedAt
	found := *existing

	return &found, nil
}

func (r *memoryRepository) UpdateAccountWithId(
	_ context.Context,
	accountId string,
	update *account.ProfileUpdate,
) (*account.Document, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, ok := r.accounts[accountId]
	if !ok {
		return nil, cerror.NotFound("Account not found")
	}
	existing.DisplayName = update.DisplayName
	existing.UpdatedAt = update.UpdatedAt
	found := *existing

	return &found, nil
}

func (r *memoryRepository) EnsureIndexes(context.Context) error {
	return nil
}

func (r *memoryRepository) verifyTokenOf(email string) string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == email {
			return existing.VerifyToken
		}
	}

	return ""
}

type flowFixture struct {
	app                *fiber.App
	standardRepository *memoryRepository
}

func newFlowFixture(accessTokenLife time.Duration) *flowFixture {
	cfg := &config.Config{
		Jwt: config.JwtConfig{
			AccessTokenSecret:  TestConfig.Jwt.AccessTokenSecret,
			AccessTokenLife:    accessTokenLife,
			RefreshTokenSecret: TestConfig.Jwt.RefreshTokenSecret,
			RefreshTokenLife:   TestConfig.Jwt.RefreshTokenLife,
		},
		Website: config.WebsiteConfig{Development: "http://localhost:5173"},
	}

	standardRepository := newMemoryRepository()
	directory := account.NewDirectory(standardRepository, newMemoryRepository())
	jwtGenerator := jwt_generator.NewJwtGenerator()
	transport := NewCookieTransport(cfg)
	middleware := NewMiddleware(jwtGenerator, cfg, transport)

	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	account.NewHandler(
		account.NewService(directory, notification.NewNotifier(config.MailConfig{}), cfg),
		middleware.Authorize,
	).RegisterRoutes(app)
	NewHandler(NewService(directory, jwtGenerator, cfg), transport, middleware.Authorize).RegisterRoutes(app)

	return &flowFixture{
		app:                app,
		standardRepository: standardRepository,
	}
}

func (f *flowFixture) registerVerifyLogin(t *testing.T) *http.Response {
	credentials := &LoginPayload{Email: TestEmail, Password: TestPassword}

	resp, err := f.app.Test(newJsonRequest(t, fiber.MethodPost, "/v1/users/register", credentials))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	verifyToken := f.standardRepository.verifyTokenOf(TestEmail)
	require.NotEmpty(t, verifyToken)

	resp, err = f.app.Test(newJsonRequest(t, fiber.MethodPost, "/v1/auth/verify", &VerifyPayload{
		Email: TestEmail,
		Token: verifyToken,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = f.app.Test(newJsonRequest(t, fiber.MethodPost, "/v1/auth/login", credentials))
	require.NoError(t, err)

	return resp
}

func cookieValue(resp *http.Response, name string) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}

	return ""
}

func TestFlow_RegisterVerifyLogin(t *testing.T) {
	fixture := newFlowFixture(time.Hour)

	t.Run("login before verification should return not acceptable", func(t *testing.T) {
		credentials := &LoginPayload{Email: "b@x.com", Password: TestPassword}
		resp, err := fixture.app.Test(newJsonRequest(t, fiber.MethodPost, "/v1/users/register", credentials))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		resp, err = fixture.app.Test(newJsonRequest(t, fiber.MethodPost, "/v1/auth/login", credentials))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotAcceptable, resp.StatusCode)
	})

	resp := fixture.registerVerifyLogin(t)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, cookieValue(resp, AccessTokenCookieName))
	assert.NotEmpty(t, cookieValue(resp, RefreshTokenCookieName))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "verifyToken")
	assert.Contains(t, string(body), TestEmail)

	t.Run("second verification should return not acceptable", func(t *testing.T) {
		resp, err := fixture.app.Test(newJsonRequest(t, fiber.MethodPost, "/v1/auth/verify", &VerifyPayload{
			Email: TestEmail,
			Token: "anything",
		}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNotAcceptable, resp.StatusCode)
	})

	t.Run("registering the same email again should return conflict", func(t *testing.T) {
		resp, err := fixture.app.Test(newJsonRequest(t, fiber.MethodPost, "/v1/users/register", &LoginPayload{
			Email:    TestEmail,
			Password: TestPassword,
		}))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestFlow_ExpiredAccessToken(t *testing.T) {
	// a negative lifetime issues access tokens that are already expired
	fixture := newFlowFixture(-time.Minute)
	loginResp := fixture.registerVerifyLogin(t)
	require.Equal(t, fiber.StatusOK, loginResp.StatusCode)

	accessToken := cookieValue(loginResp, AccessTokenCookieName)
	refreshToken := cookieValue(loginResp, RefreshTokenCookieName)

	t.Run("without refresh cookie should return unauthorized", func(t *testing.T) {
		resp, err := fixture.app.Test(newProtectedRequest("/v1/auth/profile", accessToken, ""))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Refresh token not found")
	})

	t.Run("with valid refresh cookie should return gone", func(t *testing.T) {
		resp, err := fixture.app.Test(newProtectedRequest("/v1/auth/profile", accessToken, refreshToken))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusGone, resp.StatusCode)
	})

	t.Run("refresh endpoint should issue a new access token cookie", func(t *testing.T) {
		req := newProtectedRequest("/v1/auth/refresh-token", "", refreshToken)
		req.Method = fiber.MethodPost
		resp, err := fixture.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, cookieValue(resp, AccessTokenCookieName))
	})
}
