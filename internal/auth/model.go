package auth

import (
	"time"

	"fittrack-api/internal/account"
	"fittrack-api/pkg/jwt_generator"
)

const (
	AccessTokenCookieName  = "accessToken"
	RefreshTokenCookieName = "refreshToken"

	// CookieMaxAge is applied to both token cookies. The access token itself
	// usually expires earlier; verification enforces that.
	CookieMaxAge = 14 * 24 * time.Hour

	SignInRequiredMessage = "Please Sign In!"
)

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyPayload struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

// LoginResult is serialized flat: both tokens next to the public profile.
type LoginResult struct {
	jwt_generator.Tokens
	account.Profile
}
