package jwt_generator

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

const IssuerDefault = "fittrack"

// ClaimsLocalsKey is the fiber locals key the authorization middleware stores
// the decoded access token claims under.
const ClaimsLocalsKey = "jwtDecoded"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

var (
	ErrSigning          = errors.New("error occurred while signing jwt token")
	ErrExpired          = errors.New("expired jwt token")
	ErrInvalidSignature = errors.New("invalid jwt token")
)

// UserClaims is the identity carried by both access and refresh tokens.
type UserClaims struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Claims struct {
	UserClaims
	jwt.RegisteredClaims
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
