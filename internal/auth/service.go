package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fittrack-api/internal/account"
	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/config"
	"fittrack-api/pkg/jwt_generator"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=auth

type Service interface {
	Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error)
	VerifyEmail(ctx context.Context, payload *VerifyPayload) (*account.Profile, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
}

type service struct {
	directory    account.Directory
	jwtGenerator jwt_generator.JwtGenerator
	jwtConfig    config.JwtConfig
	now          func() time.Time
}

func NewService(
	directory account.Directory,
	jwtGenerator jwt_generator.JwtGenerator,
	cfg *config.Config,
) Service {
	return &service{
		directory:    directory,
		jwtGenerator: jwtGenerator,
		jwtConfig:    cfg.Jwt,
		now:          time.Now,
	}
}

func (s *service) Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error) {
	entry, err := s.directory.FindAccountWithEmail(ctx, payload.Email)
	if err != nil {
		return nil, err
	}

	if !entry.Account.IsActive {
		return nil, cerror.NotAcceptable(
			"Your account is not active! Please verify your email!",
			zap.String("accountId", entry.Account.Id),
		)
	}

	err = bcrypt.CompareHashAndPassword([]byte(entry.Account.Password), []byte(payload.Password))
	if err != nil {
		return nil, cerror.NotAcceptable(
			"Your Email or Password is incorrect!",
			zap.String("accountId", entry.Account.Id),
		)
	}

	role := entry.Account.Role
	if role == "" {
		role = entry.Kind.Role()
	}
	claims := jwt_generator.UserClaims{
		Id:    entry.Account.Id,
		Email: entry.Account.Email,
		Role:  role,
	}

	accessToken, err := s.jwtGenerator.GenerateToken(claims, s.jwtConfig.AccessTokenSecret, s.jwtConfig.AccessTokenLife)
	if err != nil {
		return nil, cerror.Internal("error occurred while generate access token").Wrap(err)
	}

	refreshToken, err := s.jwtGenerator.GenerateToken(claims, s.jwtConfig.RefreshTokenSecret, s.jwtConfig.RefreshTokenLife)
	if err != nil {
		return nil, cerror.Internal("error occurred while generate refresh token").Wrap(err)
	}

	return &LoginResult{
		Tokens: jwt_generator.Tokens{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
		Profile: *entry.Account.Profile(),
	}, nil
}

func (s *service) VerifyEmail(ctx context.Context, payload *VerifyPayload) (*account.Profile, error) {
	entry, err := s.directory.FindAccountWithEmail(ctx, payload.Email)
	if err != nil {
		return nil, err
	}

	if entry.Account.IsActive {
		return nil, cerror.NotAcceptable(
			"Your account is already active!",
			zap.String("accountId", entry.Account.Id),
		)
	}

	if subtle.ConstantTimeCompare([]byte(entry.Account.VerifyToken), []byte(payload.Token)) != 1 {
		return nil, cerror.Forbidden(
			"Invalid verification token",
			zap.String("accountId", entry.Account.Id),
		)
	}

	activated, err := s.directory.ActivateAccount(ctx, entry, payload.Token, s.now().UnixMilli())
	if err != nil {
		return nil, err
	}

	return activated.Profile(), nil
}

// RefreshToken mints a new access token straight from the refresh token
// claims. The account is not read again, so role or email changes only show
// up after the next login.
func (s *service) RefreshToken(_ context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtGenerator.VerifyToken(refreshToken, s.jwtConfig.RefreshTokenSecret)
	if err != nil {
		if errors.Is(err, jwt_generator.ErrExpired) {
			return "", cerror.Unauthorized("refresh token expired").Wrap(err)
		}

		return "", cerror.Unauthorized("refresh token invalid").Wrap(err)
	}

	accessToken, err := s.jwtGenerator.GenerateToken(
		claims.UserClaims,
		s.jwtConfig.AccessTokenSecret,
		s.jwtConfig.AccessTokenLife,
	)
	if err != nil {
		return "", cerror.Internal("error occurred while generate access token").Wrap(err)
	}

	return accessToken, nil
}
