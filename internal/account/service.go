package account

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fittrack-api/pkg/cerror"
	"fittrack-api/pkg/config"
	"fittrack-api/pkg/logger"
	"fittrack-api/pkg/notification"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=account

type Service interface {
	Register(ctx context.Context, payload *RegisterPayload) (*Profile, error)
	RegisterAdmin(ctx context.Context, payload *AdminRegisterPayload) (*Profile, error)
	GetProfile(ctx context.Context, accountId string) (*Profile, error)
	UpdateProfile(ctx context.Context, accountId string, payload *ProfileUpdatePayload) (*Profile, error)
}

type service struct {
	directory              Directory
	notifier               notification.Notifier
	websiteDomain          string
	adminCreationSecretKey string
	now                    func() time.Time
}

func NewService(directory Directory, notifier notification.Notifier, cfg *config.Config) Service {
	return &service{
		directory:              directory,
		notifier:               notifier,
		websiteDomain:          cfg.WebsiteDomain(),
		adminCreationSecretKey: cfg.Admin.CreationSecretKey,
		now:                    time.Now,
	}
}

func (s *service) Register(ctx context.Context, payload *RegisterPayload) (*Profile, error) {
	return s.register(ctx, KindStandard, payload.Email, payload.Password)
}

func (s *service) RegisterAdmin(ctx context.Context, payload *AdminRegisterPayload) (*Profile, error) {
	if payload.SecretKey != s.adminCreationSecretKey {
		return nil, cerror.Forbidden(
			"Invalid secret key for admin creation",
			zap.String("email", payload.Email),
		)
	}

	return s.register(ctx, KindPrivileged, payload.Email, payload.Password)
}

func (s *service) register(ctx context.Context, kind Kind, email, password string) (*Profile, error) {
	_, err := s.directory.FindAccountWithEmail(ctx, email)
	if err == nil {
		return nil, cerror.Conflict("Email already exists", zap.String("email", email))
	}
	if !cerror.HasStatus(err, fiber.StatusNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return nil, cerror.Internal("error occurred while generate hash from password").Wrap(err)
	}

	verifyToken, err := uuid.NewV7()
	if err != nil {
		return nil, cerror.Internal("error occurred while generate verify token").Wrap(err)
	}

	account := &Document{
		Id:          uuid.New().String(),
		Email:       email,
		Password:    string(hashedPassword),
		DisplayName: displayNameFromEmail(email),
		Role:        kind.Role(),
		IsActive:    false,
		VerifyToken: verifyToken.String(),
		CreatedAt:   s.now().UnixMilli(),
	}

	err = s.directory.InsertAccount(ctx, kind, account)
	if err != nil {
		return nil, err
	}

	s.sendVerificationEmail(ctx, kind, account)

	return account.Profile(), nil
}

// sendVerificationEmail never fails the registration; the account stays
// inactive until the user verifies with the token stored on it.
func (s *service) sendVerificationEmail(ctx context.Context, kind Kind, account *Document) {
	query := url.Values{}
	query.Set("email", account.Email)
	query.Set("token", account.VerifyToken)
	verificationLink := fmt.Sprintf("%s%s?%s", s.websiteDomain, kind.VerificationPath(), query.Encode())

	err := s.notifier.SendEmail(
		ctx,
		account.Email,
		VerificationEmailSubject,
		verificationEmailHtml(verificationLink),
	)
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"verification email could not be sent",
			zap.String("accountId", account.Id),
			zap.Error(err),
		)
	}
}

func (s *service) GetProfile(ctx context.Context, accountId string) (*Profile, error) {
	entry, err := s.directory.FindAccountWithId(ctx, accountId)
	if err != nil {
		return nil, err
	}

	return entry.Account.Profile(), nil
}

func (s *service) UpdateProfile(
	ctx context.Context,
	accountId string,
	payload *ProfileUpdatePayload,
) (*Profile, error) {
	entry, err := s.directory.FindAccountWithId(ctx, accountId)
	if err != nil {
		return nil, err
	}

	account, err := s.directory.UpdateAccount(ctx, entry, &ProfileUpdate{
		DisplayName: payload.DisplayName,
		HeightCm:    payload.HeightCm,
		WeightKg:    payload.WeightKg,
		Dob:         payload.Dob,
		Gender:      payload.Gender,
		UpdatedAt:   s.now().UnixMilli(),
	})
	if err != nil {
		return nil, err
	}

	return account.Profile(), nil
}

func verificationEmailHtml(verificationLink string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 32px;">
  <h2>Verify Your Email</h2>
  <p>Thank you for registering with <b>FitTrack</b>!</p>
  <p>Please click the link below to verify your email address:</p>
  <a href="%[1]s">Verify Email</a>
  <p>If the link doesn't work, copy and paste this into your browser:</p>
  <div>%[1]s</div>
  <p>Sincerely,<br/><b>FitTrack Team</b></p>
</div>`, verificationLink)
}
