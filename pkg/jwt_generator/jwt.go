package jwt_generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=jwt_generator

type JwtGenerator interface {
	GenerateToken(claims UserClaims, secret []byte, lifetime time.Duration) (string, error)
	VerifyToken(rawJwtToken string, secret []byte) (*Claims, error)
}

type jwtGenerator struct {
	now func() time.Time
}

func NewJwtGenerator() JwtGenerator {
	return &jwtGenerator{
		now: time.Now,
	}
}

func (jwtGenerator *jwtGenerator) GenerateToken(
	userClaims UserClaims,
	secret []byte,
	lifetime time.Duration,
) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("%w: empty secret", ErrSigning)
	}

	now := jwtGenerator.now().UTC()
	claims := Claims{
		UserClaims: userClaims,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userClaims.Id,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSigning, err)
	}

	return signedToken, nil
}

// VerifyToken checks signature and issuer before expiry, so a token signed
// with another secret is reported as invalid even when it is also expired.
func (jwtGenerator *jwtGenerator) VerifyToken(rawJwtToken string, secret []byte) (*Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("jwt token is not signed with hmac")
		}

		return secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	isValidIssuer := claims.VerifyIssuer(IssuerDefault, true)
	if !isValidIssuer {
		return nil, fmt.Errorf("%w: ambiguous jwt token issuer", ErrInvalidSignature)
	}

	now := jwtGenerator.now().UTC()
	isNotExpired := claims.VerifyExpiresAt(now, true)
	if !isNotExpired {
		return nil, ErrExpired
	}

	isTokenStarted := claims.VerifyNotBefore(now, true)
	if !isTokenStarted {
		return nil, fmt.Errorf("%w: jwt token is not started", ErrInvalidSignature)
	}

	return &claims, nil
}
