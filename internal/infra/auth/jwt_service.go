// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fangate/config"
	"fangate/internal/domain/service"
)

// passTokenTTL is the lifetime of a pass credential. Credentials are meant
// to be shown at the door right after issuance, so the window is short.
const passTokenTTL = 10 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string // Secret key validating session tokens.
	passSecret   string // Secret key signing pass credentials.
	passTTL      time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Pass == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		passSecret:   cfg.SecretKey.Pass,
		passTTL:      passTokenTTL,
	}, nil
}

// ValidateSessionToken checks a session token and extracts its claims.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	claims := jwt.MapClaims{}
	if err := s.parseInto(tokenString, s.accessSecret, claims); err != nil {
		return nil, err
	}

	userID, err := claimUUID(claims, "sub")
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)

	return &service.SessionClaims{
		UserID: userID,
		Email:  email,
	}, nil
}

// GeneratePassToken signs a short-lived pass credential.
func (s *jwtService) GeneratePassToken(userID, verificationID uuid.UUID, fanScore int) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.passTTL)

	claims := jwt.MapClaims{
		"sub":            userID.String(),
		"verificationId": verificationID.String(),
		"fanScore":       fanScore,
		"iat":            now.Unix(),
		"exp":            expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.passSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ValidatePassToken checks a pass credential and extracts its claims.
func (s *jwtService) ValidatePassToken(tokenString string) (*service.PassClaims, error) {
	claims := jwt.MapClaims{}
	if err := s.parseInto(tokenString, s.passSecret, claims); err != nil {
		return nil, err
	}

	userID, err := claimUUID(claims, "sub")
	if err != nil {
		return nil, err
	}

	verificationID, err := claimUUID(claims, "verificationId")
	if err != nil {
		return nil, err
	}

	fanScore, _ := claims["fanScore"].(float64)

	return &service.PassClaims{
		UserID:         userID,
		VerificationID: verificationID,
		FanScore:       int(fanScore),
	}, nil
}

// GetPassTokenDuration returns the configured lifetime of pass credentials.
func (s *jwtService) GetPassTokenDuration() time.Duration {
	return s.passTTL
}

// parseInto validates the signature and expiry of a token against a secret.
func (s *jwtService) parseInto(tokenString, secret string, claims jwt.MapClaims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenUnverifiable
	}

	return nil
}

func claimUUID(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, _ := claims[key].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("token claim " + key + " is not a valid UUID")
	}

	return id, nil
}
