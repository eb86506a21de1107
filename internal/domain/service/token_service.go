// Package service defines domain-level interfaces for capabilities provided
// by the infrastructure layer, such as token signing, the streaming provider
// gateway and QR code rendering.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims of a session access token.
type SessionClaims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// PassClaims defines the custom claims of a signed pass credential.
type PassClaims struct {
	UserID         uuid.UUID
	VerificationID uuid.UUID
	FanScore       int
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating session tokens and
// signing pass credentials. This abstracts signing details from the use cases.
type TokenService interface {
	// ValidateSessionToken checks the validity of a session token string.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// GeneratePassToken signs a short-lived pass credential for a passed
	// verification and returns it with its absolute expiry.
	GeneratePassToken(userID, verificationID uuid.UUID, fanScore int) (token string, expiresAt time.Time, err error)

	// ValidatePassToken checks the validity of a pass credential string.
	ValidatePassToken(tokenString string) (*PassClaims, error)

	// GetPassTokenDuration returns the configured lifetime of pass credentials.
	GetPassTokenDuration() time.Duration
}
