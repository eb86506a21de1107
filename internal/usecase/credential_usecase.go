package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// CredentialOutput returns a signed pass credential and its expiry.
type CredentialOutput struct {
	VerificationID uuid.UUID
	PassToken      string
	ExpiresAt      time.Time
}

// CredentialUsecase defines the interface for pass credential issuance.
type CredentialUsecase interface {
	// IssueCredential signs a fresh short-lived credential for a passed
	// verification, replacing any previously issued one.
	IssueCredential(ctx context.Context, userID, verificationID uuid.UUID) (*CredentialOutput, error)

	// RenderCredentialQR returns the credential as a PNG QR code, reusing
	// the stored token while it is still valid.
	RenderCredentialQR(ctx context.Context, userID, verificationID uuid.UUID) ([]byte, error)
}
