// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fangate/internal/domain/scoring"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// VerifyOutput returns the result of scoring a user's listening history.
type VerifyOutput struct {
	VerificationID uuid.UUID
	FanScore       int
	CanProceed     bool // Whether the fan score clears the bar to take the quiz.
	Breakdown      []scoring.BreakdownEntry
	Evidence       scoring.Evidence
	Synthetic      bool   // True when canned data was scored instead of a real history.
	Notice         string // User-visible label for synthetic data, empty otherwise.
}

// VerificationUsecase defines the interface for listening-score verification.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type VerificationUsecase interface {
	// Verify fetches the user's listening snapshot, scores it and records a
	// new verification.
	Verify(ctx context.Context, userID uuid.UUID) (*VerifyOutput, error)
}
