package usecase

import (
	"context"

	"fangate/internal/domain/entity"
)

// --- Output DTOs ---

// AdminUserRow is one user in the operator overview, with their most recent
// verification and quiz attempt when they exist.
type AdminUserRow struct {
	User               *entity.User
	LatestVerification *entity.Verification
	LatestAttempt      *entity.QuizAttempt
}

// AdminUsecase defines the interface for the operator surface.
type AdminUsecase interface {
	// ListUsers returns every user with their latest verification and quiz
	// attempt. Only the configured operator email may call it.
	ListUsers(ctx context.Context, requesterEmail string) ([]*AdminUserRow, error)
}
