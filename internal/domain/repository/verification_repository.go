package repository

import (
	"context"
	"errors"
	"time"

	"fangate/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for verification persistence.
var (
	// ErrVerificationNotFound is returned when the verification does not exist.
	ErrVerificationNotFound = errors.New("verification not found")

	// ErrAlreadyGraded is returned when a grading write loses the race
	// against an earlier submission.
	ErrAlreadyGraded = errors.New("verification already graded")
)

// QuizVerdict carries the full outcome of grading one quiz submission.
type QuizVerdict struct {
	QuizScore     int
	CombinedScore int
	QuizPassed    bool
	Passed        bool
	GradedAt      time.Time
}

// VerificationRepository defines the operations for verification persistence.
type VerificationRepository interface {
	// Create persists a new verification with the fan score only.
	Create(ctx context.Context, verification *entity.Verification) error

	// FindByID retrieves a single verification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Verification, error)

	// RecordVerdict writes the quiz verdict exactly once. The write is
	// guarded on the verification being ungraded; a second submission
	// returns ErrAlreadyGraded without modifying the row.
	RecordVerdict(ctx context.Context, id uuid.UUID, verdict *QuizVerdict) error

	// UpdatePassToken stores a freshly signed credential and its expiry,
	// replacing any previously issued one.
	UpdatePassToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error

	// LatestByUserIDs returns each user's most recent verification, keyed
	// by user ID. Users without a verification are absent from the map.
	LatestByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Verification, error)
}
