package repository

import (
	"context"

	"fangate/internal/domain/entity"

	"github.com/google/uuid"
)

// QuizQuestionRepository defines read and seed operations for the question
// catalog. Questions are immutable once seeded.
type QuizQuestionRepository interface {
	// FindAll retrieves the whole question catalog.
	FindAll(ctx context.Context) ([]*entity.QuizQuestion, error)

	// FindByIDs retrieves the questions with the given IDs, in no
	// particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.QuizQuestion, error)

	// Count returns the number of questions in the catalog.
	Count(ctx context.Context) (int64, error)

	// CreateBatch inserts a batch of questions. Used by the seeding tool only.
	CreateBatch(ctx context.Context, questions []*entity.QuizQuestion) error
}

// QuizAttemptRepository defines operations for the append-only attempt log.
type QuizAttemptRepository interface {
	// Create appends one graded attempt.
	Create(ctx context.Context, attempt *entity.QuizAttempt) error

	// LatestByUserIDs returns each user's most recent attempt, keyed by
	// user ID. Users without an attempt are absent from the map.
	LatestByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.QuizAttempt, error)
}
