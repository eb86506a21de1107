package postgres

import (
	"context"
	"time"

	"fangate/internal/domain/entity"
	domainerrors "fangate/internal/domain/errors"
	"fangate/internal/domain/repository"
	"fangate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// verificationRepository implements the domain.VerificationRepository interface using GORM.
type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

// Create persists a new verification with the fan score only.
func (repo *verificationRepository) Create(ctx context.Context, verification *entity.Verification) error {
	verificationM := fromVerificationDomain(verification)

	if err := repo.db.WithContext(ctx).Create(verificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "verification references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification")
	}

	// Carry back the generated ID and timestamp.
	verification.ID = verificationM.ID
	verification.CreatedAt = verificationM.CreatedAt

	return nil
}

// FindByID retrieves a single verification by its unique ID.
func (repo *verificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Verification, error) {
	var verificationM model.VerificationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&verificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification by id")
	}

	return toVerificationDomain(&verificationM), nil
}

// RecordVerdict writes the quiz verdict exactly once. The UPDATE is guarded
// on graded_at still being NULL, so a concurrent duplicate submission
// affects zero rows and loses the race.
func (repo *verificationRepository) RecordVerdict(ctx context.Context, id uuid.UUID, verdict *repository.QuizVerdict) error {
	updates := map[string]any{
		"quiz_score":     verdict.QuizScore,
		"combined_score": verdict.CombinedScore,
		"quiz_passed":    verdict.QuizPassed,
		"passed":         verdict.Passed,
		"graded_at":      verdict.GradedAt,
	}
	if verdict.Passed {
		updates["verified_at"] = verdict.GradedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VerificationModel{}).
		Where("id = ? AND graded_at IS NULL", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record quiz verdict")
	}

	if result.RowsAffected == 0 {
		// Either the row does not exist or it was graded first by another
		// submission. Tell the two cases apart for the caller.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.VerificationModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check verification existence")
		}
		if count == 0 {
			return repository.ErrVerificationNotFound
		}

		return repository.ErrAlreadyGraded
	}

	return nil
}

// UpdatePassToken stores a freshly signed credential and its expiry,
// replacing any previously issued one.
func (repo *verificationRepository) UpdatePassToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VerificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"pass_token":       token,
			"token_expires_at": expiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store pass token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVerificationNotFound
	}

	return nil
}

// LatestByUserIDs returns each user's most recent verification, keyed by user ID.
func (repo *verificationRepository) LatestByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Verification, error) {
	latest := make(map[uuid.UUID]*entity.Verification, len(userIDs))
	if len(userIDs) == 0 {
		return latest, nil
	}

	var verificationModels []model.VerificationModel
	err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("user_id, created_at DESC").
		Find(&verificationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest verifications")
	}

	// Rows are ordered newest-first per user, so the first row wins.
	for i := range verificationModels {
		userID := verificationModels[i].UserID
		if _, ok := latest[userID]; !ok {
			latest[userID] = toVerificationDomain(&verificationModels[i])
		}
	}

	return latest, nil
}

// --- Mapper Functions ---

// toVerificationDomain converts a GORM VerificationModel to a domain Verification entity.
func toVerificationDomain(data *model.VerificationModel) *entity.Verification {
	if data == nil {
		return nil
	}

	return &entity.Verification{
		ID:             data.ID,
		UserID:         data.UserID,
		FanScore:       data.FanScore,
		QuizScore:      data.QuizScore,
		CombinedScore:  data.CombinedScore,
		QuizPassed:     data.QuizPassed,
		Passed:         data.Passed,
		GradedAt:       data.GradedAt,
		VerifiedAt:     data.VerifiedAt,
		PassToken:      data.PassToken,
		TokenExpiresAt: data.TokenExpiresAt,
		CreatedAt:      data.CreatedAt,
	}
}

// fromVerificationDomain converts a domain Verification entity to a GORM VerificationModel.
func fromVerificationDomain(data *entity.Verification) *model.VerificationModel {
	if data == nil {
		return nil
	}

	return &model.VerificationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		FanScore:       data.FanScore,
		QuizScore:      data.QuizScore,
		CombinedScore:  data.CombinedScore,
		QuizPassed:     data.QuizPassed,
		Passed:         data.Passed,
		GradedAt:       data.GradedAt,
		VerifiedAt:     data.VerifiedAt,
		PassToken:      data.PassToken,
		TokenExpiresAt: data.TokenExpiresAt,
	}
}
