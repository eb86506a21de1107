package postgres

import (
	"context"

	"fangate/internal/domain/entity"
	domainerrors "fangate/internal/domain/errors"
	"fangate/internal/domain/repository"
	"fangate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// quizQuestionRepository implements the domain.QuizQuestionRepository interface using GORM.
type quizQuestionRepository struct {
	db *gorm.DB
}

// NewQuizQuestionRepository is the constructor for quizQuestionRepository.
func NewQuizQuestionRepository(db *gorm.DB) repository.QuizQuestionRepository {
	return &quizQuestionRepository{db: db}
}

// FindAll retrieves the whole question catalog.
func (repo *quizQuestionRepository) FindAll(ctx context.Context) ([]*entity.QuizQuestion, error) {
	var questionModels []model.QuizQuestionModel
	if err := repo.db.WithContext(ctx).Find(&questionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list quiz questions")
	}

	return toQuestionDomains(questionModels), nil
}

// FindByIDs retrieves the questions with the given IDs, in no particular order.
func (repo *quizQuestionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.QuizQuestion, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var questionModels []model.QuizQuestionModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&questionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quiz questions by ids")
	}

	return toQuestionDomains(questionModels), nil
}

// Count returns the number of questions in the catalog.
func (repo *quizQuestionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.QuizQuestionModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count quiz questions")
	}

	return count, nil
}

// CreateBatch inserts a batch of questions. Used by the seeding tool only.
func (repo *quizQuestionRepository) CreateBatch(ctx context.Context, questions []*entity.QuizQuestion) error {
	if len(questions) == 0 {
		return nil
	}

	questionModels := make([]model.QuizQuestionModel, 0, len(questions))
	for _, question := range questions {
		questionModels = append(questionModels, model.QuizQuestionModel{
			ID:           question.ID,
			Question:     question.Question,
			Options:      question.Options,
			CorrectIndex: question.CorrectIndex,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&questionModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "question already present in catalog")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to seed quiz questions")
	}

	return nil
}

// quizAttemptRepository implements the domain.QuizAttemptRepository interface using GORM.
type quizAttemptRepository struct {
	db *gorm.DB
}

// NewQuizAttemptRepository is the constructor for quizAttemptRepository.
func NewQuizAttemptRepository(db *gorm.DB) repository.QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

// Create appends one graded attempt.
func (repo *quizAttemptRepository) Create(ctx context.Context, attempt *entity.QuizAttempt) error {
	attemptM := &model.QuizAttemptModel{
		ID:     attempt.ID,
		UserID: attempt.UserID,
		Score:  attempt.Score,
	}

	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record quiz attempt")
	}

	attempt.ID = attemptM.ID
	attempt.CreatedAt = attemptM.CreatedAt

	return nil
}

// LatestByUserIDs returns each user's most recent attempt, keyed by user ID.
func (repo *quizAttemptRepository) LatestByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.QuizAttempt, error) {
	latest := make(map[uuid.UUID]*entity.QuizAttempt, len(userIDs))
	if len(userIDs) == 0 {
		return latest, nil
	}

	var attemptModels []model.QuizAttemptModel
	err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("user_id, created_at DESC").
		Find(&attemptModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest quiz attempts")
	}

	for i := range attemptModels {
		userID := attemptModels[i].UserID
		if _, ok := latest[userID]; !ok {
			latest[userID] = &entity.QuizAttempt{
				ID:        attemptModels[i].ID,
				UserID:    userID,
				Score:     attemptModels[i].Score,
				CreatedAt: attemptModels[i].CreatedAt,
			}
		}
	}

	return latest, nil
}

// toQuestionDomains converts GORM question models to domain entities.
func toQuestionDomains(questionModels []model.QuizQuestionModel) []*entity.QuizQuestion {
	questions := make([]*entity.QuizQuestion, 0, len(questionModels))
	for i := range questionModels {
		questions = append(questions, &entity.QuizQuestion{
			ID:           questionModels[i].ID,
			Question:     questionModels[i].Question,
			Options:      questionModels[i].Options,
			CorrectIndex: questionModels[i].CorrectIndex,
			CreatedAt:    questionModels[i].CreatedAt,
		})
	}

	return questions
}
