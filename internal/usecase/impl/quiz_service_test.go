package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"fangate/internal/domain/entity"
	domainerrors "fangate/internal/domain/errors"
	"fangate/internal/domain/repository"
	mockRepo "fangate/internal/mocks/repository"
	"fangate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// quizServiceFixtures holds all test dependencies for quiz service tests.
type quizServiceFixtures struct {
	service          usecase.QuizUsecase
	txManager        *mockRepo.MockTransactionManager
	questionRepo     *mockRepo.MockQuizQuestionRepository
	verificationRepo *mockRepo.MockVerificationRepository
}

func createTestQuizService(t *testing.T) quizServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	questionRepo := mockRepo.NewMockQuizQuestionRepository(t)
	verificationRepo := mockRepo.NewMockVerificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewQuizService(QuizServiceParams{
		TxManager:        txManager,
		QuestionRepo:     questionRepo,
		VerificationRepo: verificationRepo,
		Logger:           logger,
	})

	return quizServiceFixtures{
		service:          service,
		txManager:        txManager,
		questionRepo:     questionRepo,
		verificationRepo: verificationRepo,
	}
}

func testQuestions(n int) []*entity.QuizQuestion {
	questions := make([]*entity.QuizQuestion, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, &entity.QuizQuestion{
			ID:           uuid.New(),
			Question:     "question",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 1,
		})
	}

	return questions
}

func testAnswers(questions []*entity.QuizQuestion, correct int) []usecase.QuizAnswer {
	answers := make([]usecase.QuizAnswer, 0, len(questions))
	for i, question := range questions {
		answer := question.CorrectIndex
		if i >= correct {
			answer = (question.CorrectIndex + 1) % len(question.Options)
		}
		answers = append(answers, usecase.QuizAnswer{QuestionID: question.ID, Answer: answer})
	}

	return answers
}

// expectVerdict wires the grading transaction and captures the recorded verdict.
func (fx quizServiceFixtures) expectVerdict(t *testing.T, ctx context.Context, verificationID uuid.UUID, captured **repository.QuizVerdict) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockVerificationRepo := mockRepo.NewMockVerificationRepository(t)
			mockAttemptRepo := mockRepo.NewMockQuizAttemptRepository(t)

			mockFactory.EXPECT().NewVerificationRepository().Return(mockVerificationRepo)
			mockFactory.EXPECT().NewQuizAttemptRepository().Return(mockAttemptRepo)
			mockVerificationRepo.EXPECT().
				RecordVerdict(ctx, verificationID, mock.AnythingOfType("*repository.QuizVerdict")).
				Run(func(ctx context.Context, id uuid.UUID, verdict *repository.QuizVerdict) {
					*captured = verdict
				}).
				Return(nil)
			mockAttemptRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.QuizAttempt")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
}

func TestQuizService_IssueQuiz_Success(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	catalog := testQuestions(15)
	catalogIDs := make(map[uuid.UUID]struct{}, len(catalog))
	for _, question := range catalog {
		catalogIDs[question.ID] = struct{}{}
	}

	fx.questionRepo.EXPECT().FindAll(ctx).Return(catalog, nil)

	output, err := fx.service.IssueQuiz(ctx)

	require.NoError(t, err)
	require.Len(t, output.Questions, 10)

	seen := make(map[uuid.UUID]struct{}, len(output.Questions))
	for _, view := range output.Questions {
		_, fromCatalog := catalogIDs[view.ID]
		assert.True(t, fromCatalog)
		_, dup := seen[view.ID]
		assert.False(t, dup)
		seen[view.ID] = struct{}{}
		assert.NotEmpty(t, view.Options)
	}
}

func TestQuizService_IssueQuiz_ShufflesOrder(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	catalog := testQuestions(15)

	// The service shuffles in place, so every call gets its own slice over
	// the same questions.
	fx.questionRepo.EXPECT().FindAll(ctx).RunAndReturn(func(context.Context) ([]*entity.QuizQuestion, error) {
		return slices.Clone(catalog), nil
	})

	draw := func() []uuid.UUID {
		output, err := fx.service.IssueQuiz(ctx)
		require.NoError(t, err)
		ids := make([]uuid.UUID, 0, len(output.Questions))
		for _, view := range output.Questions {
			ids = append(ids, view.ID)
		}

		return ids
	}

	// Two draws agreeing on all ten positions is vanishingly unlikely; a few
	// retries make the check immune to the odd collision.
	first := draw()
	for range 5 {
		if !slices.Equal(first, draw()) {
			return
		}
	}

	t.Fatal("issued question order never varied across draws")
}

func TestQuizService_IssueQuiz_InsufficientCatalog(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()

	fx.questionRepo.EXPECT().FindAll(ctx).Return(testQuestions(9), nil)

	output, err := fx.service.IssueQuiz(ctx)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientData))
}

func TestQuizService_SubmitQuiz_Success(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	userID := uuid.New()
	questions := testQuestions(10)
	verification := &entity.Verification{ID: uuid.New(), UserID: userID, FanScore: 100}

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)
	fx.questionRepo.EXPECT().FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).Return(questions, nil)

	var verdict *repository.QuizVerdict
	fx.expectVerdict(t, ctx, verification.ID, &verdict)

	output, err := fx.service.SubmitQuiz(ctx, userID, &usecase.SubmitQuizInput{
		VerificationID: verification.ID,
		Answers:        testAnswers(questions, 5),
	})

	require.NoError(t, err)
	assert.Equal(t, 5, output.QuizScore)
	assert.Equal(t, 70, output.CombinedScore)
	assert.False(t, output.QuizPassed)
	assert.True(t, output.Passed)
	require.Len(t, output.Results, 10)
	assert.True(t, output.Results[0].IsCorrect)
	assert.False(t, output.Results[9].IsCorrect)

	require.NotNil(t, verdict)
	assert.Equal(t, 5, verdict.QuizScore)
	assert.Equal(t, 70, verdict.CombinedScore)
	assert.True(t, verdict.Passed)
	assert.False(t, verdict.GradedAt.IsZero())
}

func TestQuizService_SubmitQuiz_PerfectQuizAloneFails(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	userID := uuid.New()
	questions := testQuestions(10)
	verification := &entity.Verification{ID: uuid.New(), UserID: userID, FanScore: 0}

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)
	fx.questionRepo.EXPECT().FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).Return(questions, nil)

	var verdict *repository.QuizVerdict
	fx.expectVerdict(t, ctx, verification.ID, &verdict)

	output, err := fx.service.SubmitQuiz(ctx, userID, &usecase.SubmitQuizInput{
		VerificationID: verification.ID,
		Answers:        testAnswers(questions, 10),
	})

	require.NoError(t, err)
	assert.Equal(t, 10, output.QuizScore)
	assert.Equal(t, 60, output.CombinedScore)
	assert.True(t, output.QuizPassed)
	assert.False(t, output.Passed)
}

func TestQuizService_SubmitQuiz_WrongAnswerCount(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	questions := testQuestions(3)

	output, err := fx.service.SubmitQuiz(ctx, uuid.New(), &usecase.SubmitQuizInput{
		VerificationID: uuid.New(),
		Answers:        testAnswers(questions, 3),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestQuizService_SubmitQuiz_DuplicateQuestion(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	userID := uuid.New()
	questions := testQuestions(10)
	verification := &entity.Verification{ID: uuid.New(), UserID: userID, FanScore: 100}

	answers := testAnswers(questions, 10)
	answers[9].QuestionID = answers[0].QuestionID

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)

	output, err := fx.service.SubmitQuiz(ctx, userID, &usecase.SubmitQuizInput{
		VerificationID: verification.ID,
		Answers:        answers,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestQuizService_SubmitQuiz_UnknownQuestionGradesIncorrect(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	userID := uuid.New()
	questions := testQuestions(10)
	verification := &entity.Verification{ID: uuid.New(), UserID: userID, FanScore: 100}

	// The catalog only knows the first nine questions; the tenth answer
	// names a question that does not exist and must simply not score.
	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)
	fx.questionRepo.EXPECT().FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).Return(questions[:9], nil)

	var verdict *repository.QuizVerdict
	fx.expectVerdict(t, ctx, verification.ID, &verdict)

	output, err := fx.service.SubmitQuiz(ctx, userID, &usecase.SubmitQuizInput{
		VerificationID: verification.ID,
		Answers:        testAnswers(questions, 10),
	})

	require.NoError(t, err)
	assert.Equal(t, 9, output.QuizScore)
	require.Len(t, output.Results, 10)
	assert.False(t, output.Results[9].IsCorrect)
	assert.Equal(t, -1, output.Results[9].CorrectIndex)
	assert.Equal(t, questions[9].ID, output.Results[9].QuestionID)

	require.NotNil(t, verdict)
	assert.Equal(t, 9, verdict.QuizScore)
}

func TestQuizService_SubmitQuiz_AnswerOutOfRangeGradesIncorrect(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	userID := uuid.New()
	questions := testQuestions(10)
	verification := &entity.Verification{ID: uuid.New(), UserID: userID, FanScore: 100}

	answers := testAnswers(questions, 10)
	answers[4].Answer = len(questions[4].Options)

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)
	fx.questionRepo.EXPECT().FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).Return(questions, nil)

	var verdict *repository.QuizVerdict
	fx.expectVerdict(t, ctx, verification.ID, &verdict)

	output, err := fx.service.SubmitQuiz(ctx, userID, &usecase.SubmitQuizInput{
		VerificationID: verification.ID,
		Answers:        answers,
	})

	require.NoError(t, err)
	assert.Equal(t, 9, output.QuizScore)
	require.Len(t, output.Results, 10)
	assert.False(t, output.Results[4].IsCorrect)
	assert.Equal(t, questions[4].CorrectIndex, output.Results[4].CorrectIndex)
}

func TestQuizService_SubmitQuiz_VerificationNotFound(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	verificationID := uuid.New()
	questions := testQuestions(10)

	fx.verificationRepo.EXPECT().FindByID(ctx, verificationID).Return(nil, repository.ErrVerificationNotFound)

	output, err := fx.service.SubmitQuiz(ctx, uuid.New(), &usecase.SubmitQuizInput{
		VerificationID: verificationID,
		Answers:        testAnswers(questions, 10),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationNotFound))
}

func TestQuizService_SubmitQuiz_Forbidden(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	questions := testQuestions(10)
	verification := &entity.Verification{ID: uuid.New(), UserID: uuid.New(), FanScore: 100}

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)

	output, err := fx.service.SubmitQuiz(ctx, uuid.New(), &usecase.SubmitQuizInput{
		VerificationID: verification.ID,
		Answers:        testAnswers(questions, 10),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestQuizService_SubmitQuiz_AlreadyGraded(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	userID := uuid.New()
	questions := testQuestions(10)
	gradedAt := time.Now()
	verification := &entity.Verification{ID: uuid.New(), UserID: userID, FanScore: 100, GradedAt: &gradedAt}

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)

	output, err := fx.service.SubmitQuiz(ctx, userID, &usecase.SubmitQuizInput{
		VerificationID: verification.ID,
		Answers:        testAnswers(questions, 10),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyGraded))
}

func TestQuizService_SubmitQuiz_GradingRaceLost(t *testing.T) {
	fx := createTestQuizService(t)

	ctx := context.Background()
	userID := uuid.New()
	questions := testQuestions(10)
	verification := &entity.Verification{ID: uuid.New(), UserID: userID, FanScore: 100}

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)
	fx.questionRepo.EXPECT().FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).Return(questions, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrAlreadyGraded)

	output, err := fx.service.SubmitQuiz(ctx, userID, &usecase.SubmitQuizInput{
		VerificationID: verification.ID,
		Answers:        testAnswers(questions, 10),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyGraded))
}
