package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	deliverycontext "fangate/internal/delivery/context"
	"fangate/internal/domain/entity"
	domainerrors "fangate/internal/domain/errors"
	"fangate/internal/domain/repository"
	"fangate/internal/domain/scoring"
	"fangate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// quizSize is the number of questions in one issued quiz.
const quizSize = 10

// quizService implements the QuizUsecase interface.
type quizService struct {
	txManager        repository.TransactionManager
	questionRepo     repository.QuizQuestionRepository
	verificationRepo repository.VerificationRepository
	logger           *slog.Logger
}

// QuizServiceParams holds dependencies for QuizService, injected by Fx.
type QuizServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	QuestionRepo     repository.QuizQuestionRepository
	VerificationRepo repository.VerificationRepository
	Logger           *slog.Logger
}

// NewQuizService is the constructor for quizService. It receives all dependencies as interfaces.
func NewQuizService(params QuizServiceParams) usecase.QuizUsecase {
	return &quizService{
		txManager:        params.TxManager,
		questionRepo:     params.QuestionRepo,
		verificationRepo: params.VerificationRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *quizService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueQuiz draws a randomized question set from the catalog. The catalog is
// shuffled before drawing and the drawn set shuffled again, so both which
// questions appear and the order they appear in vary per issue.
func (srv *quizService) IssueQuiz(ctx context.Context) (*usecase.IssueQuizOutput, error) {
	questions, err := srv.questionRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load question catalog")
	}

	if len(questions) < quizSize {
		srv.log(ctx).Warn("Question catalog too small to issue a quiz", slog.Int("available", len(questions)))

		return nil, domainerrors.ErrInsufficientData.WrapMessage("question catalog has fewer questions than one quiz needs")
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	drawn := questions[:quizSize]
	rand.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})

	views := make([]usecase.QuizQuestionView, 0, quizSize)
	for _, question := range drawn {
		views = append(views, usecase.QuizQuestionView{
			ID:       question.ID,
			Question: question.Question,
			Options:  question.Options,
		})
	}

	return &usecase.IssueQuizOutput{Questions: views}, nil
}

// SubmitQuiz grades a submission and records the verdict exactly once.
func (srv *quizService) SubmitQuiz(ctx context.Context, userID uuid.UUID, input *usecase.SubmitQuizInput) (*usecase.SubmitQuizOutput, error) {
	if len(input.Answers) != quizSize {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a submission must answer exactly ten questions")
	}

	verification, err := srv.verificationRepo.FindByID(ctx, input.VerificationID)
	if err != nil {
		if errors.Is(err, repository.ErrVerificationNotFound) {
			return nil, domainerrors.ErrVerificationNotFound.WrapMessage("unknown verification")
		}

		return nil, errors.Wrap(err, "failed to load verification")
	}
	if verification.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("verification belongs to another user")
	}
	if verification.Graded() {
		return nil, domainerrors.ErrAlreadyGraded.WrapMessage("verification was already graded")
	}

	results, correct, err := srv.grade(ctx, input.Answers)
	if err != nil {
		return nil, err
	}

	decision := scoring.Decide(verification.FanScore, correct)
	verdict := &repository.QuizVerdict{
		QuizScore:     correct,
		CombinedScore: decision.CombinedScore,
		QuizPassed:    decision.QuizPassed,
		Passed:        decision.Passed,
		GradedAt:      time.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewVerificationRepository().RecordVerdict(ctx, verification.ID, verdict); err != nil {
			return err
		}

		attempt := &entity.QuizAttempt{UserID: userID, Score: correct}

		return repoFactory.NewQuizAttemptRepository().Create(ctx, attempt)
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyGraded) {
			// A concurrent submission won the grading race.
			return nil, domainerrors.ErrAlreadyGraded.WrapMessage("verification was graded by a concurrent submission")
		}
		srv.log(ctx).Error("Failed to record quiz verdict", slog.Any("verificationID", verification.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record quiz verdict")
	}

	srv.log(ctx).Info("Quiz graded",
		slog.Any("userID", userID),
		slog.Any("verificationID", verification.ID),
		slog.Int("quizScore", correct),
		slog.Int("combinedScore", decision.CombinedScore),
		slog.Bool("passed", decision.Passed),
	)

	return &usecase.SubmitQuizOutput{
		QuizScore:     correct,
		CombinedScore: decision.CombinedScore,
		QuizPassed:    decision.QuizPassed,
		Passed:        decision.Passed,
		Results:       results,
	}, nil
}

// grade re-reads the answered questions from the catalog and scores each
// answer against the stored correct index. The client's view of a question
// is never trusted. Answers naming a question the catalog does not hold, or
// an option index the question does not have, count as incorrect; they do
// not invalidate the submission.
func (srv *quizService) grade(ctx context.Context, answers []usecase.QuizAnswer) ([]entity.QuestionResult, int, error) {
	ids := make([]uuid.UUID, 0, len(answers))
	seen := make(map[uuid.UUID]struct{}, len(answers))
	for _, answer := range answers {
		if _, dup := seen[answer.QuestionID]; dup {
			return nil, 0, domainerrors.ErrValidationFailed.WrapMessage("submission answers the same question twice")
		}
		seen[answer.QuestionID] = struct{}{}
		ids = append(ids, answer.QuestionID)
	}

	questions, err := srv.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load answered questions")
	}

	byID := make(map[uuid.UUID]*entity.QuizQuestion, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
	}

	results := make([]entity.QuestionResult, 0, len(answers))
	correct := 0
	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			// CorrectIndex -1 tells the client there was nothing to match.
			results = append(results, entity.QuestionResult{
				QuestionID:   answer.QuestionID,
				CorrectIndex: -1,
				UserAnswer:   answer.Answer,
			})

			continue
		}

		isCorrect := answer.Answer == question.CorrectIndex
		if isCorrect {
			correct++
		}

		results = append(results, entity.QuestionResult{
			QuestionID:   question.ID,
			Question:     question.Question,
			Options:      question.Options,
			CorrectIndex: question.CorrectIndex,
			UserAnswer:   answer.Answer,
			IsCorrect:    isCorrect,
		})
	}

	return results, correct, nil
}
