package usecase

import (
	"context"

	"fangate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// QuizAnswer is one answered question in a submission.
type QuizAnswer struct {
	QuestionID uuid.UUID
	Answer     int // 0-based index into the question's options.
}

// SubmitQuizInput defines the data required to grade a quiz submission.
type SubmitQuizInput struct {
	VerificationID uuid.UUID
	Answers        []QuizAnswer
}

// --- Output DTOs ---

// QuizQuestionView is a question as shown to the quiz taker. It deliberately
// omits the correct answer.
type QuizQuestionView struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Options  []string  `json:"options"`
}

// IssueQuizOutput returns a freshly drawn question set.
type IssueQuizOutput struct {
	Questions []QuizQuestionView
}

// SubmitQuizOutput returns the graded verdict with per-question review.
type SubmitQuizOutput struct {
	QuizScore     int
	CombinedScore int
	QuizPassed    bool
	Passed        bool
	Results       []entity.QuestionResult
}

// QuizUsecase defines the interface for quiz-related business operations.
type QuizUsecase interface {
	// IssueQuiz draws a randomized question set from the catalog.
	IssueQuiz(ctx context.Context) (*IssueQuizOutput, error)

	// SubmitQuiz grades a submission against the catalog, blends it with
	// the verification's fan score and records the verdict exactly once.
	SubmitQuiz(ctx context.Context, userID uuid.UUID, input *SubmitQuizInput) (*SubmitQuizOutput, error)
}
