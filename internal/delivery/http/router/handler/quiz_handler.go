package handler

import (
	"log/slog"
	"net/http"

	"fangate/internal/delivery/http/middleware"
	"fangate/internal/delivery/http/response"
	"fangate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuizHandlerParams holds dependencies for QuizHandler, injected by Fx.
type QuizHandlerParams struct {
	fx.In

	QuizUC usecase.QuizUsecase
	Logger *slog.Logger
}

// QuizHandler holds dependencies for quiz-related handlers
type QuizHandler struct {
	quizUC usecase.QuizUsecase
	logger *slog.Logger
}

// NewQuizHandler is the constructor for QuizHandler
func NewQuizHandler(params QuizHandlerParams) *QuizHandler {
	return &QuizHandler{
		quizUC: params.QuizUC,
		logger: params.Logger,
	}
}

// SubmitQuizRequest represents the request body for grading a quiz submission
type SubmitQuizRequest struct {
	VerificationID uuid.UUID           `json:"verificationId" validate:"required"`
	Answers        []QuizAnswerRequest `json:"answers" validate:"required,len=10,dive"`
}

// QuizAnswerRequest is one answered question in a submission
type QuizAnswerRequest struct {
	QuestionID uuid.UUID `json:"questionId" validate:"required"`
	Answer     *int      `json:"answer" validate:"required,min=0"`
}

// GetQuiz issues a fresh randomized question set.
func (h *QuizHandler) GetQuiz(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.quizUC.IssueQuiz(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// SubmitQuiz grades a submission against an open verification.
func (h *QuizHandler) SubmitQuiz(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubmitQuizRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quiz submission input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SubmitQuizInput{
		VerificationID: req.VerificationID,
		Answers:        make([]usecase.QuizAnswer, 0, len(req.Answers)),
	}
	for _, answer := range req.Answers {
		input.Answers = append(input.Answers, usecase.QuizAnswer{
			QuestionID: answer.QuestionID,
			Answer:     *answer.Answer,
		})
	}

	output, err := h.quizUC.SubmitQuiz(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
