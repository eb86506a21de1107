package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuizQuestion is an immutable catalog entry. Questions are seeded once and
// read-only thereafter. CorrectIndex is the 0-based index into Options and
// must never reach a quiz-taking client.
type QuizQuestion struct {
	ID           uuid.UUID
	Question     string
	Options      []string
	CorrectIndex int
	CreatedAt    time.Time
}

// QuizAttempt is an append-only record of one graded submission.
type QuizAttempt struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Score     int // Correct answers, 0-10.
	CreatedAt time.Time
}

// QuestionResult is the per-question review detail returned after grading.
type QuestionResult struct {
	QuestionID   uuid.UUID `json:"questionId"`
	Question     string    `json:"question"`
	Options      []string  `json:"options"`
	CorrectIndex int       `json:"correctIndex"`
	UserAnswer   int       `json:"userAnswer"`
	IsCorrect    bool      `json:"isCorrect"`
}
