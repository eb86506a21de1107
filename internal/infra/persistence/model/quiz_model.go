package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizQuestionModel mirrors the 'quiz_questions' table. Options are stored
// as a JSON array via the GORM serializer.
type QuizQuestionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Question     string    `gorm:"type:text;not null"`
	Options      []string  `gorm:"serializer:json;type:jsonb;not null"`
	CorrectIndex int       `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}

// QuizAttemptModel mirrors the 'quiz_attempts' table, an append-only log of
// graded submissions.
type QuizAttemptModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Score     int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}
