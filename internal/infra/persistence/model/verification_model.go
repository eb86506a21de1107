package model

import (
	"time"

	"github.com/google/uuid"
)

// VerificationModel mirrors the 'verifications' table. The quiz columns stay
// NULL until grading; graded_at guards the one-shot grading write.
type VerificationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	FanScore       int       `gorm:"not null"`
	QuizScore      *int
	CombinedScore  *int
	QuizPassed     bool `gorm:"not null;default:false"`
	Passed         bool `gorm:"not null;default:false"`
	GradedAt       *time.Time
	VerifiedAt     *time.Time
	PassToken      *string `gorm:"type:text"`
	TokenExpiresAt *time.Time
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerificationModel) TableName() string {
	return "verifications"
}
