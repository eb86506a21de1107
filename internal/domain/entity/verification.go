package entity

import (
	"time"

	"github.com/google/uuid"
)

// Verification tracks one user's attempt through the gate: listening score,
// quiz grading, and credential issuance. A verification is created with the
// fan score only; the quiz fields are written exactly once by the grading
// step, and the pass-token fields at most once more by the credential issuer.
//
// QuizPassed is the quiz's own 7/10 bar. Passed is the combined verdict that
// actually gates credential issuance. The two are independent: a strong
// listening score can carry a failed quiz across the combined bar.
type Verification struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	FanScore       int        // Listening score, 0-200.
	QuizScore      *int       // Correct answers out of 10. Nil until graded.
	CombinedScore  *int       // Weighted blend of fan score and quiz percentage. Nil until graded.
	QuizPassed     bool       // Quiz-only bar: QuizScore >= 7.
	Passed         bool       // Combined verdict: CombinedScore >= 70. Gates credential issuance.
	GradedAt       *time.Time // Set exactly once when a submission wins the grading race.
	VerifiedAt     *time.Time // Set only when the combined verdict is a pass.
	PassToken      *string    // Signed short-lived credential. Never set unless Passed.
	TokenExpiresAt *time.Time // Absolute expiry of PassToken. Always set together with it.
	CreatedAt      time.Time
}

// Graded reports whether a quiz submission has already been recorded.
func (v *Verification) Graded() bool {
	return v.GradedAt != nil
}

// HasValidToken reports whether a pass token exists and has not expired.
func (v *Verification) HasValidToken(now time.Time) bool {
	return v.PassToken != nil && v.TokenExpiresAt != nil && v.TokenExpiresAt.After(now)
}
