package scoring

import "math"

// Blend weights and bars of the combined verdict.
const (
	fanScoreWeight = 0.4
	quizWeight     = 0.6
	quizLength     = 10
	QuizPassBar    = 7  // Correct answers needed to pass the quiz on its own.
	CombinedBar    = 70 // Combined score needed for the overall verdict.
)

// Decision is the final verdict for one quiz submission.
type Decision struct {
	CombinedScore int
	QuizPassed    bool
	Passed        bool
}

// Decide blends a listening score and a graded quiz into the final verdict.
// The quiz result is normalized to a percentage, the listening score is used
// raw, and the blend rounds half away from zero. A perfect quiz with a zero
// listening score lands at 60 and fails; the verdict intentionally requires
// listening history to carry part of the weight.
func Decide(fanScore, correctCount int) Decision {
	quizPct := float64(correctCount) / float64(quizLength) * 100
	combined := int(math.Round(float64(fanScore)*fanScoreWeight + quizPct*quizWeight))

	return Decision{
		CombinedScore: combined,
		QuizPassed:    correctCount >= QuizPassBar,
		Passed:        combined >= CombinedBar,
	}
}
