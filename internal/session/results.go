package session

import (
	"context"
	"errors"
	"math"

	"github.com/areto-app/areto/internal/dto"
)

// CelebrateThreshold is the percentage from which a result is celebrated.
const CelebrateThreshold = 70

// ErrNoResults is returned when there is nothing to report (no active
// session, e.g. direct navigation to the results view).
var ErrNoResults = errors.New("no quiz results found")

// Summary aggregates a finished session's answers.
type Summary struct {
	Correct     int
	Incorrect   int
	Total       int
	Percentage  int
	Celebrate   bool
	Performance string
}

// Summarize computes the score percentage and performance tier for a recorded
// answer list. An empty list yields a zero Summary.
func Summarize(answers []RecordedAnswer) Summary {
	if len(answers) == 0 {
		return Summary{}
	}

	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}

	percentage := int(math.Round(float64(correct) / float64(len(answers)) * 100))
	return Summary{
		Correct:     correct,
		Incorrect:   len(answers) - correct,
		Total:       len(answers),
		Percentage:  percentage,
		Celebrate:   percentage >= CelebrateThreshold,
		Performance: performanceMessage(percentage),
	}
}

func performanceMessage(percentage int) string {
	switch {
	case percentage >= 90:
		return "Outstanding! 🎉"
	case percentage >= 70:
		return "Great Job! 👏"
	case percentage >= 50:
		return "Good Effort! 💪"
	default:
		return "Keep Practicing! 📚"
	}
}

// Completer is the slice of the API client the reporter needs.
type Completer interface {
	CompleteQuiz(ctx context.Context, id uint, req dto.QuizCompleteDTO) (*dto.QuizCompleteResponseDTO, error)
}

// Reporter submits a session's completion to the service exactly once.
type Reporter struct {
	completer Completer
	submitted bool
	stats     *dto.CompletionStatsDTO
}

func NewReporter(completer Completer) *Reporter {
	return &Reporter{completer: completer}
}

// Report submits the completion for the given answers and elapsed time.
// Repeat calls return the stats from the first submission without hitting the
// service again. An empty answer list reports nothing and returns
// ErrNoResults.
func (r *Reporter) Report(ctx context.Context, quizID uint, answers []RecordedAnswer, elapsedSeconds int) (*dto.CompletionStatsDTO, error) {
	if len(answers) == 0 {
		return nil, ErrNoResults
	}
	if r.submitted {
		return r.stats, nil
	}

	summary := Summarize(answers)
	resp, err := r.completer.CompleteQuiz(ctx, quizID, dto.QuizCompleteDTO{
		Score:          float64(summary.Correct),
		TotalQuestions: summary.Total,
		TimeSpent:      elapsedSeconds,
	})
	if err != nil {
		return nil, err
	}

	r.submitted = true
	r.stats = &resp.Quiz
	return r.stats, nil
}
