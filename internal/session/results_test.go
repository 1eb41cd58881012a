package session

import (
	"context"
	"errors"
	"testing"

	"github.com/areto-app/areto/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerList(correct, incorrect int) []RecordedAnswer {
	var answers []RecordedAnswer
	for i := 0; i < correct; i++ {
		answers = append(answers, RecordedAnswer{QuestionIndex: len(answers), IsCorrect: true})
	}
	for i := 0; i < incorrect; i++ {
		answers = append(answers, RecordedAnswer{QuestionIndex: len(answers)})
	}
	return answers
}

func TestSummarizeComputesPercentage(t *testing.T) {
	summary := Summarize(answerList(1, 2))

	assert.Equal(t, 1, summary.Correct)
	assert.Equal(t, 2, summary.Incorrect)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 33, summary.Percentage)
	assert.False(t, summary.Celebrate)
}

func TestSummarizeCelebratesFromSeventy(t *testing.T) {
	summary := Summarize(answerList(7, 3))
	assert.Equal(t, 70, summary.Percentage)
	assert.True(t, summary.Celebrate)

	summary = Summarize(answerList(69, 31))
	assert.False(t, summary.Celebrate)
}

func TestSummarizePerformanceTiers(t *testing.T) {
	assert.Equal(t, "Outstanding! 🎉", Summarize(answerList(9, 1)).Performance)
	assert.Equal(t, "Great Job! 👏", Summarize(answerList(7, 3)).Performance)
	assert.Equal(t, "Good Effort! 💪", Summarize(answerList(5, 5)).Performance)
	assert.Equal(t, "Keep Practicing! 📚", Summarize(answerList(1, 9)).Performance)
}

func TestSummarizeEmptyAnswers(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.Percentage)
	assert.False(t, summary.Celebrate)
}

type fakeCompleter struct {
	calls int
	last  dto.QuizCompleteDTO
	err   error
}

func (f *fakeCompleter) CompleteQuiz(_ context.Context, _ uint, req dto.QuizCompleteDTO) (*dto.QuizCompleteResponseDTO, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.QuizCompleteResponseDTO{
		Message: "Quiz completed successfully",
		Quiz:    dto.CompletionStatsDTO{TotalPlays: 1, AverageSuccessRate: 50},
	}, nil
}

func TestReporterSubmitsOnce(t *testing.T) {
	completer := &fakeCompleter{}
	reporter := NewReporter(completer)
	answers := answerList(1, 1)

	stats, err := reporter.Report(context.Background(), 7, answers, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalPlays)
	assert.Equal(t, 50, stats.AverageSuccessRate)

	assert.Equal(t, float64(1), completer.last.Score)
	assert.Equal(t, 2, completer.last.TotalQuestions)
	assert.Equal(t, 42, completer.last.TimeSpent)

	// A second report does not resubmit.
	again, err := reporter.Report(context.Background(), 7, answers, 42)
	require.NoError(t, err)
	assert.Equal(t, stats, again)
	assert.Equal(t, 1, completer.calls)
}

func TestReporterRetriesAfterFailure(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("server down")}
	reporter := NewReporter(completer)
	answers := answerList(1, 0)

	_, err := reporter.Report(context.Background(), 7, answers, 10)
	require.Error(t, err)

	completer.err = nil
	_, err = reporter.Report(context.Background(), 7, answers, 10)
	assert.NoError(t, err)
	assert.Equal(t, 2, completer.calls)
}

func TestReporterEmptyAnswersReportsNothing(t *testing.T) {
	completer := &fakeCompleter{}
	reporter := NewReporter(completer)

	_, err := reporter.Report(context.Background(), 7, nil, 0)
	assert.ErrorIs(t, err, ErrNoResults)
	assert.Zero(t, completer.calls)
}
