package session

import (
	"testing"
	"time"

	"github.com/areto-app/areto/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestionQuiz(timeLimit *int) *dto.QuizResponseDTO {
	return &dto.QuizResponseDTO{
		ID:        1,
		Title:     "JS Basics",
		TimeLimit: timeLimit,
		QuizQuestions: []dto.QuestionDTO{
			{Question: "2+2?", Options: []string{"3", "4", "5", "6"}, Answer: "4"},
			{Question: "3*3?", Options: []string{"6", "7", "8", "9"}, Answer: "9"},
		},
	}
}

func TestSessionStartsAnsweringFirstQuestion(t *testing.T) {
	s := New(twoQuestionQuiz(nil))

	assert.Equal(t, StateAnswering, s.State())
	assert.Equal(t, 0, s.QuestionIndex())
	assert.Equal(t, "2+2?", s.Question().Question)
	_, timed := s.TimeLeft()
	assert.False(t, timed)
}

func TestSubmitWithoutSelectionFails(t *testing.T) {
	s := New(twoQuestionQuiz(nil))

	assert.ErrorIs(t, s.Submit(), ErrNoSelection)
	assert.Equal(t, StateAnswering, s.State())
	assert.Empty(t, s.Answers())
}

func TestSelectOverwritesPriorSelection(t *testing.T) {
	s := New(twoQuestionQuiz(nil))

	assert.True(t, s.Select("3"))
	assert.True(t, s.Select("4"))
	assert.Equal(t, "4", s.Selected())
}

func TestSubmitRecordsCorrectAnswer(t *testing.T) {
	s := New(twoQuestionQuiz(nil))

	s.Select("4")
	require.NoError(t, s.Submit())

	assert.Equal(t, StateFeedback, s.State())
	answers := s.Answers()
	require.Len(t, answers, 1)
	assert.Equal(t, RecordedAnswer{QuestionIndex: 0, SelectedAnswer: "4", IsCorrect: true}, answers[0])
}

func TestCorrectnessIsExactEquality(t *testing.T) {
	s := New(twoQuestionQuiz(nil))

	// No case or whitespace normalization is applied.
	s.Select(" 4")
	require.NoError(t, s.Submit())
	assert.False(t, s.Answers()[0].IsCorrect)
}

func TestSelectIgnoredDuringFeedback(t *testing.T) {
	s := New(twoQuestionQuiz(nil))

	s.Select("3")
	require.NoError(t, s.Submit())
	assert.False(t, s.Select("4"))
}

func TestNextAdvancesAndFinishes(t *testing.T) {
	s := New(twoQuestionQuiz(nil))

	s.Select("4")
	require.NoError(t, s.Submit())
	finished := s.Next()
	assert.False(t, finished)
	assert.Equal(t, StateAnswering, s.State())
	assert.Equal(t, 1, s.QuestionIndex())
	assert.Empty(t, s.Selected())

	s.Select("9")
	require.NoError(t, s.Submit())
	finished = s.Next()
	assert.True(t, finished)
	assert.Equal(t, StateFinished, s.State())

	answers := s.Answers()
	require.Len(t, answers, 2)
	assert.True(t, answers[0].IsCorrect)
	assert.True(t, answers[1].IsCorrect)
}

func TestCountdownExpiryRecordsIncorrectAndAdvances(t *testing.T) {
	limit := 5
	s := New(twoQuestionQuiz(&limit))

	remaining, timed := s.TimeLeft()
	require.True(t, timed)
	assert.Equal(t, 5, remaining)

	for i := 0; i < 5; i++ {
		s.Tick()
	}

	assert.Equal(t, StateFeedback, s.State())
	assert.True(t, s.Expired())
	answers := s.Answers()
	require.Len(t, answers, 1)
	assert.Equal(t, NoAnswer, answers[0].SelectedAnswer)
	assert.False(t, answers[0].IsCorrect)
}

func TestCountdownExpiryMarksHighlightedOptionIncorrect(t *testing.T) {
	limit := 5
	s := New(twoQuestionQuiz(&limit))

	// Even the right option counts as incorrect when time runs out.
	s.Select("4")
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	answers := s.Answers()
	require.Len(t, answers, 1)
	assert.Equal(t, "4", answers[0].SelectedAnswer)
	assert.False(t, answers[0].IsCorrect)
}

func TestSelectIgnoredAfterExpiry(t *testing.T) {
	limit := 5
	s := New(twoQuestionQuiz(&limit))

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	assert.False(t, s.Select("4"))
}

func TestCountdownResetsPerQuestion(t *testing.T) {
	limit := 10
	s := New(twoQuestionQuiz(&limit))

	s.Tick()
	s.Tick()
	remaining, _ := s.TimeLeft()
	assert.Equal(t, 8, remaining)

	s.Select("4")
	require.NoError(t, s.Submit())
	s.Next()

	remaining, _ = s.TimeLeft()
	assert.Equal(t, 10, remaining)
}

func TestStopwatchRunsAcrossStates(t *testing.T) {
	limit := 10
	s := New(twoQuestionQuiz(&limit))

	s.Tick()
	s.Tick()
	s.Select("4")
	require.NoError(t, s.Submit())

	// Still counting through feedback.
	s.Tick()
	s.Tick()
	assert.Equal(t, 4, s.Elapsed())

	// Countdown did not move during feedback.
	s.Next()
	remaining, _ := s.TimeLeft()
	assert.Equal(t, 10, remaining)
}

func TestStopwatchStopsWhenFinished(t *testing.T) {
	s := New(twoQuestionQuiz(nil))

	s.Select("4")
	require.NoError(t, s.Submit())
	s.Tick()
	s.Next()
	s.Select("9")
	require.NoError(t, s.Submit())
	s.Next()

	elapsed := s.Elapsed()
	s.Tick()
	assert.Equal(t, elapsed, s.Elapsed())
}

func TestResetClearsSessionState(t *testing.T) {
	limit := 10
	s := New(twoQuestionQuiz(&limit))

	s.Tick()
	s.Select("4")
	require.NoError(t, s.Submit())
	s.Next()

	s.Reset()
	assert.Equal(t, StateAnswering, s.State())
	assert.Equal(t, 0, s.QuestionIndex())
	assert.Empty(t, s.Answers())
	assert.Equal(t, 0, s.Elapsed())
	remaining, _ := s.TimeLeft()
	assert.Equal(t, 10, remaining)
}

func TestRunnerStopWithoutStartReturns(t *testing.T) {
	r := NewRunner(New(twoQuestionQuiz(nil)))

	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked without a prior Start")
	}
}

func TestRunnerStopIsIdempotent(t *testing.T) {
	r := NewRunner(New(twoQuestionQuiz(nil)))
	r.Start()
	r.Stop()
	r.Stop()
}
