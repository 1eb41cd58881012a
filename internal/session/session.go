package session

import (
	"errors"
	"sync"

	"github.com/areto-app/areto/internal/dto"
)

// State is the quiz-taking position: answering the current question, viewing
// its feedback, or done.
type State int

const (
	StateAnswering State = iota
	StateFeedback
	StateFinished
)

// NoAnswer is recorded when the countdown expires before a selection is made.
const NoAnswer = "No answer"

// ErrNoSelection is returned by Submit when no option has been chosen.
var ErrNoSelection = errors.New("please select an answer")

// RecordedAnswer is one entry of the session's answer list.
type RecordedAnswer struct {
	QuestionIndex  int    `json:"questionIndex"`
	SelectedAnswer string `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// Session is the quiz-taking state machine. It owns two timers: a per-question
// countdown and a whole-session stopwatch, both advanced by Tick once per
// second (normally by a Runner). All state is held here explicitly; there is
// no ambient shared session.
type Session struct {
	mu sync.Mutex

	quiz     *dto.QuizResponseDTO
	state    State
	index    int
	selected string
	expired  bool
	answers  []RecordedAnswer

	countdown *Countdown
	stopwatch *Stopwatch
}

func New(quiz *dto.QuizResponseDTO) *Session {
	limit := 0
	if quiz.TimeLimit != nil {
		limit = *quiz.TimeLimit
	}
	return &Session{
		quiz:      quiz,
		state:     StateAnswering,
		countdown: NewCountdown(limit),
		stopwatch: NewStopwatch(),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) QuestionIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Question returns the current question.
func (s *Session) Question() dto.QuestionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz.QuizQuestions[s.index]
}

func (s *Session) QuestionCount() int {
	return len(s.quiz.QuizQuestions)
}

func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// TimeLeft reports the countdown's remaining seconds; ok is false for an
// untimed quiz.
func (s *Session) TimeLeft() (remaining int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countdown.Disabled() {
		return 0, false
	}
	return s.countdown.Remaining(), true
}

func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopwatch.Elapsed()
}

func (s *Session) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

// Answers returns a copy of the recorded answer list, one entry per question
// answered so far.
func (s *Session) Answers() []RecordedAnswer {
	s.mu.Lock()
	defer s.mu.Unlock()
	answers := make([]RecordedAnswer, len(s.answers))
	copy(answers, s.answers)
	return answers
}

// Select chooses an option, overwriting any prior selection for this
// question. It does nothing once feedback is shown or the countdown has
// expired; the return value reports whether the selection was taken.
func (s *Session) Select(option string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAnswering || s.expired {
		return false
	}
	s.selected = option
	return true
}

// Submit records the chosen answer and moves to feedback. Correctness is
// exact string equality with the stored answer, no normalization.
func (s *Session) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAnswering {
		return nil
	}
	if s.selected == "" {
		return ErrNoSelection
	}

	s.answers = append(s.answers, RecordedAnswer{
		QuestionIndex:  s.index,
		SelectedAnswer: s.selected,
		IsCorrect:      s.selected == s.quiz.QuizQuestions[s.index].Answer,
	})
	s.state = StateFeedback
	return nil
}

// Tick advances both timers by one second. The stopwatch runs regardless of
// state; the countdown only counts while answering. An expiring countdown
// records the current selection (or NoAnswer) as incorrect and forces
// feedback.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopwatch.Tick()

	if s.state != StateAnswering {
		return
	}
	if s.countdown.Tick() {
		selected := s.selected
		if selected == "" {
			selected = NoAnswer
		}
		// A timeout is always incorrect, even if the right option was
		// highlighted but never submitted.
		s.answers = append(s.answers, RecordedAnswer{
			QuestionIndex:  s.index,
			SelectedAnswer: selected,
			IsCorrect:      false,
		})
		s.expired = true
		s.state = StateFeedback
	}
}

// Next leaves feedback for the next question, or finishes the session after
// the last one. It reports whether the session is now finished.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateFeedback {
		return s.state == StateFinished
	}

	if s.index == len(s.quiz.QuizQuestions)-1 {
		s.state = StateFinished
		s.stopwatch.Stop()
		s.countdown.Stop()
		return true
	}

	s.index++
	s.selected = ""
	s.expired = false
	s.countdown.Reset()
	s.state = StateAnswering
	return false
}

// Reset returns the session to the first question with no recorded answers
// and both timers rearmed.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnswering
	s.index = 0
	s.selected = ""
	s.expired = false
	s.answers = nil
	s.countdown.Reset()
	s.stopwatch.Reset()
}
