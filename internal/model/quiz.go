package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultIcon is the placeholder glyph for quizzes created without one.
	DefaultIcon = "📝"
	// SystemCreator is the owner recorded when the creating caller supplies none.
	SystemCreator = "system"

	// Per-question time limit bounds, in seconds.
	MinTimeLimit = 5
	MaxTimeLimit = 300

	// OptionCount is the number of options every question must carry.
	OptionCount = 4
)

// Question is a multiple-choice prompt embedded in a quiz. Questions have no
// identity or lifecycle of their own; edits replace the whole list.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Quiz is the sole persisted entity: a titled question list plus running
// statistics. AverageSuccessRate is a lossy running mean; no per-attempt
// history is retained.
type Quiz struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	Title              string     `json:"title" gorm:"not null"`
	Icon               string     `json:"icon"`
	TimeLimit          *int       `json:"timeLimit"` // seconds per question; nil means untimed
	QuizQuestions      []Question `json:"quizQuestions" gorm:"serializer:json"`
	TotalPlays         int        `json:"totalPlays" gorm:"default:0"`
	AverageSuccessRate float64    `json:"averageSuccessRate" gorm:"default:0"`
	FastestCompletion  *float64   `json:"fastestCompletion"` // seconds; nil until someone finishes
	CreatedBy          string     `json:"createdBy" gorm:"not null;index"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ApplyDefaults fills the optional fields the creating caller may omit.
func (q *Quiz) ApplyDefaults() {
	if q.Icon == "" {
		q.Icon = DefaultIcon
	}
	if q.CreatedBy == "" {
		q.CreatedBy = SystemCreator
	}
	if q.TimeLimit != nil && *q.TimeLimit == 0 {
		q.TimeLimit = nil
	}
}

// Validate checks the aggregate invariants. It has no side effects.
func (q *Quiz) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if err := ValidateTimeLimit(q.TimeLimit); err != nil {
		return err
	}
	return ValidateQuestions(q.QuizQuestions)
}

// ValidateTimeLimit accepts nil (untimed) or a value within [MinTimeLimit, MaxTimeLimit].
func ValidateTimeLimit(limit *int) error {
	if limit == nil {
		return nil
	}
	if *limit < MinTimeLimit || *limit > MaxTimeLimit {
		return fmt.Errorf("%w: timeLimit must be between %d and %d seconds, got %d",
			ErrValidation, MinTimeLimit, MaxTimeLimit, *limit)
	}
	return nil
}

// ValidateQuestions requires at least one question, each with a prompt, an
// answer and exactly OptionCount options. Whether the answer matches one of
// the options is by convention only and not enforced here.
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: a quiz must have at least one question", ErrValidation)
	}
	for i, question := range questions {
		if question.Question == "" {
			return fmt.Errorf("%w: question %d is missing its prompt", ErrValidation, i+1)
		}
		if question.Answer == "" {
			return fmt.Errorf("%w: question %d is missing its answer", ErrValidation, i+1)
		}
		if len(question.Options) != OptionCount {
			return fmt.Errorf("%w: question %d must have exactly %d options, got %d",
				ErrValidation, i+1, OptionCount, len(question.Options))
		}
	}
	return nil
}
