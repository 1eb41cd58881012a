package dto

import "time"

// QuestionDTO carries one multiple-choice question over the wire.
type QuestionDTO struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// QuizCreateDTO is the request body for creating a quiz.
type QuizCreateDTO struct {
	Title         string        `json:"title"`
	Icon          string        `json:"icon"`
	QuizQuestions []QuestionDTO `json:"quizQuestions"`
	CreatedBy     string        `json:"createdBy"`
	TimeLimit     *int          `json:"timeLimit"`
}

// QuizUpdateDTO is the request body for editing a quiz. Absent fields keep
// their stored values: an empty title keeps the old title, a nil icon keeps
// the old icon (while an explicit "" replaces it), nil questions keep the old
// list, nil timeLimit keeps the old limit.
type QuizUpdateDTO struct {
	Title         string        `json:"title"`
	Icon          *string       `json:"icon,omitempty"`
	QuizQuestions []QuestionDTO `json:"quizQuestions,omitempty"`
	TimeLimit     *int          `json:"timeLimit,omitempty"`
	UserID        string        `json:"userId"`
}

// QuizDeleteDTO carries the caller identity for a delete.
type QuizDeleteDTO struct {
	UserID string `json:"userId"`
}

// QuizCompleteDTO reports one finished play-through of a quiz.
type QuizCompleteDTO struct {
	Score          float64 `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	TimeSpent      int     `json:"timeSpent"`
	UserID         string  `json:"userId"`
}

// QuizResponseDTO is the full quiz document returned to callers.
type QuizResponseDTO struct {
	ID                 uint          `json:"id"`
	Title              string        `json:"title"`
	Icon               string        `json:"icon"`
	TimeLimit          *int          `json:"timeLimit"`
	QuizQuestions      []QuestionDTO `json:"quizQuestions"`
	TotalPlays         int           `json:"totalPlays"`
	AverageSuccessRate float64       `json:"averageSuccessRate"`
	FastestCompletion  *float64      `json:"fastestCompletion"`
	CreatedBy          string        `json:"createdBy"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// QuizSummaryDTO is the fixed-field projection used by the quiz list.
type QuizSummaryDTO struct {
	ID                 uint          `json:"id"`
	Title              string        `json:"title"`
	Icon               string        `json:"icon"`
	QuizQuestions      []QuestionDTO `json:"quizQuestions"`
	TotalPlays         int           `json:"totalPlays"`
	AverageSuccessRate int           `json:"averageSuccessRate"`
	CreatedAt          time.Time     `json:"createdAt"`
	CreatedBy          string        `json:"createdBy"`
}

// CompletionStatsDTO is the statistics slice returned after a completion.
type CompletionStatsDTO struct {
	TotalPlays         int `json:"totalPlays"`
	AverageSuccessRate int `json:"averageSuccessRate"`
}

// QuizCompleteResponseDTO acknowledges a recorded completion.
type QuizCompleteResponseDTO struct {
	Message string             `json:"message"`
	Quiz    CompletionStatsDTO `json:"quiz"`
}
