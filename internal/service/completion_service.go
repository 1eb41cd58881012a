package service

import (
	"fmt"
	"math"

	"github.com/areto-app/areto/internal/dto"
	"github.com/areto-app/areto/internal/repository"
	"github.com/rs/zerolog/log"
)

// CompletionService folds finished play-throughs into a quiz's running
// statistics. The aggregate is lossy: only the previous mean and play count
// are needed, no per-attempt history is kept.
type CompletionService interface {
	CompleteQuiz(id uint, req dto.QuizCompleteDTO) (*dto.QuizCompleteResponseDTO, error)
}

type completionService struct {
	quizRepo repository.QuizRepository
}

func NewCompletionService(quizRepo repository.QuizRepository) CompletionService {
	return &completionService{quizRepo: quizRepo}
}

func (s *completionService) CompleteQuiz(id uint, req dto.QuizCompleteDTO) (*dto.QuizCompleteResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.TotalQuestions <= 0 {
		return nil, fmt.Errorf("totalQuestions must be positive, got %d", req.TotalQuestions)
	}

	successRate := req.Score / float64(req.TotalQuestions) * 100

	// Increment the play count first, then weight the prior average by the
	// post-increment count minus one. The order matters: weighting by the
	// pre-increment count would silently shift every historical aggregate.
	quiz.TotalPlays++
	currentTotal := quiz.AverageSuccessRate * float64(quiz.TotalPlays-1)
	quiz.AverageSuccessRate = math.Round((currentTotal + successRate) / float64(quiz.TotalPlays))

	if err := s.quizRepo.Save(quiz); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to save quiz statistics")
		return nil, fmt.Errorf("database error completing quiz: %w", err)
	}

	// timeSpent is recorded in the log only; fastestCompletion stays unset.
	log.Info().
		Uint("quizID", id).
		Int("totalPlays", quiz.TotalPlays).
		Float64("averageSuccessRate", quiz.AverageSuccessRate).
		Int("timeSpent", req.TimeSpent).
		Msg("Quiz completion recorded")

	return &dto.QuizCompleteResponseDTO{
		Message: "Quiz completed successfully",
		Quiz: dto.CompletionStatsDTO{
			TotalPlays:         quiz.TotalPlays,
			AverageSuccessRate: int(quiz.AverageSuccessRate),
		},
	}, nil
}
