package service

import (
	"fmt"
	"math"

	"github.com/areto-app/areto/internal/dto"
	"github.com/areto-app/areto/internal/model"
	"github.com/areto-app/areto/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	ListQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuiz(id uint) (*dto.QuizResponseDTO, error)
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	UpdateQuiz(id uint, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error)
	DeleteQuiz(id uint, callerID string) error
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) ListQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch quizzes from repository")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, quiz := range quizzes {
		var summary dto.QuizSummaryDTO
		if err := copier.Copy(&summary, &quiz); err != nil {
			return nil, fmt.Errorf("error preparing quiz summary: %w", err)
		}
		summary.AverageSuccessRate = int(math.Round(quiz.AverageSuccessRate))
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *quizService) GetQuiz(id uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toQuizResponse(quiz)
}

func (s *quizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	quiz := model.Quiz{
		Title:     req.Title,
		Icon:      req.Icon,
		CreatedBy: req.CreatedBy,
		TimeLimit: req.TimeLimit,
	}
	if err := copier.Copy(&quiz.QuizQuestions, &req.QuizQuestions); err != nil {
		return nil, fmt.Errorf("error reading questions: %w", err)
	}

	quiz.ApplyDefaults()
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if err := s.quizRepo.Insert(&quiz); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz in database")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	log.Info().Uint("quizID", quiz.ID).Str("createdBy", quiz.CreatedBy).Msg("Quiz created")
	return toQuizResponse(&quiz)
}

func (s *quizService) UpdateQuiz(id uint, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if quiz.CreatedBy != req.UserID {
		return nil, model.ErrForbidden
	}

	// Absent fields keep their stored values. Title only changes when
	// non-empty; an explicit empty icon replaces the old one.
	if req.Title != "" {
		quiz.Title = req.Title
	}
	if req.Icon != nil {
		quiz.Icon = *req.Icon
	}
	if req.QuizQuestions != nil {
		quiz.QuizQuestions = nil
		if err := copier.Copy(&quiz.QuizQuestions, &req.QuizQuestions); err != nil {
			return nil, fmt.Errorf("error reading questions: %w", err)
		}
	}
	if req.TimeLimit != nil {
		quiz.TimeLimit = req.TimeLimit
	}

	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if err := s.quizRepo.Save(quiz); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to update quiz in database")
		return nil, fmt.Errorf("database error updating quiz: %w", err)
	}
	return toQuizResponse(quiz)
}

func (s *quizService) DeleteQuiz(id uint, callerID string) error {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return err
	}
	if quiz.CreatedBy != callerID {
		return model.ErrForbidden
	}

	if err := s.quizRepo.DeleteByID(id); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to delete quiz from database")
		return fmt.Errorf("database error deleting quiz: %w", err)
	}

	log.Info().Uint("quizID", id).Str("deletedBy", callerID).Msg("Quiz deleted")
	return nil
}

func toQuizResponse(quiz *model.Quiz) (*dto.QuizResponseDTO, error) {
	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}
