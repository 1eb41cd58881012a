package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/areto-app/areto/internal/dto"
	"github.com/areto-app/areto/internal/model"
	"github.com/areto-app/areto/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService       service.QuizService
	completionService service.CompletionService
}

func NewQuizController(qs service.QuizService, cs service.CompletionService) *QuizController {
	return &QuizController{quizService: qs, completionService: cs}
}

// ListQuizzes godoc
// @Summary List all quizzes
// @Description Get all quizzes projected to their summary view.
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.ListQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("ListQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error: Could not fetch quizzes."})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary Get a quiz by id
// @Description Get the full quiz document including questions and answers.
// @Tags Quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, err := quizID(ctx)
	if err != nil {
		// A malformed id is a server error, not a 404.
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error: Could not fetch quiz."})
		return
	}

	quiz, err := c.quizService.GetQuiz(id)
	if err != nil {
		if errors.Is(err, model.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", id).Msg("GetQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error: Could not fetch quiz."})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Create a quiz with a title and at least one question.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz to create"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing title or questions"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if req.Title == "" || len(req.QuizQuestions) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Please include a title and at least one question."})
		return
	}

	quiz, err := c.quizService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error: Could not create quiz.", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Description Replace supplied fields of a quiz. Only the creator may edit.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param quiz body dto.QuizUpdateDTO true "Fields to update plus caller userId"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Caller is not the creator"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id, err := quizID(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error: Could not update quiz."})
		return
	}

	var req dto.QuizUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.quizService.UpdateQuiz(id, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrQuizNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
		case errors.Is(err, model.ErrForbidden):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You do not have permission to edit this quiz"})
		default:
			log.Error().Err(err).Uint("quizID", id).Msg("UpdateQuiz: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error: Could not update quiz."})
		}
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Permanently delete a quiz. Only the creator may delete.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param body body dto.QuizDeleteDTO true "Caller userId"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not the creator"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, err := quizID(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error: Could not delete quiz."})
		return
	}

	var req dto.QuizDeleteDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("DeleteQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.quizService.DeleteQuiz(id, req.UserID); err != nil {
		switch {
		case errors.Is(err, model.ErrQuizNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
		case errors.Is(err, model.ErrForbidden):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You do not have permission to delete this quiz"})
		default:
			log.Error().Err(err).Uint("quizID", id).Msg("DeleteQuiz: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error: Could not delete quiz."})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Quiz deleted successfully"})
}

// CompleteQuiz godoc
// @Summary Record a quiz completion
// @Description Fold one finished play-through into the quiz's running statistics.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param completion body dto.QuizCompleteDTO true "Score, question count and time spent"
// @Success 200 {object} dto.QuizCompleteResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id}/complete [post]
func (c *QuizController) CompleteQuiz(ctx *gin.Context) {
	id, err := quizID(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error: Could not complete quiz."})
		return
	}

	var req dto.QuizCompleteDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CompleteQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.completionService.CompleteQuiz(id, req)
	if err != nil {
		if errors.Is(err, model.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", id).Msg("CompleteQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error: Could not complete quiz."})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func quizID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		log.Warn().Str("id", ctx.Param("id")).Msg("Malformed quiz id")
		return 0, model.ErrInvalidID
	}
	return uint(id), nil
}
