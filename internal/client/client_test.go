package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/areto-app/areto/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuizDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/quizzes/7", r.URL.Path)
		json.NewEncoder(w).Encode(dto.QuizResponseDTO{
			ID:    7,
			Title: "JS Basics",
			QuizQuestions: []dto.QuestionDTO{
				{Question: "2+2?", Options: []string{"3", "4", "5", "6"}, Answer: "4"},
			},
		})
	}))
	defer server.Close()

	api := New(server.URL, nil)
	quiz, err := api.GetQuiz(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "JS Basics", quiz.Title)
	require.Len(t, quiz.QuizQuestions, 1)
}

func TestErrorResponsesBecomeAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Message: "Quiz not found"})
	}))
	defer server.Close()

	api := New(server.URL, nil)
	_, err := api.GetQuiz(context.Background(), 999)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Quiz not found", apiErr.Message)
}

func TestCompleteQuizPostsPayload(t *testing.T) {
	var got dto.QuizCompleteDTO
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/quizzes/7/complete", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(dto.QuizCompleteResponseDTO{
			Message: "Quiz completed successfully",
			Quiz:    dto.CompletionStatsDTO{TotalPlays: 1, AverageSuccessRate: 50},
		})
	}))
	defer server.Close()

	api := New(server.URL, nil)
	resp, err := api.CompleteQuiz(context.Background(), 7, dto.QuizCompleteDTO{Score: 1, TotalQuestions: 2, TimeSpent: 30})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Quiz.TotalPlays)
	assert.Equal(t, float64(1), got.Score)
	assert.Equal(t, 2, got.TotalQuestions)
	assert.Equal(t, 30, got.TimeSpent)
}

func TestDeleteQuizSendsUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		var req dto.QuizDeleteDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user-1", req.UserID)
		json.NewEncoder(w).Encode(dto.MessageResponse{Message: "Quiz deleted successfully"})
	}))
	defer server.Close()

	api := New(server.URL, nil)
	assert.NoError(t, api.DeleteQuiz(context.Background(), 7, "user-1"))
}

func TestCreateQuizPostsBodyAndDecodesQuiz(t *testing.T) {
	var got dto.QuizCreateDTO
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/quizzes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.QuizResponseDTO{ID: 12, Title: got.Title, Icon: "🧠"})
	}))
	defer server.Close()

	limit := 30
	api := New(server.URL, nil)
	quiz, err := api.CreateQuiz(context.Background(), dto.QuizCreateDTO{
		Title: "Go Basics",
		Icon:  "🧠",
		QuizQuestions: []dto.QuestionDTO{
			{Question: "Zero value of int?", Options: []string{"0", "1", "nil", "-1"}, Answer: "0"},
		},
		CreatedBy: "user-1",
		TimeLimit: &limit,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(12), quiz.ID)
	assert.Equal(t, "Go Basics", got.Title)
	assert.Equal(t, "user-1", got.CreatedBy)
	require.NotNil(t, got.TimeLimit)
	assert.Equal(t, 30, *got.TimeLimit)
}

func TestUpdateQuizOmitsUnsetFields(t *testing.T) {
	var got map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/quizzes/7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(dto.QuizResponseDTO{ID: 7, Title: "Renamed"})
	}))
	defer server.Close()

	api := New(server.URL, nil)
	quiz, err := api.UpdateQuiz(context.Background(), 7, dto.QuizUpdateDTO{
		Title:  "Renamed",
		UserID: "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", quiz.Title)

	// Untouched fields stay off the wire so the service keeps its stored
	// values instead of seeing explicit nulls.
	assert.Contains(t, got, "title")
	assert.Contains(t, got, "userId")
	assert.NotContains(t, got, "icon")
	assert.NotContains(t, got, "quizQuestions")
	assert.NotContains(t, got, "timeLimit")
}
