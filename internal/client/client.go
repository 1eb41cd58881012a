package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/areto-app/areto/internal/dto"
)

// APIError carries a non-2xx response from the quiz service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// Client is a typed HTTP client for the quiz service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

func (c *Client) ListQuizzes(ctx context.Context) ([]dto.QuizSummaryDTO, error) {
	var quizzes []dto.QuizSummaryDTO
	if err := c.do(ctx, http.MethodGet, "/quizzes", nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (c *Client) GetQuiz(ctx context.Context, id uint) (*dto.QuizResponseDTO, error) {
	var quiz dto.QuizResponseDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/quizzes/%d", id), nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) CreateQuiz(ctx context.Context, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	var quiz dto.QuizResponseDTO
	if err := c.do(ctx, http.MethodPost, "/quizzes", req, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) UpdateQuiz(ctx context.Context, id uint, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error) {
	var quiz dto.QuizResponseDTO
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/quizzes/%d", id), req, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) DeleteQuiz(ctx context.Context, id uint, userID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/quizzes/%d", id), dto.QuizDeleteDTO{UserID: userID}, nil)
}

func (c *Client) CompleteQuiz(ctx context.Context, id uint, req dto.QuizCompleteDTO) (*dto.QuizCompleteResponseDTO, error) {
	var result dto.QuizCompleteResponseDTO
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/quizzes/%d/complete", id), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
