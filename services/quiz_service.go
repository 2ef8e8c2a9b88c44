package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"lp-maker/lpmaker/models"
)

type QuizServiceInterface interface {
	GetQuizByIDOrSlug(identifier string) (*models.Quiz, error)
}

// QuizService looks quiz definitions up in the external quiz platform.
// The identifier may be a numeric id or a slug; the remote API accepts
// both on the same path.
type QuizService struct {
	baseURL string
	client  *http.Client
}

var QuizServiceInstance QuizServiceInterface

func NewQuizService(baseURL string) *QuizService {
	return &QuizService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *QuizService) GetQuizByIDOrSlug(identifier string) (*models.Quiz, error) {
	if identifier == "" {
		return nil, ErrInvalidInput
	}
	if s.baseURL == "" {
		return nil, ErrQuizNotFound
	}

	resp, err := s.client.Get(s.baseURL + "/api/quizzes/" + url.PathEscape(identifier))
	if err != nil {
		return nil, fmt.Errorf("quiz lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrQuizNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quiz lookup failed: status %d", resp.StatusCode)
	}

	var quiz models.Quiz
	if err := json.NewDecoder(resp.Body).Decode(&quiz); err != nil {
		return nil, fmt.Errorf("quiz lookup failed: %w", err)
	}
	return &quiz, nil
}
