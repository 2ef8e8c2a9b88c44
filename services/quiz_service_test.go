package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuizByIDOrSlug_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quizzes/plan-match", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"slug":"plan-match","title":"Which plan fits you?","questions":[{"id":1,"text":"Team size?","choices":["Just me","2-10"]}]}`))
	}))
	defer server.Close()

	service := NewQuizService(server.URL)
	quiz, err := service.GetQuizByIDOrSlug("plan-match")

	require.NoError(t, err)
	assert.Equal(t, "Which plan fits you?", quiz.Title)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Team size?", quiz.Questions[0].Text)
	assert.Equal(t, []string{"Just me", "2-10"}, quiz.Questions[0].Choices)
}

func TestGetQuizByIDOrSlug_NumericIdentifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quizzes/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"title":"Quiz"}`))
	}))
	defer server.Close()

	service := NewQuizService(server.URL)
	quiz, err := service.GetQuizByIDOrSlug("7")

	require.NoError(t, err)
	assert.Equal(t, 7, quiz.ID)
}

func TestGetQuizByIDOrSlug_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	service := NewQuizService(server.URL)
	_, err := service.GetQuizByIDOrSlug("missing")

	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestGetQuizByIDOrSlug_Unconfigured(t *testing.T) {
	service := NewQuizService("")
	_, err := service.GetQuizByIDOrSlug("plan-match")
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestGetQuizByIDOrSlug_EmptyIdentifier(t *testing.T) {
	service := NewQuizService("http://localhost:1")
	_, err := service.GetQuizByIDOrSlug("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
