package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriviaAPIQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/questions", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		_, _ = w.Write([]byte(`[
			{"id":"a1","category":"film_and_tv","difficulty":"medium","type":"text_choice",
			 "question":{"text":"Who directed Jaws?"},"correctAnswer":"Steven Spielberg",
			 "incorrectAnswers":["George Lucas"]}
		]`))
	}))
	defer srv.Close()

	client := NewTriviaAPIClient(srv.URL+"/", "secret", srv.Client())
	got, err := client.Questions(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Question{
		Category:   "film and tv",
		Difficulty: "medium",
		Text:       "Who directed Jaws?",
		Answer:     "Steven Spielberg",
	}, got[0])
}

func TestTriviaAPIFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-API-Key"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewTriviaAPIClient(srv.URL, "", srv.Client()).Fetch(context.Background(), 1, "", "")
	assert.ErrorContains(t, err, "non-200: 401")
}
