package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTDBFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api.php", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("amount"))
		assert.Equal(t, "17", r.URL.Query().Get("category"))
		assert.Equal(t, "easy", r.URL.Query().Get("difficulty"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response_code":0,"results":[
			{"category":"Science &amp; Nature","type":"multiple","difficulty":"easy",
			 "question":"What is &quot;H2O&quot;?","correct_answer":"Water","incorrect_answers":["Salt","Air","Fire"]}
		]}`))
	}))
	defer srv.Close()

	client := NewOpenTDBClient(srv.URL, srv.Client())
	got, err := client.Fetch(context.Background(), 2, 17, "easy")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Science & Nature", got[0].Category)
	assert.Equal(t, `What is "H2O"?`, got[0].Question)
	assert.Equal(t, "Water", got[0].CorrectAnswer)
}

func TestOpenTDBFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("amount") == "500" {
			_, _ = w.Write([]byte(`{"response_code":2,"results":[]}`))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewOpenTDBClient(srv.URL, srv.Client())

	_, err := client.Fetch(context.Background(), 500, 0, "")
	assert.ErrorContains(t, err, "response code 2")

	_, err = client.Fetch(context.Background(), 1, 0, "")
	assert.ErrorContains(t, err, "non-200")
}

func TestOpenTDBQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("category"))
		_, _ = w.Write([]byte(`{"response_code":0,"results":[
			{"category":"History","type":"boolean","difficulty":"hard",
			 "question":"Rome fell in 476?","correct_answer":"True","incorrect_answers":["False"]}
		]}`))
	}))
	defer srv.Close()

	got, err := NewOpenTDBClient(srv.URL, srv.Client()).Questions(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []Question{{Category: "History", Difficulty: "hard", Text: "Rome fell in 476?", Answer: "True"}}, got)
}
