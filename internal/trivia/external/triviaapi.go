package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TriviaAPIClient integrates with the-trivia-api.com. The API key is optional.
type TriviaAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewTriviaAPIClient(baseURL, apiKey string, httpClient *http.Client) *TriviaAPIClient {
	if baseURL == "" {
		baseURL = "https://the-trivia-api.com/v2"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &TriviaAPIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type TriviaAPIText struct {
	Text string `json:"text"`
}

type TriviaAPIQuestion struct {
	ID         string        `json:"id"`
	Category   string        `json:"category"`
	Question   TriviaAPIText `json:"question"`
	Difficulty string        `json:"difficulty"`
	Type       string        `json:"type"`
	Correct    string        `json:"correctAnswer"`
	Incorrect  []string      `json:"incorrectAnswers"`
}

// Fetch requests up to limit questions. Empty category or difficulty means any.
func (c *TriviaAPIClient) Fetch(ctx context.Context, limit int, category, difficulty string) ([]TriviaAPIQuestion, error) {
	values := url.Values{}
	values.Set("limit", fmt.Sprint(limit))
	if category != "" {
		values.Set("categories", category)
	}
	if difficulty != "" {
		values.Set("difficulties", difficulty)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/questions?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("triviaapi non-200: %d", resp.StatusCode)
	}

	var payload []TriviaAPIQuestion
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Questions fetches amount questions of any category and difficulty.
// Category slugs such as "film_and_tv" are turned into words so they can be
// matched against local labels.
func (c *TriviaAPIClient) Questions(ctx context.Context, amount int) ([]Question, error) {
	rows, err := c.Fetch(ctx, amount, "", "")
	if err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(rows))
	for _, r := range rows {
		out = append(out, Question{
			Category:   strings.ReplaceAll(r.Category, "_", " "),
			Difficulty: r.Difficulty,
			Text:       r.Question.Text,
			Answer:     r.Correct,
		})
	}
	return out, nil
}
