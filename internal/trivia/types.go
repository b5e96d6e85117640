package trivia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// QuestionsPerPage is the fixed page size of GET /questions.
const QuestionsPerPage = 10

// Question is the wire representation of a stored question.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionPage is one page of GET /questions.
type QuestionPage struct {
	Questions  []Question
	Total      int64
	Categories map[int]string
}

// CategoryRef identifies a category in request bodies. Clients send it either
// as a JSON number or as a string; it is kept in the decimal text form the
// questions table stores.
type CategoryRef struct {
	value string
	set   bool
}

// NewCategoryRef builds a reference from a category id.
func NewCategoryRef(id int) CategoryRef {
	return CategoryRef{value: strconv.Itoa(id), set: true}
}

func (c CategoryRef) String() string { return c.value }

// Present reports whether the field was sent with a non-null value.
func (c CategoryRef) Present() bool { return c.set }

// Empty reports whether the reference is missing or falsy ("" or 0).
func (c CategoryRef) Empty() bool { return !c.set || c.value == "" || c.value == "0" }

// IsAll reports whether the reference is the quiz sentinel meaning every category.
func (c CategoryRef) IsAll() bool { return c.set && c.value == "0" }

func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = CategoryRef{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CategoryRef{value: strings.TrimSpace(s), set: true}
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("category must be an integer or string, got %s", data)
	}
	*c = NewCategoryRef(n)
	return nil
}

func (c CategoryRef) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte("null"), nil
	}
	return json.Marshal(c.value)
}

// Difficulty accepts a JSON number or a numeric string.
type Difficulty int

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("difficulty must be an integer, got %s", data)
	}
	*d = Difficulty(n)
	return nil
}

// CreateQuestionRequest is the body of POST /questions.
type CreateQuestionRequest struct {
	Question   string      `json:"question"`
	Answer     string      `json:"answer"`
	Category   CategoryRef `json:"category"`
	Difficulty Difficulty  `json:"difficulty"`
}

// SearchTerm accepts a JSON string or number. Numbers are searched as their
// literal text.
type SearchTerm string

func (s *SearchTerm) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = SearchTerm(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("searchTerm must be a string or number, got %s", data)
	}
	*s = SearchTerm(n.String())
	return nil
}

// SearchRequest is the body of POST /questions/search.
type SearchRequest struct {
	SearchTerm SearchTerm `json:"searchTerm"`
}

// QuizCategory is the quiz_category object of POST /quizzes.
type QuizCategory struct {
	ID   CategoryRef `json:"id"`
	Type string      `json:"type,omitempty"`
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []int         `json:"previous_questions"`
}
