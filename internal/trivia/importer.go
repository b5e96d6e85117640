package trivia

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/trivia/external"
)

type questionSource interface {
	Questions(ctx context.Context, amount int) ([]external.Question, error)
}

type questionWriter interface {
	Create(ctx context.Context, q *repository.Question) error
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Importer copies upstream questions into the local store, filing each one
// under the local category whose label appears in the upstream category name.
type Importer struct {
	name       string
	source     questionSource
	questions  questionWriter
	categories categoryStore
	logger     zerolog.Logger
}

func NewImporter(name string, source questionSource, questions questionWriter, categories categoryStore, logger zerolog.Logger) *Importer {
	return &Importer{
		name:       name,
		source:     source,
		questions:  questions,
		categories: categories,
		logger:     logger.With().Str("component", "importer").Str("source", name).Logger(),
	}
}

// Run fetches amount questions and stores those that map to a known category.
func (i *Importer) Run(ctx context.Context, amount int) (ImportResult, error) {
	var result ImportResult

	cats, err := i.categories.List(ctx)
	if err != nil {
		return result, fmt.Errorf("list categories: %w", err)
	}
	if len(cats) == 0 {
		return result, fmt.Errorf("no local categories to import into")
	}

	upstream, err := i.source.Questions(ctx, amount)
	if err != nil {
		return result, fmt.Errorf("fetch %s: %w", i.name, err)
	}

	for _, q := range upstream {
		cat, ok := matchCategory(cats, q.Category)
		if !ok || q.Text == "" || q.Answer == "" {
			result.Skipped++
			i.logger.Debug().Str("category", q.Category).Msg("skipping unmapped question")
			continue
		}
		row := repository.Question{
			Question:   q.Text,
			Answer:     q.Answer,
			Category:   NewCategoryRef(cat.ID).String(),
			Difficulty: difficultyScore(q.Difficulty),
		}
		if err := i.questions.Create(ctx, &row); err != nil {
			return result, fmt.Errorf("insert question: %w", err)
		}
		result.Imported++
	}

	i.logger.Info().Int("imported", result.Imported).Int("skipped", result.Skipped).Msg("import finished")
	return result, nil
}

// matchCategory files an upstream category under the local label whose words
// appear as whole words in the upstream name. The earliest match wins, so
// "Entertainment: Cartoon & Animations" goes to Entertainment and never to Art.
func matchCategory(cats []repository.Category, upstream string) (repository.Category, bool) {
	words := categoryWords(upstream)
	best, bestPos := repository.Category{}, -1
	for _, c := range cats {
		label := categoryWords(c.Type)
		if len(label) == 0 {
			continue
		}
		if pos := indexWords(words, label); pos >= 0 && (bestPos < 0 || pos < bestPos) {
			best, bestPos = c, pos
		}
	}
	return best, bestPos >= 0
}

func categoryWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// indexWords returns the position of needle as a contiguous run in words, or -1.
func indexWords(words, needle []string) int {
	for i := 0; i+len(needle) <= len(words); i++ {
		if slices.Equal(words[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func difficultyScore(level string) int {
	switch strings.ToLower(level) {
	case "medium":
		return 2
	case "hard":
		return 3
	default:
		return 1
	}
}
