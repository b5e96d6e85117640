package trivia

import (
	"math"
	"strconv"
	"strings"
)

// maxPage keeps (page-1)*QuestionsPerPage inside an int32 offset.
const maxPage = math.MaxInt32/QuestionsPerPage + 1

// ParsePage reads the page query parameter. Missing, non-integer and
// non-positive values fall back to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// pageBounds returns the row offset of page and whether it can hold any rows.
func pageBounds(page int) (offset int, ok bool) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		return 0, false
	}
	return (page - 1) * QuestionsPerPage, true
}
