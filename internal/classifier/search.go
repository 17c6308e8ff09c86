package classifier

import (
	"sort"
	"strings"

	"github.com/iwvelando/fintrack/internal/model"
)

const (
	exactMatchScore   = 1.0
	partialMatchScore = 0.5
)

// Score rates how well text matches the query tokens. Each query token found
// among the text tokens adds 1, and every (query token, text token) pair where
// one contains the other adds 0.5, so an exact match also earns the partial
// bonus.
func Score(queryWords []string, text string) float64 {
	itemWords := Tokenize(text)
	score := 0.0

	for _, queryWord := range queryWords {
		for _, itemWord := range itemWords {
			if itemWord == queryWord {
				score += exactMatchScore
				break
			}
		}
		for _, itemWord := range itemWords {
			if strings.Contains(itemWord, queryWord) || strings.Contains(queryWord, itemWord) {
				score += partialMatchScore
			}
		}
	}
	return score
}

// Search ranks items by lexical overlap between query and the text returned
// by text for each item, best first. Items with equal scores keep their input
// order. When the query has no tokens the input slice is returned as is.
func Search[T any](items []T, query string, text func(T) string) []T {
	queryWords := Tokenize(query)
	if len(queryWords) == 0 {
		return items
	}

	type scored struct {
		item  T
		score float64
	}
	ranked := make([]scored, len(items))
	for i, item := range items {
		ranked[i] = scored{item: item, score: Score(queryWords, text(item))}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	result := make([]T, len(ranked))
	for i, r := range ranked {
		result[i] = r.item
	}
	return result
}

// SearchRecords ranks ledger records by their search text.
func SearchRecords(records []model.Record, query string) []model.Record {
	return Search(records, query, model.Record.SearchText)
}
