// Package classifier provides a multinomial Naive Bayes text classifier for
// ledger descriptions and a lexical overlap search over arbitrary records.
package classifier

import (
	"math"
	"regexp"
	"strings"
	"sync"
)

// TrainingItem is one labelled document.
type TrainingItem struct {
	Text     string `json:"text" yaml:"text" mapstructure:"text"`
	Category string `json:"category" yaml:"category" mapstructure:"category"`
}

var nonWord = regexp.MustCompile(`[^\w\s\v\p{Z}]`)

// Tokenize lowercases text, strips characters that are neither word
// characters nor whitespace, and splits on whitespace.
func Tokenize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), "")
	return strings.Fields(cleaned)
}

// Searcher is a trainable Naive Bayes classifier. The zero value is not
// usable; construct one with New. A Searcher is safe for concurrent use.
type Searcher struct {
	mu sync.RWMutex

	vocabulary         map[string]struct{}
	categoryWordCounts map[string]map[string]int
	categoryWordTotals map[string]int
	categoryCounts     map[string]int
	categories         []string // in order of first training
	totalDocuments     int
}

// New returns an untrained Searcher.
func New() *Searcher {
	s := &Searcher{}
	s.reset()
	return s
}

// Train adds labelled documents to the model. Training is cumulative: every
// call adds to the word counts, category counts and document total left by
// earlier calls. Use Reset to start over.
func (s *Searcher) Train(items []TrainingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		counts, ok := s.categoryWordCounts[item.Category]
		if !ok {
			counts = make(map[string]int)
			s.categoryWordCounts[item.Category] = counts
			s.categories = append(s.categories, item.Category)
		}
		s.categoryCounts[item.Category]++
		s.totalDocuments++

		for _, word := range Tokenize(item.Text) {
			s.vocabulary[word] = struct{}{}
			counts[word]++
			s.categoryWordTotals[item.Category]++
		}
	}
}

// Reset discards everything learned so far.
func (s *Searcher) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Searcher) reset() {
	s.vocabulary = make(map[string]struct{})
	s.categoryWordCounts = make(map[string]map[string]int)
	s.categoryWordTotals = make(map[string]int)
	s.categoryCounts = make(map[string]int)
	s.categories = nil
	s.totalDocuments = 0
}

// Classify returns the most probable category for text, or "" when the model
// has not been trained. Word likelihoods use Laplace smoothing so unseen words
// do not zero out a category. Ties go to the category trained first.
func (s *Searcher) Classify(text string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := Tokenize(text)
	best := ""
	bestScore := math.Inf(-1)
	for _, category := range s.categories {
		if score := s.logProbability(category, words); score > bestScore {
			bestScore = score
			best = category
		}
	}
	return best
}

// Scores returns the log-probability of text under every trained category.
func (s *Searcher) Scores(text string) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := Tokenize(text)
	scores := make(map[string]float64, len(s.categories))
	for _, category := range s.categories {
		scores[category] = s.logProbability(category, words)
	}
	return scores
}

// logProbability must be called with s.mu held.
func (s *Searcher) logProbability(category string, words []string) float64 {
	score := math.Log(float64(s.categoryCounts[category]) / float64(s.totalDocuments))

	counts := s.categoryWordCounts[category]
	denominator := float64(s.categoryWordTotals[category] + len(s.vocabulary))
	for _, word := range words {
		score += math.Log(float64(counts[word]+1) / denominator)
	}
	return score
}

// Categories lists the trained categories in the order they were first seen.
func (s *Searcher) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.categories...)
}

// VocabularySize is the number of distinct words seen in training.
func (s *Searcher) VocabularySize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vocabulary)
}

// Documents is the number of documents trained on since the last Reset.
func (s *Searcher) Documents() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalDocuments
}
