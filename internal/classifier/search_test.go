package classifier

import (
	"testing"

	"github.com/iwvelando/fintrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedItem struct {
	Name string
}

func itemName(n namedItem) string { return n.Name }

func TestSearchRanksExactMatchFirst(t *testing.T) {
	items := []namedItem{{Name: "Transportation"}, {Name: "Food"}}

	result := Search(items, "food", itemName)

	require.Len(t, result, 2)
	assert.Equal(t, "Food", result[0].Name)
	assert.Equal(t, "Transportation", result[1].Name)
}

func TestSearchEmptyQueryReturnsInput(t *testing.T) {
	items := []namedItem{{Name: "B"}, {Name: "A"}}

	for _, query := range []string{"", "   ", "!!!"} {
		result := Search(items, query, itemName)
		assert.Equal(t, items, result)
		if len(result) > 0 {
			assert.Same(t, &items[0], &result[0], "query %q should return the input slice", query)
		}
	}
}

func TestSearchStableForTies(t *testing.T) {
	items := []namedItem{
		{Name: "rent"},
		{Name: "groceries"},
		{Name: "utilities"},
		{Name: "groceries again"},
	}

	result := Search(items, "groceries", itemName)

	names := make([]string, len(result))
	for i, r := range result {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"groceries", "groceries again", "rent", "utilities"}, names)
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	items := []namedItem{{Name: "rent"}, {Name: "food"}}
	_ = Search(items, "food", itemName)
	assert.Equal(t, []namedItem{{Name: "rent"}, {Name: "food"}}, items)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		text     string
		expected float64
	}{
		{"Exact match", "food", "Food", 1.5},
		{"Partial match", "food", "seafood", 0.5},
		{"Query contains item word", "groceries", "grocer", 0.5},
		{"No match", "taxi", "rent", 0},
		{"Repeated item word", "coffee", "coffee coffee", 2},
		{"Multiple query words", "bus fare", "bus fare taxi", 3},
		{"Empty text", "food", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(Tokenize(tt.query), tt.text))
		})
	}
}

func TestSearchRecords(t *testing.T) {
	records := model.Records(
		[]model.Expense{
			{ID: "e1", Category: "Transportation", Description: "jeepney fare"},
			{ID: "e2", Category: "Food & Dining", Description: "lunch"},
		},
		[]model.Budget{{ID: "b1", Category: "Food & Dining", Period: model.PeriodMonthly}},
		[]model.Goal{{ID: "g1", Title: "New laptop"}},
	)

	result := SearchRecords(records, "food")

	require.Len(t, result, 4)
	assert.Equal(t, "e2", result[0].RecordID())
	assert.Equal(t, "b1", result[1].RecordID())
	assert.Equal(t, model.KindBudget, result[1].Kind())
}
