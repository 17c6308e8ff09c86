package summary

import (
	"testing"
	"time"

	"github.com/iwvelando/fintrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sampleExpenses = []model.Expense{
		{ID: "1", Amount: 1200, Category: "Food & Dining", Date: "2025-06-18"},
		{ID: "2", Amount: 500, Category: "Transportation", Date: "2025-06-15"},
		{ID: "3", Amount: 800, Category: "Food & Dining", Date: "2025-06-02"},
		{ID: "4", Amount: 2500, Category: "Shopping", Date: "2025-05-30"},
	}
	sampleBudgets = []model.Budget{
		{ID: "b1", Category: "Food & Dining", Amount: 5000, Period: model.PeriodMonthly},
		{ID: "b2", Category: "Transportation", Amount: 3000, Period: model.PeriodMonthly},
		{ID: "b3", Category: "Utilities", Amount: 2000, Period: model.PeriodMonthly},
	}
)

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(sampleExpenses, sampleBudgets)
	assert.Equal(t, Totals{TotalExpenses: 5000, TotalBudget: 10000, Remaining: 5000}, totals)

	overspent := ComputeTotals(sampleExpenses, sampleBudgets[2:])
	assert.Equal(t, -3000.0, overspent.Remaining)

	assert.Equal(t, Totals{}, ComputeTotals(nil, nil))
}

func TestCategoryBreakdown(t *testing.T) {
	breakdown := CategoryBreakdown(sampleExpenses)
	assert.Equal(t, []CategoryTotal{
		{Category: "Food & Dining", Amount: 2000},
		{Category: "Transportation", Amount: 500},
		{Category: "Shopping", Amount: 2500},
	}, breakdown)

	assert.Empty(t, CategoryBreakdown(nil))
	assert.NotNil(t, CategoryBreakdown(nil))
}

func TestCompareBudgets(t *testing.T) {
	comparisons := CompareBudgets(sampleBudgets, sampleExpenses)
	assert.Equal(t, []BudgetComparison{
		{Category: "Food & Dining", Budget: 5000, Spent: 2000, Remaining: 3000},
		{Category: "Transportation", Budget: 3000, Spent: 500, Remaining: 2500},
		{Category: "Utilities", Budget: 2000, Spent: 0, Remaining: 2000},
	}, comparisons)
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		target   float64
		expected float64
	}{
		{"Halfway", 50, 100, 50},
		{"Zero target", 50, 0, 0},
		{"Exceeded", 150, 100, 100},
		{"Negative balance", -20, 100, 0},
		{"Nothing saved", 0, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GoalProgress(tt.current, tt.target))
		})
	}
}

func TestGoals(t *testing.T) {
	statuses := Goals([]model.Goal{
		{ID: "g1", Title: "Emergency fund", TargetAmount: 60000, CurrentAmount: 15000, Deadline: "2026-01-01"},
		{ID: "g2", Title: "Someday", TargetAmount: 0, CurrentAmount: 100},
	})

	require.Len(t, statuses, 2)
	assert.Equal(t, GoalStatus{
		ID: "g1", Title: "Emergency fund", Target: 60000, Current: 15000,
		Remaining: 45000, Progress: 25, Deadline: "2026-01-01",
	}, statuses[0])
	assert.Equal(t, 0.0, statuses[1].Progress)
	assert.Equal(t, -100.0, statuses[1].Remaining)
}

func TestUserStats(t *testing.T) {
	assert.Equal(t, Stats{ExpenseCount: 4, BudgetCount: 3, TotalSpent: 5000}, UserStats(sampleExpenses, sampleBudgets))
}

func TestFilterByTimeFrame(t *testing.T) {
	// Wednesday afternoon.
	now := time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   model.Period
		expected []string
	}{
		{"Today", model.PeriodDaily, []string{"1"}},
		{"This week", model.PeriodWeekly, []string{"1", "2"}},
		{"This month", model.PeriodMonthly, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterByTimeFrame(now, sampleExpenses, tt.period)
			ids := make([]string, len(filtered))
			for i, e := range filtered {
				ids[i] = e.ID
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterByTimeFrameSortsNewestFirst(t *testing.T) {
	now := time.Date(2025, 6, 30, 9, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		{ID: "old", Date: "2025-06-01"},
		{ID: "bad", Date: "sometime"},
		{ID: "new", Date: "2025-06-29"},
		{ID: "mid", Date: "2025-06-10"},
	}

	filtered := FilterByTimeFrame(now, expenses, model.PeriodMonthly)

	ids := make([]string, len(filtered))
	for i, e := range filtered {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"new", "mid", "old"}, ids)
}

func TestBuild(t *testing.T) {
	report := Build(sampleExpenses, sampleBudgets, nil)
	assert.Equal(t, 5000.0, report.Totals.TotalExpenses)
	assert.Len(t, report.Categories, 3)
	assert.Len(t, report.Budgets, 3)
	assert.Empty(t, report.Goals)
	assert.Equal(t, 4, report.Stats.ExpenseCount)
}
