// Package summary computes the dashboard and report aggregates shown
// alongside projections: totals, per-category spend, budget comparisons,
// goal progress and timeframe filtering.
package summary

import (
	"sort"
	"time"

	"github.com/iwvelando/fintrack/internal/model"
	"github.com/iwvelando/fintrack/pkg/constants"
	"github.com/iwvelando/fintrack/pkg/datetime"
	"github.com/iwvelando/fintrack/pkg/mathutil"
)

// Totals is the headline figure set of the dashboard.
type Totals struct {
	TotalExpenses float64 `json:"totalExpenses" yaml:"totalExpenses"`
	TotalBudget   float64 `json:"totalBudget" yaml:"totalBudget"`
	Remaining     float64 `json:"remaining" yaml:"remaining"`
}

// CategoryTotal is the spend in one category.
type CategoryTotal struct {
	Category string  `json:"category" yaml:"category"`
	Amount   float64 `json:"amount" yaml:"amount"`
}

// BudgetComparison contrasts a budget with what was spent in its category.
type BudgetComparison struct {
	Category  string  `json:"category" yaml:"category"`
	Budget    float64 `json:"budget" yaml:"budget"`
	Spent     float64 `json:"spent" yaml:"spent"`
	Remaining float64 `json:"remaining" yaml:"remaining"`
}

// GoalStatus reports progress toward one goal.
type GoalStatus struct {
	ID        string  `json:"id" yaml:"id"`
	Title     string  `json:"title" yaml:"title"`
	Target    float64 `json:"target" yaml:"target"`
	Current   float64 `json:"current" yaml:"current"`
	Remaining float64 `json:"remaining" yaml:"remaining"`
	Progress  float64 `json:"progress" yaml:"progress"`
	Deadline  string  `json:"deadline,omitempty" yaml:"deadline,omitempty"`
}

// Stats summarizes an account's records.
type Stats struct {
	ExpenseCount int     `json:"expenseCount" yaml:"expenseCount"`
	BudgetCount  int     `json:"budgetCount" yaml:"budgetCount"`
	TotalSpent   float64 `json:"totalSpent" yaml:"totalSpent"`
}

// Report bundles every aggregate for one ledger.
type Report struct {
	Totals     Totals             `json:"totals" yaml:"totals"`
	Categories []CategoryTotal    `json:"categories" yaml:"categories"`
	Budgets    []BudgetComparison `json:"budgets" yaml:"budgets"`
	Goals      []GoalStatus       `json:"goals" yaml:"goals"`
	Stats      Stats              `json:"stats" yaml:"stats"`
}

// Build computes the full report.
func Build(expenses []model.Expense, budgets []model.Budget, goals []model.Goal) Report {
	return Report{
		Totals:     ComputeTotals(expenses, budgets),
		Categories: CategoryBreakdown(expenses),
		Budgets:    CompareBudgets(budgets, expenses),
		Goals:      Goals(goals),
		Stats:      UserStats(expenses, budgets),
	}
}

// ComputeTotals sums all expenses and all budgets. Remaining is negative when
// spending exceeds the combined budgets.
func ComputeTotals(expenses []model.Expense, budgets []model.Budget) Totals {
	spent := totalSpent(expenses)
	budgeted := 0.0
	for _, b := range budgets {
		budgeted += b.Amount
	}
	return Totals{
		TotalExpenses: spent,
		TotalBudget:   budgeted,
		Remaining:     budgeted - spent,
	}
}

// CategoryBreakdown sums expenses per category, in order of first appearance.
func CategoryBreakdown(expenses []model.Expense) []CategoryTotal {
	index := make(map[string]int)
	totals := []CategoryTotal{}
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category})
		}
		totals[i].Amount += e.Amount
	}
	return totals
}

// CompareBudgets reports spend against each budget, in budget order.
func CompareBudgets(budgets []model.Budget, expenses []model.Expense) []BudgetComparison {
	comparisons := make([]BudgetComparison, 0, len(budgets))
	for _, b := range budgets {
		spent := 0.0
		for _, e := range expenses {
			if e.Category == b.Category {
				spent += e.Amount
			}
		}
		comparisons = append(comparisons, BudgetComparison{
			Category:  b.Category,
			Budget:    b.Amount,
			Spent:     spent,
			Remaining: b.Amount - spent,
		})
	}
	return comparisons
}

// GoalProgress is current as a percentage of target, clamped to [0, 100].
// A zero target has no progress.
func GoalProgress(current, target float64) float64 {
	if target == 0 {
		return 0
	}
	return mathutil.Clamp(current/target*constants.PercentageMultiplier, 0, constants.MaxPercentage)
}

// Goals reports progress for each goal.
func Goals(goals []model.Goal) []GoalStatus {
	statuses := make([]GoalStatus, 0, len(goals))
	for _, g := range goals {
		statuses = append(statuses, GoalStatus{
			ID:        g.ID,
			Title:     g.Title,
			Target:    g.TargetAmount,
			Current:   g.CurrentAmount,
			Remaining: g.TargetAmount - g.CurrentAmount,
			Progress:  GoalProgress(g.CurrentAmount, g.TargetAmount),
			Deadline:  g.Deadline,
		})
	}
	return statuses
}

// UserStats counts records and totals spend.
func UserStats(expenses []model.Expense, budgets []model.Budget) Stats {
	return Stats{
		ExpenseCount: len(expenses),
		BudgetCount:  len(budgets),
		TotalSpent:   totalSpent(expenses),
	}
}

// FilterByTimeFrame keeps expenses dated on or after the start of the current
// day, week (starting Sunday) or month, newest first. Expenses with
// unparseable dates are dropped.
func FilterByTimeFrame(now time.Time, expenses []model.Expense, period model.Period) []model.Expense {
	var start time.Time
	switch period {
	case model.PeriodDaily:
		start = datetime.StartOfDay(now)
	case model.PeriodWeekly:
		start = datetime.StartOfWeek(now)
	default:
		start = datetime.StartOfMonth(now)
	}

	type dated struct {
		expense model.Expense
		date    time.Time
	}
	var kept []dated
	for _, e := range expenses {
		date, err := datetime.ParseDate(e.Date)
		if err != nil || date.Before(start) {
			continue
		}
		kept = append(kept, dated{expense: e, date: date})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].date.After(kept[j].date)
	})

	filtered := make([]model.Expense, 0, len(kept))
	for _, k := range kept {
		filtered = append(filtered, k.expense)
	}
	return filtered
}

func totalSpent(expenses []model.Expense) float64 {
	amounts := make([]float64, len(expenses))
	for i, e := range expenses {
		amounts[i] = e.Amount
	}
	return mathutil.Sum(amounts)
}
