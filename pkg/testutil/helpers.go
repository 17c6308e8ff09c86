// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/fintrack/internal/model"
)

// FindBudgetProjection finds a utilization result by budget category.
// Returns a pointer to the result if found, nil otherwise.
func FindBudgetProjection(results []model.BudgetProjectionResult, category string) *model.BudgetProjectionResult {
	for i := range results {
		if results[i].Category == category {
			return &results[i]
		}
	}
	return nil
}

// FindAllocation finds an allocation by category name.
// Returns a pointer to the allocation if found, nil otherwise.
func FindAllocation(allocations []model.BudgetAllocation, name string) *model.BudgetAllocation {
	for i := range allocations {
		if allocations[i].Name == name {
			return &allocations[i]
		}
	}
	return nil
}

// ProjectedDates lists the dates of the projected expenses in one category,
// in order.
func ProjectedDates(expenses []model.Expense, category string) []string {
	var dates []string
	for _, e := range expenses {
		if e.Category == category {
			dates = append(dates, e.Date)
		}
	}
	return dates
}
