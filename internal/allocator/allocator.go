// Package allocator distributes a fixed budget across prioritized categories
// and derives plain-text advice from the result.
package allocator

import (
	"sort"

	"github.com/iwvelando/fintrack/internal/model"
	"github.com/iwvelando/fintrack/pkg/constants"
)

// OptimizeBudget funds categories greedily in ascending priority order
// (priority 1 first). Each category takes what it needs while budget remains;
// the first category that cannot be fully funded receives the remainder and
// every later one receives nothing. Earlier allocations are never revisited.
//
// The result holds one allocation per category in priority order. Categories
// sharing a priority keep their input order. The input slice is not modified.
func OptimizeBudget(totalBudget float64, categories []model.BudgetCategory) []model.BudgetAllocation {
	sorted := make([]model.BudgetCategory, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	remaining := totalBudget
	allocations := make([]model.BudgetAllocation, 0, len(sorted))

	for _, category := range sorted {
		allocation := model.BudgetAllocation{Name: category.Name}

		if remaining >= category.RequiredAmount {
			allocation.AllocatedAmount = category.RequiredAmount
			allocation.PercentAllocated = constants.PercentageMultiplier
			allocation.Fulfilled = true
			remaining -= category.RequiredAmount
		} else if remaining > 0 {
			allocation.AllocatedAmount = remaining
			allocation.PercentAllocated = remaining / category.RequiredAmount * constants.PercentageMultiplier
			remaining = 0
		}

		allocations = append(allocations, allocation)
	}

	return allocations
}

// TotalAllocated sums the allocated amounts.
func TotalAllocated(allocations []model.BudgetAllocation) float64 {
	total := 0.0
	for _, a := range allocations {
		total += a.AllocatedAmount
	}
	return total
}
