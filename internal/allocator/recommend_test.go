package allocator

import (
	"reflect"
	"testing"

	"github.com/iwvelando/fintrack/internal/model"
)

func TestMakeRecommendations(t *testing.T) {
	tests := []struct {
		name        string
		allocations []model.BudgetAllocation
		income      float64
		expected    []string
	}{
		{
			name: "Everything funded",
			allocations: []model.BudgetAllocation{
				{Name: "Rent", PercentAllocated: 100, Fulfilled: true},
				{Name: "Food", PercentAllocated: 100, Fulfilled: true},
			},
			income:   5000,
			expected: []string{MsgBalanced},
		},
		{
			name: "Everything funded without income",
			allocations: []model.BudgetAllocation{
				{Name: "Rent", PercentAllocated: 100, Fulfilled: true},
			},
			income:   0,
			expected: []string{},
		},
		{
			name: "Underfunded essentials",
			allocations: []model.BudgetAllocation{
				{Name: "Rent", PercentAllocated: 100, Fulfilled: true},
				{Name: "Food", PercentAllocated: 66.67, Fulfilled: false},
				{Name: "Utilities", PercentAllocated: 0, Fulfilled: false},
			},
			income: 1000,
			expected: []string{
				MsgUnderfundedEssentials,
				"Food is only 67% funded. Try to allocate more to this essential category.",
				"Utilities is only 0% funded. Try to allocate more to this essential category.",
			},
		},
		{
			name: "Only the first three are essential",
			allocations: []model.BudgetAllocation{
				{Name: "Rent", PercentAllocated: 100, Fulfilled: true},
				{Name: "Food", PercentAllocated: 100, Fulfilled: true},
				{Name: "Utilities", PercentAllocated: 100, Fulfilled: true},
				{Name: "Fun", PercentAllocated: 10, Fulfilled: false},
			},
			income:   1000,
			expected: []string{MsgBalanced},
		},
		{
			name: "Low savings after underfunding",
			allocations: []model.BudgetAllocation{
				{Name: "Rent", PercentAllocated: 50, Fulfilled: false},
				{Name: "Emergency Savings", PercentAllocated: 0, Fulfilled: false},
			},
			income: 1000,
			expected: []string{
				MsgUnderfundedEssentials,
				"Rent is only 50% funded. Try to allocate more to this essential category.",
				"Emergency Savings is only 0% funded. Try to allocate more to this essential category.",
				MsgLowSavings,
			},
		},
		{
			name: "Savings outside the essentials",
			allocations: []model.BudgetAllocation{
				{Name: "Rent", PercentAllocated: 100, Fulfilled: true},
				{Name: "Food", PercentAllocated: 100, Fulfilled: true},
				{Name: "Utilities", PercentAllocated: 100, Fulfilled: true},
				{Name: "SAVINGS", PercentAllocated: 19.9, Fulfilled: false},
			},
			income:   1000,
			expected: []string{MsgLowSavings},
		},
		{
			name: "Savings at the threshold",
			allocations: []model.BudgetAllocation{
				{Name: "Rent", PercentAllocated: 100, Fulfilled: true},
				{Name: "Food", PercentAllocated: 100, Fulfilled: true},
				{Name: "Utilities", PercentAllocated: 100, Fulfilled: true},
				{Name: "Savings", PercentAllocated: 20, Fulfilled: false},
			},
			income:   1000,
			expected: []string{MsgBalanced},
		},
		{
			name:     "No allocations with income",
			income:   1000,
			expected: []string{MsgBalanced},
		},
		{
			name:     "No allocations without income",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MakeRecommendations(tt.allocations, tt.income)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("MakeRecommendations() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestRecommendationsFromOptimizer(t *testing.T) {
	allocations := OptimizeBudget(1000, []model.BudgetCategory{
		{Name: "Rent", RequiredAmount: 800, Priority: 1},
		{Name: "Food", RequiredAmount: 300, Priority: 2},
	})

	result := MakeRecommendations(allocations, 1000)
	expected := []string{
		MsgUnderfundedEssentials,
		"Food is only 67% funded. Try to allocate more to this essential category.",
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("MakeRecommendations() = %q, expected %q", result, expected)
	}
}
