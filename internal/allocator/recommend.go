package allocator

import (
	"fmt"
	"strings"

	"github.com/iwvelando/fintrack/internal/model"
	"github.com/iwvelando/fintrack/pkg/constants"
	"github.com/iwvelando/fintrack/pkg/mathutil"
)

// Recommendation messages.
const (
	MsgUnderfundedEssentials = "Consider increasing your income or reducing expenses to fully fund essential categories."
	MsgLowSavings            = "Your savings allocation is below the recommended 20% of your income. Consider increasing your savings rate."
	MsgBalanced              = "Your budget looks well balanced. Continue to monitor your expenses and adjust as needed."
)

// UnderfundedMessage is the advice emitted for one underfunded essential category.
func UnderfundedMessage(allocation model.BudgetAllocation) string {
	return fmt.Sprintf("%s is only %d%% funded. Try to allocate more to this essential category.",
		allocation.Name, int(mathutil.RoundHalfUp(allocation.PercentAllocated)))
}

// MakeRecommendations turns allocations into advice. The first three
// allocations are treated as essential; each unfulfilled one is called out
// after a single general message. A savings allocation (any name containing
// "saving") under 20% adds a warning. When nothing was flagged and income is
// positive, a single "well balanced" message is returned.
func MakeRecommendations(allocations []model.BudgetAllocation, income float64) []string {
	var recommendations []string

	var underfunded []model.BudgetAllocation
	for i, allocation := range allocations {
		if i >= constants.EssentialCategoryCount {
			break
		}
		if !allocation.Fulfilled {
			underfunded = append(underfunded, allocation)
		}
	}

	if len(underfunded) > 0 {
		recommendations = append(recommendations, MsgUnderfundedEssentials)
		for _, allocation := range underfunded {
			recommendations = append(recommendations, UnderfundedMessage(allocation))
		}
	}

	if savings, ok := findSavings(allocations); ok && savings.PercentAllocated < constants.MinimumSavingsPercent {
		recommendations = append(recommendations, MsgLowSavings)
	}

	if income > 0 && len(recommendations) == 0 {
		recommendations = append(recommendations, MsgBalanced)
	}

	if recommendations == nil {
		recommendations = []string{}
	}
	return recommendations
}

func findSavings(allocations []model.BudgetAllocation) (model.BudgetAllocation, bool) {
	for _, allocation := range allocations {
		if strings.Contains(strings.ToLower(allocation.Name), constants.SavingsKeyword) {
			return allocation, true
		}
	}
	return model.BudgetAllocation{}, false
}
