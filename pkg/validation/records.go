package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/fintrack/pkg/datetime"
)

var periods = []string{"daily", "weekly", "monthly"}

// ValidateExpense checks an expense record and returns warnings for problems
// that make the analytics skip or misread it.
func ValidateExpense(id, category, date string, amount float64) []string {
	var warnings []string

	if strings.TrimSpace(category) == "" {
		warnings = append(warnings, fmt.Sprintf("Expense '%s' has no category", id))
	}
	if _, err := datetime.ParseDate(date); err != nil {
		warnings = append(warnings, fmt.Sprintf("Expense '%s' has an unparseable date '%s' and will be ignored by projections", id, date))
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		warnings = append(warnings, fmt.Sprintf("Expense '%s' has a non-finite amount", id))
	} else if amount <= 0 {
		warnings = append(warnings, fmt.Sprintf("Expense '%s' has a non-positive amount (%.2f)", id, amount))
	}

	return warnings
}

// ValidateBudget checks a budget record.
func ValidateBudget(id, category, period string, amount float64) []string {
	var warnings []string

	if strings.TrimSpace(category) == "" {
		warnings = append(warnings, fmt.Sprintf("Budget '%s' has no category", id))
	}
	if !knownPeriod(period) {
		warnings = append(warnings, fmt.Sprintf("Budget '%s' has an unrecognized period '%s' and will be grouped per day", id, period))
	}
	if amount <= 0 {
		warnings = append(warnings, fmt.Sprintf("Budget '%s' has a non-positive amount (%.2f), utilization percentages will be 0", id, amount))
	}

	return warnings
}

// ValidateGoal checks a savings goal.
func ValidateGoal(id, title, deadline string, target float64) []string {
	var warnings []string

	if strings.TrimSpace(title) == "" {
		warnings = append(warnings, fmt.Sprintf("Goal '%s' has no title", id))
	}
	if deadline != "" {
		if _, err := datetime.ParseDate(deadline); err != nil {
			warnings = append(warnings, fmt.Sprintf("Goal '%s' has an unparseable deadline '%s'", id, deadline))
		}
	}
	if target <= 0 {
		warnings = append(warnings, fmt.Sprintf("Goal '%s' has a non-positive target (%.2f), progress will be 0", id, target))
	}

	return warnings
}

// ValidateCategory checks one allocation request line.
func ValidateCategory(name string, required float64, priority int) []string {
	var warnings []string

	if strings.TrimSpace(name) == "" {
		warnings = append(warnings, "Allocation category has no name")
	}
	if required < 0 {
		warnings = append(warnings, fmt.Sprintf("Allocation category '%s' requires a negative amount (%.2f)", name, required))
	}
	if priority < 1 {
		warnings = append(warnings, fmt.Sprintf("Allocation category '%s' has priority %d, priorities start at 1", name, priority))
	}

	return warnings
}

func knownPeriod(period string) bool {
	period = strings.ToLower(strings.TrimSpace(period))
	for _, p := range periods {
		if period == p {
			return true
		}
	}
	return false
}
