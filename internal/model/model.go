// Package model defines the financial records consumed by the analytics
// kernel and the structures it computes from them.
package model

import (
	"strings"

	"github.com/iwvelando/fintrack/pkg/constants"
)

// Period is the recurrence granularity of a budget or projection.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod maps a period name onto a Period, ignoring case and
// surrounding whitespace. Unknown names report false.
func ParsePeriod(value string) (Period, bool) {
	switch Period(strings.ToLower(strings.TrimSpace(value))) {
	case PeriodDaily:
		return PeriodDaily, true
	case PeriodWeekly:
		return PeriodWeekly, true
	case PeriodMonthly:
		return PeriodMonthly, true
	}
	return "", false
}

// DefaultFrequency is the cadence in days assumed for a category without
// enough history to measure one.
func (p Period) DefaultFrequency() int {
	switch p {
	case PeriodDaily:
		return constants.DefaultDailyFrequency
	case PeriodWeekly:
		return constants.DefaultWeeklyFrequency
	default:
		return constants.DefaultMonthlyFrequency
	}
}

// Expense is a single recorded (or projected) outflow.
type Expense struct {
	ID          string  `json:"id" yaml:"id"`
	Amount      float64 `json:"amount" yaml:"amount"`
	Category    string  `json:"category" yaml:"category"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Date        string  `json:"date" yaml:"date"`
	IsProjected bool    `json:"isProjected" yaml:"isProjected"`
}

// Budget is a recurring spending ceiling for a category.
type Budget struct {
	ID       string  `json:"id" yaml:"id"`
	Category string  `json:"category" yaml:"category"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Period   Period  `json:"period" yaml:"period"`
}

// Goal is a savings target.
type Goal struct {
	ID            string  `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	Description   string  `json:"description,omitempty" yaml:"description,omitempty"`
	Category      string  `json:"category,omitempty" yaml:"category,omitempty"`
	TargetAmount  float64 `json:"targetAmount" yaml:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount" yaml:"currentAmount"`
	Deadline      string  `json:"deadline,omitempty" yaml:"deadline,omitempty"`
}

// BudgetCategory is one line of an allocation request.
type BudgetCategory struct {
	Name           string  `json:"name" yaml:"name"`
	RequiredAmount float64 `json:"requiredAmount" yaml:"requiredAmount"`
	Priority       int     `json:"priority" yaml:"priority"` // 1 = highest
}

// BudgetAllocation is the funding decided for one BudgetCategory.
type BudgetAllocation struct {
	Name             string  `json:"name" yaml:"name"`
	AllocatedAmount  float64 `json:"allocatedAmount" yaml:"allocatedAmount"`
	PercentAllocated float64 `json:"percentAllocated" yaml:"percentAllocated"`
	Fulfilled        bool    `json:"fulfilled" yaml:"fulfilled"`
}

// PeriodProjection is the cumulative spend at the end of one period bucket.
type PeriodProjection struct {
	Period     string  `json:"period" yaml:"period"`
	Amount     float64 `json:"amount" yaml:"amount"`
	Percentage int     `json:"percentage" yaml:"percentage"`
	Label      string  `json:"label" yaml:"label"`
}

// BudgetProjectionResult is the utilization curve of one budget.
type BudgetProjectionResult struct {
	ID                 string             `json:"id" yaml:"id"`
	Category           string             `json:"category" yaml:"category"`
	Amount             float64            `json:"amount" yaml:"amount"`
	Period             Period             `json:"period" yaml:"period"`
	CurrentUtilization float64            `json:"currentUtilization" yaml:"currentUtilization"`
	Projections        []PeriodProjection `json:"projections" yaml:"projections"`
}
