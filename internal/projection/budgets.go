package projection

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iwvelando/fintrack/internal/model"
	"github.com/iwvelando/fintrack/pkg/constants"
	"github.com/iwvelando/fintrack/pkg/datetime"
	"github.com/iwvelando/fintrack/pkg/mathutil"
)

// bucket accumulates projected spend for one period key.
type bucket struct {
	key    string
	label  string
	amount float64
}

// orderedBuckets groups amounts by key, remembering the order in which keys
// were first seen.
type orderedBuckets struct {
	index   map[string]int
	buckets []bucket
}

func newOrderedBuckets() *orderedBuckets {
	return &orderedBuckets{index: make(map[string]int)}
}

func (o *orderedBuckets) add(key, label string, amount float64) {
	if i, ok := o.index[key]; ok {
		o.buckets[i].amount += amount
		return
	}
	o.index[key] = len(o.buckets)
	o.buckets = append(o.buckets, bucket{key: key, label: label, amount: amount})
}

// CalculateBudgetProjection builds utilization curves relative to the current
// time. See CalculateBudgetProjectionWithFixedTime.
func CalculateBudgetProjection(budgets []model.Budget, expenses []model.Expense, projected []model.Expense) []model.BudgetProjectionResult {
	return CalculateBudgetProjectionWithFixedTime(time.Now(), budgets, expenses, projected)
}

// CalculateBudgetProjectionWithFixedTime combines actual and projected spend
// into a cumulative curve per budget. Current utilization is the lifetime sum
// of actual expenses in the budget's category, with no date filtering.
// Projected expenses of that category are bucketed by the budget's period
// (month, week offset from now, or day) and accumulated onto the current
// utilization in the order buckets were first encountered.
//
// Cumulative amounts may exceed the budget; only Percentage is clamped to
// [0, 100]. Results follow the order of budgets.
func CalculateBudgetProjectionWithFixedTime(now time.Time, budgets []model.Budget, expenses []model.Expense, projected []model.Expense) []model.BudgetProjectionResult {
	results := make([]model.BudgetProjectionResult, 0, len(budgets))

	for _, budget := range budgets {
		currentUtilization := 0.0
		for _, expense := range expenses {
			if expense.Category == budget.Category {
				currentUtilization += expense.Amount
			}
		}

		buckets := newOrderedBuckets()
		for _, expense := range projected {
			if expense.Category != budget.Category {
				continue
			}
			key, label, ok := periodKey(budget.Period, expense.Date, now)
			if !ok {
				continue
			}
			buckets.add(key, label, expense.Amount)
		}

		accumulated := currentUtilization
		periods := make([]model.PeriodProjection, 0, len(buckets.buckets))
		for _, b := range buckets.buckets {
			accumulated += b.amount
			periods = append(periods, model.PeriodProjection{
				Period:     b.key,
				Amount:     accumulated,
				Percentage: mathutil.ClampedPercent(accumulated, budget.Amount),
				Label:      b.label,
			})
		}

		results = append(results, model.BudgetProjectionResult{
			ID:                 budget.ID,
			Category:           budget.Category,
			Amount:             budget.Amount,
			Period:             budget.Period,
			CurrentUtilization: currentUtilization,
			Projections:        periods,
		})
	}

	return results
}

// periodKey returns the bucket key and label of a projected expense date for
// the given budget period. Periods other than monthly and weekly bucket by day.
func periodKey(period model.Period, date string, now time.Time) (string, string, bool) {
	t, err := datetime.ParseDate(date)
	if err != nil {
		return "", "", false
	}

	switch period {
	case model.PeriodMonthly:
		return t.Format(constants.MonthKeyLayout), t.Format(constants.MonthLabelLayout), true
	case model.PeriodWeekly:
		week := floorDiv(datetime.DaysBetween(t, now), constants.DaysPerWeek)
		return WeekKey(week), WeekLabel(week), true
	default:
		return date, t.Format(constants.DayLabelLayout), true
	}
}

// WeekKey formats a week offset as a bucket key, e.g. "week-2".
func WeekKey(offset int) string {
	return constants.WeekKeyPrefix + strconv.Itoa(offset)
}

// WeekLabel formats a week offset for display. Offset 0 is "Week 1".
func WeekLabel(offset int) string {
	if offset < 0 {
		offset = -offset
	}
	return fmt.Sprintf("Week %d", offset+1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
