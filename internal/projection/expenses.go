// Package projection forecasts recurring expenses from their historical
// cadence and derives cumulative budget utilization curves from the forecast.
package projection

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/iwvelando/fintrack/internal/model"
	"github.com/iwvelando/fintrack/pkg/constants"
	"github.com/iwvelando/fintrack/pkg/datetime"
	"github.com/iwvelando/fintrack/pkg/mathutil"
)

// CategoryMetric summarizes the spending history of one category.
type CategoryMetric struct {
	Category  string
	AvgAmount float64
	Frequency int // days, always >= 1
	LastDate  time.Time
}

type datedExpense struct {
	expense model.Expense
	date    time.Time
}

// CalculateExpenseProjection projects expenses for the next days days
// relative to the current time. See CalculateExpenseProjectionWithFixedTime.
func CalculateExpenseProjection(expenses []model.Expense, days int, period model.Period) []model.Expense {
	return CalculateExpenseProjectionWithFixedTime(time.Now(), expenses, days, period)
}

// CalculateExpenseProjectionWithFixedTime projects recurring expenses per
// category. Each category repeats its average amount every Frequency days,
// starting from its most recent expense, and every repetition dated after now
// is emitted. Generation stops once the last generated date is at least days
// days past now; the check happens before each step, so the final projection
// may land up to one step beyond the horizon.
//
// A non-positive horizon projects nothing. Expenses whose date cannot be
// parsed are ignored. The result is sorted by date, oldest first.
func CalculateExpenseProjectionWithFixedTime(now time.Time, expenses []model.Expense, days int, period model.Period) []model.Expense {
	projected := []model.Expense{}
	if len(expenses) == 0 || days <= 0 {
		return projected
	}

	for _, metric := range CategoryMetrics(expenses, period) {
		next := metric.LastDate
		amount := mathutil.Round(metric.AvgAmount)

		for datetime.DaysBetween(next, now) < days {
			next = datetime.AddDays(next, metric.Frequency)
			if !next.After(now) {
				continue
			}
			projected = append(projected, model.Expense{
				ID:          projectionID(metric.Category, next),
				Amount:      amount,
				Category:    metric.Category,
				Description: constants.ProjectedDescriptionPrefix + metric.Category,
				Date:        datetime.FormatDate(next),
				IsProjected: true,
			})
		}
	}

	sort.SliceStable(projected, func(i, j int) bool {
		return projected[i].Date < projected[j].Date
	})
	return projected
}

// CategoryMetrics groups expenses by category and measures each category's
// average amount, cadence and most recent date. Categories are returned in
// order of first appearance.
func CategoryMetrics(expenses []model.Expense, period model.Period) []CategoryMetric {
	var order []string
	grouped := make(map[string][]datedExpense)

	for _, expense := range expenses {
		date, err := datetime.ParseDate(expense.Date)
		if err != nil {
			continue
		}
		if _, seen := grouped[expense.Category]; !seen {
			order = append(order, expense.Category)
		}
		grouped[expense.Category] = append(grouped[expense.Category], datedExpense{expense: expense, date: date})
	}

	metrics := make([]CategoryMetric, 0, len(order))
	for _, category := range order {
		metrics = append(metrics, measureCategory(category, grouped[category], period))
	}
	return metrics
}

func measureCategory(category string, items []datedExpense, period model.Period) CategoryMetric {
	sorted := make([]datedExpense, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].date.After(sorted[j].date)
	})

	total := 0.0
	for _, item := range items {
		total += item.expense.Amount
	}

	return CategoryMetric{
		Category:  category,
		AvgAmount: total / float64(len(items)),
		Frequency: frequency(sorted, period),
		LastDate:  sorted[0].date,
	}
}

// frequency averages the positive gaps in days between consecutive expenses
// of a newest-first list. Same-day entries do not count as a gap.
func frequency(newestFirst []datedExpense, period model.Period) int {
	totalDays := 0
	occurrences := 0

	for i := 0; i < len(newestFirst)-1; i++ {
		gap := datetime.DaysBetween(newestFirst[i].date, newestFirst[i+1].date)
		if gap > 0 {
			totalDays += gap
			occurrences++
		}
	}

	if occurrences == 0 {
		return period.DefaultFrequency()
	}

	freq := int(math.Round(float64(totalDays) / float64(occurrences)))
	if freq < 1 {
		freq = 1
	}
	return freq
}

func projectionID(category string, date time.Time) string {
	return fmt.Sprintf("%s-%s-%d", constants.ProjectionIDPrefix, category, date.UnixMilli())
}
