package config

import (
	"strings"

	"github.com/google/uuid"
	"github.com/iwvelando/fintrack/internal/classifier"
	"github.com/iwvelando/fintrack/internal/model"
)

// PeriodValue returns the configured projection period. Unknown names fall
// back to monthly.
func (p ProjectionConfig) PeriodValue() model.Period {
	if period, ok := model.ParsePeriod(p.Period); ok {
		return period
	}
	return model.PeriodMonthly
}

// ToModelExpenses converts the snapshot expenses to model expenses.
func (c *Configuration) ToModelExpenses() []model.Expense {
	expenses := make([]model.Expense, 0, len(c.Expenses))
	for _, e := range c.Expenses {
		expenses = append(expenses, model.Expense{
			ID:          e.ID,
			Amount:      e.Amount,
			Category:    e.Category,
			Description: e.Description,
			Date:        strings.TrimSpace(e.Date),
		})
	}
	return expenses
}

// ToModelBudgets converts the snapshot budgets to model budgets. A period
// name that is not recognized is kept as written; such a budget is bucketed
// per day.
func (c *Configuration) ToModelBudgets() []model.Budget {
	budgets := make([]model.Budget, 0, len(c.Budgets))
	for _, b := range c.Budgets {
		period, ok := model.ParsePeriod(b.Period)
		if !ok {
			period = model.Period(b.Period)
		}
		budgets = append(budgets, model.Budget{
			ID:       b.ID,
			Category: b.Category,
			Amount:   b.Amount,
			Period:   period,
		})
	}
	return budgets
}

// ToModelGoals converts the snapshot goals to model goals.
func (c *Configuration) ToModelGoals() []model.Goal {
	goals := make([]model.Goal, 0, len(c.Goals))
	for _, g := range c.Goals {
		goals = append(goals, model.Goal{
			ID:            g.ID,
			Title:         g.Title,
			Description:   g.Description,
			Category:      g.Category,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Deadline:      g.Deadline,
		})
	}
	return goals
}

// ToModelCategories converts the allocation request.
func (a AllocationConfig) ToModelCategories() []model.BudgetCategory {
	categories := make([]model.BudgetCategory, 0, len(a.Categories))
	for _, cat := range a.Categories {
		categories = append(categories, model.BudgetCategory{
			Name:           cat.Name,
			RequiredAmount: cat.RequiredAmount,
			Priority:       cat.Priority,
		})
	}
	return categories
}

// TrainingCorpus returns the configured training examples. Without any, the
// described expenses of the ledger are used, labelled by their category.
func (c *Configuration) TrainingCorpus() []classifier.TrainingItem {
	items := make([]classifier.TrainingItem, 0, len(c.Training))
	for _, item := range c.Training {
		items = append(items, classifier.TrainingItem{Text: item.Text, Category: item.Category})
	}
	if len(items) > 0 {
		return items
	}

	for _, e := range c.Expenses {
		if strings.TrimSpace(e.Description) == "" || e.Category == "" {
			continue
		}
		items = append(items, classifier.TrainingItem{Text: e.Description, Category: e.Category})
	}
	return items
}

// assignMissingIDs gives every record without an ID a random one so records
// can be told apart in search results.
func (c *Configuration) assignMissingIDs() {
	for i := range c.Expenses {
		if strings.TrimSpace(c.Expenses[i].ID) == "" {
			c.Expenses[i].ID = uuid.NewString()
		}
	}
	for i := range c.Budgets {
		if strings.TrimSpace(c.Budgets[i].ID) == "" {
			c.Budgets[i].ID = uuid.NewString()
		}
	}
	for i := range c.Goals {
		if strings.TrimSpace(c.Goals[i].ID) == "" {
			c.Goals[i].ID = uuid.NewString()
		}
	}
}
