package main

import (
	"fmt"
	"strings"

	"github.com/iwvelando/fintrack/internal/allocator"
	"github.com/iwvelando/fintrack/internal/classifier"
	"github.com/iwvelando/fintrack/internal/model"
	"github.com/iwvelando/fintrack/internal/projection"
	"github.com/iwvelando/fintrack/internal/summary"
	"github.com/iwvelando/fintrack/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProjectCmd(a *app) *cobra.Command {
	var days int
	var period string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project recurring expenses forward",
		RunE: func(cmd *cobra.Command, _ []string) error {
			projected, err := a.projectExpenses(cmd, days, period)
			if err != nil {
				return err
			}
			return a.out.Projections(projected)
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "projection horizon in days (default from ledger)")
	cmd.Flags().StringVar(&period, "period", "", "projection period: daily, weekly, monthly (default from ledger)")
	return cmd
}

func newUtilizationCmd(a *app) *cobra.Command {
	var days int
	var period string

	cmd := &cobra.Command{
		Use:   "utilization",
		Short: "Project cumulative budget utilization per period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			projected, err := a.projectExpenses(cmd, days, period)
			if err != nil {
				return err
			}

			results := projection.CalculateBudgetProjectionWithFixedTime(a.now(),
				a.conf.ToModelBudgets(), a.conf.ToModelExpenses(), projected)

			a.logger.Info("computed budget utilization",
				zap.String("op", "utilization"),
				zap.Int("budgets", len(results)),
			)
			return a.out.Utilization(results)
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "projection horizon in days (default from ledger)")
	cmd.Flags().StringVar(&period, "period", "", "projection period: daily, weekly, monthly (default from ledger)")
	return cmd
}

// projectExpenses runs the expense projection with flag overrides applied.
func (a *app) projectExpenses(cmd *cobra.Command, days int, period string) ([]model.Expense, error) {
	if !cmd.Flags().Changed("days") {
		days = a.conf.Projection.Days
	}
	projectionPeriod := a.conf.Projection.PeriodValue()
	if period != "" {
		p, ok := model.ParsePeriod(period)
		if !ok {
			return nil, fmt.Errorf("unknown period %q, expected daily, weekly or monthly", period)
		}
		projectionPeriod = p
	}

	projected := projection.CalculateExpenseProjectionWithFixedTime(a.now(), a.conf.ToModelExpenses(), days, projectionPeriod)

	a.logger.Info("projected expenses",
		zap.String("op", "project"),
		zap.Int("days", days),
		zap.String("period", string(projectionPeriod)),
		zap.Int("projected", len(projected)),
	)
	return projected, nil
}

func newAllocateCmd(a *app) *cobra.Command {
	var total, income float64

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Allocate a budget across prioritized categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("total") {
				total = a.conf.Allocation.TotalBudget
			}
			if !cmd.Flags().Changed("income") {
				income = a.conf.Allocation.Income
			}

			allocations := allocator.OptimizeBudget(total, a.conf.Allocation.ToModelCategories())
			recommendations := allocator.MakeRecommendations(allocations, income)

			a.logger.Info("allocated budget",
				zap.String("op", "allocate"),
				zap.Float64("total", total),
				zap.Float64("allocated", allocator.TotalAllocated(allocations)),
				zap.Int("recommendations", len(recommendations)),
			)
			return a.out.Allocation(output.AllocationReport{
				TotalBudget:     total,
				Income:          income,
				Allocations:     allocations,
				Recommendations: recommendations,
			})
		},
	}
	cmd.Flags().Float64Var(&total, "total", 0, "total budget to allocate (default from ledger)")
	cmd.Flags().Float64Var(&income, "income", 0, "income used for the savings recommendation (default from ledger)")
	return cmd
}

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify TEXT...",
		Short: "Predict the category of a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			searcher := classifier.New()
			corpus := a.conf.TrainingCorpus()
			searcher.Train(corpus)

			category := searcher.Classify(text)
			a.logger.Info("classified text",
				zap.String("op", "classify"),
				zap.Int("training", len(corpus)),
				zap.Int("vocabulary", searcher.VocabularySize()),
				zap.String("category", category),
			)
			if category == "" {
				a.logger.Warn("no training data, add a training section or described expenses to the ledger",
					zap.String("op", "classify"),
				)
			}
			return a.out.Classification(output.NewClassification(text, category, searcher.Scores(text)))
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY...",
		Short: "Rank ledger records by relevance to a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			records := model.Records(a.conf.ToModelExpenses(), a.conf.ToModelBudgets(), a.conf.ToModelGoals())

			ranked := classifier.SearchRecords(records, query)
			a.logger.Info("searched records",
				zap.String("op", "search"),
				zap.String("query", query),
				zap.Int("records", len(ranked)),
			)
			return a.out.Records(ranked)
		},
	}
}

func newSummaryCmd(a *app) *cobra.Command {
	var timeframe string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, budget comparisons and goal progress",
		RunE: func(_ *cobra.Command, _ []string) error {
			expenses := a.conf.ToModelExpenses()
			if timeframe != "" && timeframe != "all" {
				period, ok := model.ParsePeriod(timeframe)
				if !ok {
					return fmt.Errorf("unknown timeframe %q, expected all, daily, weekly or monthly", timeframe)
				}
				expenses = summary.FilterByTimeFrame(a.now(), expenses, period)
			}

			report := summary.Build(expenses, a.conf.ToModelBudgets(), a.conf.ToModelGoals())
			a.logger.Info("built summary",
				zap.String("op", "summary"),
				zap.String("timeframe", timeframe),
				zap.Int("expenses", report.Stats.ExpenseCount),
			)
			return a.out.Summary(report)
		},
	}
	cmd.Flags().StringVar(&timeframe, "timeframe", "all", "restrict expenses to: all, daily, weekly, monthly")
	return cmd
}
