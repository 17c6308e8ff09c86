// Package output provides utilities for formatting and displaying analytics
// results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iwvelando/fintrack/internal/model"
	"github.com/iwvelando/fintrack/internal/summary"
	"github.com/iwvelando/fintrack/pkg/constants"
	"github.com/iwvelando/fintrack/pkg/format"
	"github.com/iwvelando/fintrack/pkg/validation"
	"gopkg.in/yaml.v3"
)

// barWidth is the cell width of utilization bars.
const barWidth = 20

// Writer renders results in one output format.
type Writer struct {
	out    io.Writer
	format string
	symbol string
}

// NewWriter returns a Writer for the given output format that prints amounts
// with the symbol of currencyCode.
func NewWriter(out io.Writer, outputFormat, currencyCode string) (*Writer, error) {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return nil, err
	}
	return &Writer{out: out, format: outputFormat, symbol: format.SymbolFor(currencyCode)}, nil
}

// Format reports the writer's output format.
func (w *Writer) Format() string {
	return w.format
}

// AllocationReport is an allocation with its recommendations.
type AllocationReport struct {
	TotalBudget     float64                  `json:"totalBudget" yaml:"totalBudget"`
	Income          float64                  `json:"income" yaml:"income"`
	Allocations     []model.BudgetAllocation `json:"allocations" yaml:"allocations"`
	Recommendations []string                 `json:"recommendations" yaml:"recommendations"`
}

// CategoryScore is the log-probability of one category.
type CategoryScore struct {
	Category       string  `json:"category" yaml:"category"`
	LogProbability float64 `json:"logProbability" yaml:"logProbability"`
}

// Classification is the predicted category of a text.
type Classification struct {
	Text     string          `json:"text" yaml:"text"`
	Category string          `json:"category" yaml:"category"`
	Scores   []CategoryScore `json:"scores" yaml:"scores"`
}

// NewClassification ranks scores from most to least likely, breaking ties
// by category name.
func NewClassification(text, category string, scores map[string]float64) Classification {
	ranked := make([]CategoryScore, 0, len(scores))
	for c, s := range scores {
		ranked = append(ranked, CategoryScore{Category: c, LogProbability: s})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].LogProbability != ranked[j].LogProbability {
			return ranked[i].LogProbability > ranked[j].LogProbability
		}
		return ranked[i].Category < ranked[j].Category
	})
	return Classification{Text: text, Category: category, Scores: ranked}
}

// recordView tags a record with its kind for structured output.
type recordView struct {
	Kind   model.RecordKind `json:"kind" yaml:"kind"`
	ID     string           `json:"id" yaml:"id"`
	Record model.Record     `json:"record" yaml:"record"`
}

// Projections writes projected expenses.
func (w *Writer) Projections(expenses []model.Expense) error {
	switch w.format {
	case constants.OutputFormatJSON, constants.OutputFormatYAML:
		return w.encode(expenses)
	}

	headers := []string{"date", "category", "amount", "description"}
	rows := make([][]string, 0, len(expenses))
	total := 0.0
	for _, e := range expenses {
		rows = append(rows, []string{e.Date, e.Category, w.amount(e.Amount), e.Description})
		total += e.Amount
	}

	if w.format == constants.OutputFormatCSV {
		return w.csv(headers, rows)
	}

	var b strings.Builder
	b.WriteString(RenderTitle("PROJECTED EXPENSES"))
	b.WriteString("\n")
	b.WriteString(RenderTable(Table{Headers: titleCase(headers), Rows: rows}))
	fmt.Fprintf(&b, "  %d projected expenses totalling %s\n", len(expenses), w.amount(total))
	return w.write(b.String())
}

// Utilization writes budget utilization curves.
func (w *Writer) Utilization(results []model.BudgetProjectionResult) error {
	switch w.format {
	case constants.OutputFormatJSON, constants.OutputFormatYAML:
		return w.encode(results)
	case constants.OutputFormatCSV:
		headers := []string{"budget", "category", "budget period", "bucket", "label", "amount", "percentage"}
		var rows [][]string
		for _, r := range results {
			for _, p := range r.Projections {
				rows = append(rows, []string{
					r.ID, r.Category, string(r.Period), p.Period, p.Label,
					w.amount(p.Amount), fmt.Sprintf("%d", p.Percentage),
				})
			}
		}
		return w.csv(headers, rows)
	}

	var b strings.Builder
	b.WriteString(RenderTitle("BUDGET UTILIZATION"))
	b.WriteString("\n")
	for _, r := range results {
		rows := make([][]string, 0, len(r.Projections))
		for _, p := range r.Projections {
			rows = append(rows, []string{p.Label, w.amount(p.Amount), RenderBar(p.Percentage, barWidth)})
		}
		b.WriteString(RenderTable(Table{
			Title: fmt.Sprintf("%s (%s budget of %s, %s spent so far)",
				r.Category, r.Period, w.amount(r.Amount), w.amount(r.CurrentUtilization)),
			Headers: []string{"Period", "Spent", "Utilization"},
			Rows:    rows,
		}))
		b.WriteString("\n")
	}
	return w.write(b.String())
}

// Allocation writes a budget allocation and its recommendations.
func (w *Writer) Allocation(report AllocationReport) error {
	switch w.format {
	case constants.OutputFormatJSON, constants.OutputFormatYAML:
		return w.encode(report)
	}

	headers := []string{"category", "allocated", "percent", "status"}
	rows := make([][]string, 0, len(report.Allocations))
	for _, a := range report.Allocations {
		rows = append(rows, []string{a.Name, w.amount(a.AllocatedAmount), fmt.Sprintf("%.1f%%", a.PercentAllocated), fulfilment(a)})
	}

	if w.format == constants.OutputFormatCSV {
		return w.csv(headers, rows)
	}

	var b strings.Builder
	b.WriteString(RenderTitle("BUDGET ALLOCATION"))
	b.WriteString("\n")
	b.WriteString(RenderTable(Table{
		Title:   fmt.Sprintf("Total budget %s, income %s", w.amount(report.TotalBudget), w.amount(report.Income)),
		Headers: titleCase(headers),
		Rows:    rows,
	}))
	if len(report.Recommendations) > 0 {
		b.WriteString("\n  Recommendations:\n")
		for _, r := range report.Recommendations {
			fmt.Fprintf(&b, "    - %s\n", r)
		}
	}
	return w.write(b.String())
}

// Classification writes the predicted category of a text.
func (w *Writer) Classification(c Classification) error {
	switch w.format {
	case constants.OutputFormatJSON, constants.OutputFormatYAML:
		return w.encode(c)
	}

	headers := []string{"category", "log probability"}
	rows := make([][]string, 0, len(c.Scores))
	for _, s := range c.Scores {
		rows = append(rows, []string{s.Category, fmt.Sprintf("%.4f", s.LogProbability)})
	}

	if w.format == constants.OutputFormatCSV {
		return w.csv(headers, rows)
	}

	category := c.Category
	if category == "" {
		category = "(untrained)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  %q is most likely %s\n", c.Text, headerStyle.Render(category))
	if len(rows) > 0 {
		b.WriteString(RenderTable(Table{Headers: titleCase(headers), Rows: rows}))
	}
	return w.write(b.String())
}

// Records writes ranked search results.
func (w *Writer) Records(records []model.Record) error {
	switch w.format {
	case constants.OutputFormatJSON, constants.OutputFormatYAML:
		views := make([]recordView, 0, len(records))
		for _, r := range records {
			views = append(views, recordView{Kind: r.Kind(), ID: r.RecordID(), Record: r})
		}
		return w.encode(views)
	}

	headers := []string{"kind", "id", "text"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{string(r.Kind()), r.RecordID(), r.SearchText()})
	}

	if w.format == constants.OutputFormatCSV {
		return w.csv(headers, rows)
	}

	var b strings.Builder
	b.WriteString(RenderTitle("SEARCH RESULTS"))
	b.WriteString("\n")
	b.WriteString(RenderTable(Table{Headers: titleCase(headers), Rows: rows}))
	return w.write(b.String())
}

// Summary writes a dashboard report.
func (w *Writer) Summary(report summary.Report) error {
	switch w.format {
	case constants.OutputFormatJSON, constants.OutputFormatYAML:
		return w.encode(report)
	case constants.OutputFormatCSV:
		headers := []string{"section", "name", "amount", "budget", "remaining", "progress"}
		rows := [][]string{{
			"totals", "all", w.amount(report.Totals.TotalExpenses),
			w.amount(report.Totals.TotalBudget), w.amount(report.Totals.Remaining), "",
		}}
		for _, c := range report.Categories {
			rows = append(rows, []string{"category", c.Category, w.amount(c.Amount), "", "", ""})
		}
		for _, c := range report.Budgets {
			rows = append(rows, []string{"budget", c.Category, w.amount(c.Spent), w.amount(c.Budget), w.amount(c.Remaining), ""})
		}
		for _, g := range report.Goals {
			rows = append(rows, []string{"goal", g.Title, w.amount(g.Current), w.amount(g.Target), w.amount(g.Remaining), fmt.Sprintf("%.1f", g.Progress)})
		}
		return w.csv(headers, rows)
	}

	var b strings.Builder
	b.WriteString(RenderTitle("SUMMARY"))
	b.WriteString("\n")
	b.WriteString(RenderTable(Table{
		Title:   "Totals",
		Headers: []string{"Measure", "Amount"},
		Rows: [][]string{
			{"Total expenses", w.amount(report.Totals.TotalExpenses)},
			{"Total budget", w.amount(report.Totals.TotalBudget)},
			{"Remaining", w.amount(report.Totals.Remaining)},
			{"Expenses recorded", fmt.Sprintf("%d", report.Stats.ExpenseCount)},
			{"Budgets", fmt.Sprintf("%d", report.Stats.BudgetCount)},
		},
	}))

	if len(report.Categories) > 0 {
		rows := make([][]string, 0, len(report.Categories))
		for _, c := range report.Categories {
			rows = append(rows, []string{c.Category, w.amount(c.Amount)})
		}
		b.WriteString(RenderTable(Table{Title: "Spending by category", Headers: []string{"Category", "Spent"}, Rows: rows}))
	}

	if len(report.Budgets) > 0 {
		rows := make([][]string, 0, len(report.Budgets))
		for _, c := range report.Budgets {
			rows = append(rows, []string{c.Category, w.amount(c.Budget), w.amount(c.Spent), w.amount(c.Remaining)})
		}
		b.WriteString(RenderTable(Table{Title: "Budgets", Headers: []string{"Category", "Budget", "Spent", "Remaining"}, Rows: rows}))
	}

	if len(report.Goals) > 0 {
		rows := make([][]string, 0, len(report.Goals))
		for _, g := range report.Goals {
			rows = append(rows, []string{g.Title, w.amount(g.Current), w.amount(g.Target), RenderBar(int(g.Progress), barWidth)})
		}
		b.WriteString(RenderTable(Table{Title: "Goals", Headers: []string{"Goal", "Saved", "Target", "Progress"}, Rows: rows}))
	}

	return w.write(b.String())
}

func (w *Writer) amount(value float64) string {
	if w.format == constants.OutputFormatCSV {
		return fmt.Sprintf("%.2f", value)
	}
	return format.CurrencyWithSymbol(value, w.symbol)
}

func (w *Writer) encode(v interface{}) error {
	if w.format == constants.OutputFormatYAML {
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml output: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json output: %w", err)
	}
	return nil
}

// csv writes every field double-quoted, doubling embedded quotes.
func (w *Writer) csv(headers []string, rows [][]string) error {
	var b strings.Builder
	writeCSVLine(&b, headers)
	for _, row := range rows {
		writeCSVLine(&b, row)
	}
	return w.write(b.String())
}

func writeCSVLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, `"%s"`, strings.ReplaceAll(f, `"`, `""`))
	}
	b.WriteString("\n")
}

func (w *Writer) write(s string) error {
	if _, err := io.WriteString(w.out, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func fulfilment(a model.BudgetAllocation) string {
	if a.Fulfilled {
		return "funded"
	}
	if a.AllocatedAmount == 0 {
		return "unfunded"
	}
	return "partial"
}

func titleCase(headers []string) []string {
	titled := make([]string, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		titled[i] = strings.ToUpper(h[:1]) + h[1:]
	}
	return titled
}
