package model

import "strings"

// RecordKind tags the concrete type behind a Record.
type RecordKind string

const (
	KindExpense RecordKind = "expense"
	KindBudget  RecordKind = "budget"
	KindGoal    RecordKind = "goal"
)

// Record is a ledger entry of any kind. The set of implementations is closed
// to this package.
type Record interface {
	Kind() RecordKind
	RecordID() string
	// SearchText is the text a lexical search matches against.
	SearchText() string
	isRecord()
}

func (Expense) Kind() RecordKind  { return KindExpense }
func (e Expense) RecordID() string { return e.ID }
func (e Expense) SearchText() string {
	return joinText(e.Category, e.Description)
}
func (Expense) isRecord() {}

func (Budget) Kind() RecordKind  { return KindBudget }
func (b Budget) RecordID() string { return b.ID }
func (b Budget) SearchText() string {
	return joinText(b.Category, string(b.Period))
}
func (Budget) isRecord() {}

func (Goal) Kind() RecordKind  { return KindGoal }
func (g Goal) RecordID() string { return g.ID }
func (g Goal) SearchText() string {
	return joinText(g.Title, g.Description, g.Category)
}
func (Goal) isRecord() {}

// Records collects expenses, budgets and goals into one slice, in that order.
func Records(expenses []Expense, budgets []Budget, goals []Goal) []Record {
	records := make([]Record, 0, len(expenses)+len(budgets)+len(goals))
	for _, e := range expenses {
		records = append(records, e)
	}
	for _, b := range budgets {
		records = append(records, b)
	}
	for _, g := range goals {
		records = append(records, g)
	}
	return records
}

func joinText(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
