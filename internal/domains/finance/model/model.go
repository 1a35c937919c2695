package model

import (
	"agenda/shared/model"
)

const (
	TableName  = "finance_entries"
	EntityName = "finance_entry"

	FieldID          = "id"
	FieldType        = "type"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldDate        = "date"

	TypeIncome  = "income"
	TypeExpense = "expense"
)

// FinanceEntry is a single ledger line, an income or an expense, with its
// amount in BRL. Date is a civil "YYYY-MM-DD" string.
type FinanceEntry struct {
	ID          string  `db:"id"`
	Type        string  `db:"type"`
	Description string  `db:"description"`
	Category    string  `db:"category"`
	Amount      float64 `db:"amount"`
	Date        string  `db:"date"`
	model.Metadata
}

// MonthlySummary aggregates the ledger of a single month.
type MonthlySummary struct {
	Income  float64 `db:"income"`
	Expense float64 `db:"expense"`
	Entries int     `db:"entries"`
}

// Balance is income minus expense.
func (s MonthlySummary) Balance() float64 {
	return s.Income - s.Expense
}
