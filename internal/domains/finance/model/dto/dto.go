package dto

import (
	"agenda/internal/domains/finance/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type CreateFinanceEntryRequest struct {
	Type        string  `json:"type"        validate:"required,oneof=income expense"`
	Description string  `json:"description" validate:"required,max=200"`
	Category    string  `json:"category"    validate:"omitempty,max=100"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Date        string  `json:"date"        validate:"required,civildate"`
}

func (c *CreateFinanceEntryRequest) ToModel(user string) model.FinanceEntry {
	return model.FinanceEntry{
		ID:          uuid.NewString(),
		Type:        c.Type,
		Description: c.Description,
		Category:    c.Category,
		Amount:      c.Amount,
		Date:        c.Date,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFinanceEntryRequest struct {
	Type        string  `db:"type"        json:"type"        validate:"omitempty,oneof=income expense"`
	Description string  `db:"description" json:"description" validate:"omitempty,max=200"`
	Category    string  `db:"category"    json:"category"    validate:"omitempty,max=100"`
	Amount      float64 `db:"amount"      json:"amount"      validate:"omitempty,gt=0"`
	Date        string  `db:"date"        json:"date"        validate:"omitempty,civildate"`
}

type FinanceEntryResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	gDto.Metadata
}

func (r *FinanceEntryResponse) FromModel(model model.FinanceEntry) {
	r.ID = model.ID
	r.Type = model.Type
	r.Description = model.Description
	r.Category = model.Category
	r.Amount = model.Amount
	r.Date = model.Date
	r.Metadata.FromModel(model.Metadata)
}

type GetFinanceEntriesResponse struct {
	Entries   []FinanceEntryResponse `json:"entries"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetFinanceEntriesResponse) FromModels(models []model.FinanceEntry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]FinanceEntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}

type MonthlySummaryResponse struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
	Entries int     `json:"entries"`
}

func (r *MonthlySummaryResponse) FromModel(month string, summary model.MonthlySummary) {
	r.Month = month
	r.Income = summary.Income
	r.Expense = summary.Expense
	r.Balance = summary.Balance()
	r.Entries = summary.Entries
}
