package dto

import (
	"agenda/internal/domains/session/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	Date      string `json:"date"       validate:"required,civildate"`
	Notes     string `json:"notes"      validate:"required"`
}

func (c *CreateSessionRequest) ToModel(user string) model.Session {
	return model.Session{
		ID:        uuid.NewString(),
		PatientID: c.PatientID,
		Date:      c.Date,
		Notes:     c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateSessionRequest struct {
	Date  string `db:"date"  json:"date"  validate:"omitempty,civildate"`
	Notes string `db:"notes" json:"notes" validate:"omitempty"`
}

type SessionResponse struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Notes       string `json:"notes"`
	gDto.Metadata
}

func (r *SessionResponse) FromModel(model model.Session) {
	r.ID = model.ID
	r.PatientID = model.PatientID
	r.PatientName = model.PatientName
	r.Date = model.Date
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetSessionsResponse struct {
	Sessions  []SessionResponse `json:"sessions"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSessionsResponse) FromModels(models []model.Session, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Sessions = make([]SessionResponse, len(models))
	for i, mod := range models {
		r.Sessions[i].FromModel(mod)
	}
}
