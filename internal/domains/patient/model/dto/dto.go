package dto

import (
	"agenda/internal/domains/patient/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	Email     string `json:"email"      validate:"omitempty,email,max=100"`
	Phone     string `json:"phone"      validate:"omitempty,brphone"`
	BirthDate string `json:"birth_date" validate:"omitempty,civildate"`
	Notes     string `json:"notes"      validate:"omitempty"`
}

func (c *CreatePatientRequest) ToModel(user string) model.Patient {
	return model.Patient{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		BirthDate: c.BirthDate,
		Notes:     c.Notes,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePatientRequest struct {
	Name      string `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Email     string `db:"email"      json:"email"      validate:"omitempty,email,max=100"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,brphone"`
	BirthDate string `db:"birth_date" json:"birth_date" validate:"omitempty,civildate"`
	Notes     string `db:"notes"      json:"notes"      validate:"omitempty"`
	Active    *bool  `db:"active"     json:"active"     validate:"omitempty"`
}

type PatientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
	Notes     string `json:"notes"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *PatientResponse) FromModel(model model.Patient) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.BirthDate = model.BirthDate
	r.Notes = model.Notes
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetPatientsResponse struct {
	Patients  []PatientResponse `json:"patients"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPatientsResponse) FromModels(models []model.Patient, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Patients = make([]PatientResponse, len(models))
	for i, mod := range models {
		r.Patients[i].FromModel(mod)
	}
}
