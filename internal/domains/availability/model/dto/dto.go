package dto

import (
	"time"

	"agenda/internal/domains/availability/model"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type CreateAvailabilityRuleRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=Segunda Terça Quarta Quinta Sexta Sábado Domingo"`
	StartTime string `json:"start_time"  validate:"required,timeslot"`
}

// ToModel derives the end of the window from the start. Every slot is
// one hour long.
func (c *CreateAvailabilityRuleRequest) ToModel(user string) (model.AvailabilityRule, error) {
	start, err := time.Parse(constant.TimeSlotFormat, c.StartTime)
	if err != nil {
		return model.AvailabilityRule{}, err
	}

	return model.AvailabilityRule{
		ID:        uuid.NewString(),
		DayOfWeek: c.DayOfWeek,
		StartTime: c.StartTime,
		EndTime:   start.Add(time.Hour).Format(constant.TimeSlotFormat),
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateAvailabilityRuleRequest struct {
	Active *bool `db:"active" json:"active" validate:"required"`
}

type AvailabilityRuleResponse struct {
	ID        string `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *AvailabilityRuleResponse) FromModel(model model.AvailabilityRule) {
	r.ID = model.ID
	r.DayOfWeek = model.DayOfWeek
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetAvailabilityRulesResponse struct {
	Rules     []AvailabilityRuleResponse `json:"rules"`
	TotalPage int                        `json:"total_page"`
	TotalData int                        `json:"total_data"`
}

func (r *GetAvailabilityRulesResponse) FromModels(models []model.AvailabilityRule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rules = make([]AvailabilityRuleResponse, len(models))
	for i, mod := range models {
		r.Rules[i].FromModel(mod)
	}
}
