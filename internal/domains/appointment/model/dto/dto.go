package dto

import (
	"sort"

	"agenda/internal/domains/appointment/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name"  validate:"required,max=100"`
	ClientEmail string `json:"client_email" validate:"required,email,max=100"`
	ClientPhone string `json:"client_phone" validate:"required,brphone"`
	Service     string `json:"service"      validate:"required,max=100"`
	Date        string `json:"date"         validate:"required,civildate"`
	TimeSlot    string `json:"time_slot"    validate:"required,timeslot"`
}

// ToModel snapshots the given catalog price and mints the cancellation
// token. Bookings come from the public site, so user is usually empty.
func (c *CreateAppointmentRequest) ToModel(user string, price float64) model.Appointment {
	return model.Appointment{
		ID:                uuid.NewString(),
		ClientName:        c.ClientName,
		ClientEmail:       c.ClientEmail,
		ClientPhone:       c.ClientPhone,
		Service:           c.Service,
		Price:             price,
		Date:              c.Date,
		TimeSlot:          c.TimeSlot,
		Status:            model.StatusActive,
		CancellationToken: uuid.NewString(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAppointmentRequest struct {
	ClientName  string `db:"client_name"  json:"client_name"  validate:"omitempty,max=100"`
	ClientEmail string `db:"client_email" json:"client_email" validate:"omitempty,email,max=100"`
	ClientPhone string `db:"client_phone" json:"client_phone" validate:"omitempty,brphone"`
	Date        string `db:"date"         json:"date"         validate:"omitempty,civildate"`
	TimeSlot    string `db:"time_slot"    json:"time_slot"    validate:"omitempty,timeslot"`
	Status      string `db:"status"       json:"status"       validate:"omitempty,oneof=active cancelled"`
}

type AppointmentResponse struct {
	ID                string  `json:"id"`
	ClientName        string  `json:"client_name"`
	ClientEmail       string  `json:"client_email"`
	ClientPhone       string  `json:"client_phone"`
	Service           string  `json:"service"`
	Price             float64 `json:"price"`
	Date              string  `json:"date"`
	TimeSlot          string  `json:"time_slot"`
	Status            string  `json:"status"`
	CancellationToken string  `json:"cancellation_token"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.ClientName = model.ClientName
	r.ClientEmail = model.ClientEmail
	r.ClientPhone = model.ClientPhone
	r.Service = model.Service
	r.Price = model.Price
	r.Date = model.Date
	r.TimeSlot = model.TimeSlot
	r.Status = model.Status
	r.CancellationToken = model.CancellationToken
	r.Metadata.FromModel(model.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

// BookableSlotsResponse lists the free slots of a single calendar day in
// ascending order.
type BookableSlotsResponse struct {
	Date      string   `json:"date"`
	DayOfWeek string   `json:"day_of_week"`
	Slots     []string `json:"slots"`
}

// CancellationSummaryResponse is what a client sees on the cancellation
// page before confirming. The token never travels back in the payload.
type CancellationSummaryResponse struct {
	ClientName string  `json:"client_name"`
	Service    string  `json:"service"`
	Price      float64 `json:"price"`
	Date       string  `json:"date"`
	TimeSlot   string  `json:"time_slot"`
	Status     string  `json:"status"`
}

func (r *CancellationSummaryResponse) FromModel(model model.Appointment) {
	r.ClientName = model.ClientName
	r.Service = model.Service
	r.Price = model.Price
	r.Date = model.Date
	r.TimeSlot = model.TimeSlot
	r.Status = model.Status
}

type ServiceResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type GetServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromCatalog flattens the price catalog into a name-sorted list.
func (r *GetServicesResponse) FromCatalog(catalog map[string]float64) {
	r.Services = make([]ServiceResponse, 0, len(catalog))
	for name, price := range catalog {
		r.Services = append(r.Services, ServiceResponse{Name: name, Price: price})
	}

	sort.Slice(r.Services, func(i, j int) bool {
		return r.Services[i].Name < r.Services[j].Name
	})
}
