package model

import (
	"agenda/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID                = "id"
	FieldClientName        = "client_name"
	FieldClientEmail       = "client_email"
	FieldClientPhone       = "client_phone"
	FieldService           = "service"
	FieldPrice             = "price"
	FieldDate              = "date"
	FieldTimeSlot          = "time_slot"
	FieldStatus            = "status"
	FieldCancellationToken = "cancellation_token"

	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// ServiceCatalog maps each offered service to its current price in BRL.
// The price is snapshotted onto the appointment at booking time, so later
// catalog changes never rewrite history.
var ServiceCatalog = map[string]float64{
	"Consulta Inicial":        150,
	"Acompanhamento Semanal":  120,
	"Terapia de Casal":        200,
	"Atendimento Emergencial": 180,
}

// Appointment is a client booking for a single one-hour slot. Date is a
// civil "YYYY-MM-DD" string and TimeSlot a "HH:MM" string, matching the
// availability rules they are validated against.
type Appointment struct {
	ID                string  `db:"id"`
	ClientName        string  `db:"client_name"`
	ClientEmail       string  `db:"client_email"`
	ClientPhone       string  `db:"client_phone"`
	Service           string  `db:"service"`
	Price             float64 `db:"price"`
	Date              string  `db:"date"`
	TimeSlot          string  `db:"time_slot"`
	Status            string  `db:"status"`
	CancellationToken string  `db:"cancellation_token"`
	model.Metadata
}
