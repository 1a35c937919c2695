package model

import (
	"agenda/shared/model"
)

const (
	TableName  = "patients"
	EntityName = "patient"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldBirthDate = "birth_date"
	FieldNotes     = "notes"
	FieldActive    = "active"
)

// Patient is the clinical record of a person in treatment. BirthDate is a
// civil "YYYY-MM-DD" string.
type Patient struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	BirthDate string `db:"birth_date"`
	Notes     string `db:"notes"`
	Active    bool   `db:"active"`
	model.Metadata
}
