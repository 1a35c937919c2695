package model

import (
	"agenda/shared/model"
)

const (
	TableName  = "sessions"
	EntityName = "session"

	FieldID        = "id"
	FieldPatientID = "patient_id"
	FieldDate      = "date"
	FieldNotes     = "notes"
)

// Session is the clinical note of a single attendance. PatientName is
// read through the join and never written.
type Session struct {
	ID          string `db:"id"`
	PatientID   string `db:"patient_id"`
	PatientName string `db:"patient_name" table:"patients" column:"name"`
	Date        string `db:"date"`
	Notes       string `db:"notes"`
	model.Metadata
}

func (Session) GetJoinQuery() string {
	return "LEFT JOIN patients ON patients.id = sessions.patient_id"
}
