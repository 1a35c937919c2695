package model

import (
	"agenda/shared/model"
)

const (
	TableName  = "patient_documents"
	EntityName = "document"

	FieldID        = "id"
	FieldPatientID = "patient_id"
	FieldFileName  = "file_name"
	FieldURL       = "url"
)

// Document is a file attached to a patient record. The file itself lives
// in S3, the row only keeps its URL. PatientName is read through the
// join and never written.
type Document struct {
	ID          string `db:"id"`
	PatientID   string `db:"patient_id"`
	PatientName string `db:"patient_name" table:"patients" column:"name"`
	FileName    string `db:"file_name"`
	URL         string `db:"url"`
	model.Metadata
}

func (Document) GetJoinQuery() string {
	return "LEFT JOIN patients ON patients.id = patient_documents.patient_id"
}
