package dto

import (
	"mime/multipart"

	"agenda/internal/domains/document/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type UploadDocumentRequest struct {
	PatientID string                `json:"patient_id" validate:"required"`
	File      *multipart.FileHeader `json:"file"       swaggerignore:"true" validate:"required,mimetypes=application/pdf image/png image/jpg image/jpeg"`
	Document  multipart.File        `json:"-"`
}

func (c *UploadDocumentRequest) ToModel(user, url string) model.Document {
	return model.Document{
		ID:        uuid.NewString(),
		PatientID: c.PatientID,
		FileName:  c.File.Filename,
		URL:       url,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type DocumentResponse struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	gDto.Metadata
}

func (r *DocumentResponse) FromModel(model model.Document) {
	r.ID = model.ID
	r.PatientID = model.PatientID
	r.PatientName = model.PatientName
	r.FileName = model.FileName
	r.URL = model.URL
	r.Metadata.FromModel(model.Metadata)
}

type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetDocumentsResponse) FromModels(models []model.Document, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Documents = make([]DocumentResponse, len(models))
	for i, mod := range models {
		r.Documents[i].FromModel(mod)
	}
}
