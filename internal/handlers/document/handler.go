package document

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/document/model"
	"agenda/internal/domains/document/model/dto"
	"agenda/internal/domains/document/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/validator"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Document
	otel    otel.Otel
}

func New(service service.Document, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/documents", func(routerGroup chi.Router) {
		routerGroup.Post("/upload", handler.UploadDocument)
		routerGroup.Get("/", handler.GetDocuments)
		routerGroup.Get("/{id}", handler.GetDocumentByID)
		routerGroup.Delete("/{id}", handler.DeleteDocument)
	})
}

// UploadDocument handles document upload to a patient chart.
// @Summary Upload a patient document
// @Description Upload a file to S3 and attach it to a patient record.
// @Tags Document
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file to upload"
// @Param patient_id formData string true "Patient ID"
// @Success 201 {object} response.Data[dto.DocumentResponse] "Document uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadDocument")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadDocumentRequest{
		PatientID: r.FormValue(model.FieldPatientID),
		File:      fileHeader,
		Document:  file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate upload request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDocuments retrieves all patient documents based on query parameters.
// @Summary Get all documents
// @Description Retrieve all patient documents with optional filtering and pagination.
// @Tags Document
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param patient_id query string false "Filter by patient ID"
// @Success 200 {object} response.Data[dto.GetDocumentsResponse] "List of documents"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents [get]
// @Security BearerAuth
func (handler *Handler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocuments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	patientID := r.URL.Query().Get(model.FieldPatientID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if patientID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPatientID,
			Operator: gDto.FilterOperatorEq,
			Value:    patientID,
			Table:    model.TableName,
		})
	}

	documents, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get documents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Documents retrieved successfully")

	response.WithJSON(w, http.StatusOK, documents)
}

// GetDocumentByID retrieves a document by its ID.
// @Summary Get a document by ID
// @Description Retrieve a patient document by its unique identifier.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Data[dto.DocumentResponse] "Document details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDocumentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocumentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	document, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get document by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document retrieved successfully")

	response.WithJSON(w, http.StatusOK, document)
}

// DeleteDocument deletes a document by its ID.
// @Summary Delete a document by ID
// @Description Delete a patient document and its file in S3.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Message "Document deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Document deleted successfully")
}
