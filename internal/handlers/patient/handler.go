package patient

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/patient/model"
	"agenda/internal/domains/patient/model/dto"
	"agenda/internal/domains/patient/service"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/validator"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const requestParamSearch = "search"

type Handler struct {
	service service.Patient
	otel    otel.Otel
}

func New(service service.Patient, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/patients", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePatient)
		routerGroup.Get("/", handler.GetPatients)
		routerGroup.Get("/{id}", handler.GetPatientByID)
		routerGroup.Patch("/{id}", handler.UpdatePatient)
		routerGroup.Delete("/{id}", handler.DeletePatient)
	})
}

// CreatePatient handles the creation of a new patient record.
// @Summary Create a patient
// @Description Create a new patient record.
// @Tags Patient
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRequest true "Create Patient Request"
// @Success 201 {object} response.Message "Patient created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients [post]
// @Security BearerAuth
func (handler *Handler) CreatePatient(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePatient")
	defer scope.End()

	req := dto.CreatePatientRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create patient")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Patient created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Patient created successfully")
}

// GetPatients retrieves all patients based on query parameters.
// @Summary Get all patients
// @Description Retrieve all patients with optional name search and pagination.
// @Tags Patient
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Search by patient name"
// @Param active query bool false "Filter by active state"
// @Success 200 {object} response.Data[dto.GetPatientsResponse] "List of patients"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients [get]
// @Security BearerAuth
func (handler *Handler) GetPatients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	search := r.URL.Query().Get(requestParamSearch)
	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    "%" + search + "%",
			Table:    model.TableName,
		})
	}

	if active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	patients, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patients")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patients retrieved successfully")

	response.WithJSON(w, http.StatusOK, patients)
}

// GetPatientByID retrieves a patient by its ID.
// @Summary Get a patient by ID
// @Description Retrieve a patient record by its unique identifier.
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Data[dto.PatientResponse] "Patient details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatientByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	patient, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patient by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient retrieved successfully")

	response.WithJSON(w, http.StatusOK, patient)
}

// UpdatePatient updates an existing patient by its ID.
// @Summary Update a patient by ID
// @Description Update the details of an existing patient record.
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param request body dto.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} response.Message "Patient updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePatient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePatientRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update patient")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Patient updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Patient updated successfully")
}

// DeletePatient deletes a patient by its ID.
// @Summary Delete a patient by ID
// @Description Delete a patient record using its unique identifier.
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Message "Patient deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePatient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete patient")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Patient deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Patient deleted successfully")
}
