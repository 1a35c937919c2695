package session

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/session/model"
	"agenda/internal/domains/session/model/dto"
	"agenda/internal/domains/session/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/validator"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSession)
		routerGroup.Get("/", handler.GetSessions)
		routerGroup.Get("/{id}", handler.GetSessionByID)
		routerGroup.Patch("/{id}", handler.UpdateSession)
		routerGroup.Delete("/{id}", handler.DeleteSession)
	})
}

// CreateSession handles the creation of a new session note.
// @Summary Create a session note
// @Description Record the clinical note of an attendance for an existing patient.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Create Session Request"
// @Success 201 {object} response.Message "Session created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions [post]
// @Security BearerAuth
func (handler *Handler) CreateSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSession")
	defer scope.End()

	req := dto.CreateSessionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create session")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Session created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Session created successfully")
}

// GetSessions retrieves all session notes based on query parameters.
// @Summary Get all session notes
// @Description Retrieve all session notes, joined with the patient name, with optional filtering and pagination.
// @Tags Session
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param patient_id query string false "Filter by patient ID"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetSessionsResponse] "List of sessions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions [get]
// @Security BearerAuth
func (handler *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSessions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	patientID := r.URL.Query().Get(model.FieldPatientID)
	date := r.URL.Query().Get(model.FieldDate)

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

	if date != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    model.TableName,
		})
	}

	sessions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sessions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sessions retrieved successfully")

	response.WithJSON(w, http.StatusOK, sessions)
}

// GetSessionByID retrieves a session note by its ID.
// @Summary Get a session note by ID
// @Description Retrieve a session note by its unique identifier.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSessionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSessionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	session, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get session by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session retrieved successfully")

	response.WithJSON(w, http.StatusOK, session)
}

// UpdateSession updates an existing session note by its ID.
// @Summary Update a session note by ID
// @Description Update the date or notes of an existing session.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.UpdateSessionRequest true "Update Session Request"
// @Success 200 {object} response.Message "Session updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSessionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update session")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Session updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Session updated successfully")
}

// DeleteSession deletes a session note by its ID.
// @Summary Delete a session note by ID
// @Description Delete a session note using its unique identifier.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Message "Session deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete session")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Session deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Session deleted successfully")
}
