package appointment

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/appointment/model"
	"agenda/internal/domains/appointment/model/dto"
	"agenda/internal/domains/appointment/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/validator"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Appointment
	otel    otel.Otel
}

func New(service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Get("/slots", handler.GetBookableSlots)
		routerGroup.Get("/services", handler.GetServices)
		routerGroup.Post("/", handler.CreateAppointment)
		routerGroup.Get("/cancellation", handler.GetCancellationSummary)
		routerGroup.Post("/cancellation", handler.CancelByToken)
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Get("/{id}", handler.GetAppointmentByID)
		routerGroup.Patch("/{id}", handler.UpdateAppointment)
		routerGroup.Post("/{id}/cancel", handler.CancelAppointment)
	})
}

// GetBookableSlots lists the free slots of a calendar day.
// @Summary Get bookable slots
// @Description List the free one-hour slots of the given day, weekly availability minus active appointments.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.BookableSlotsResponse] "Free slots in ascending order"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/slots [get]
func (handler *Handler) GetBookableSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookableSlots")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	slots, err := handler.service.GetBookableSlots(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookable slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookable slots retrieved successfully for " + date)

	response.WithJSON(w, http.StatusOK, slots)
}

// GetServices lists the offered services with their current prices.
// @Summary Get service catalog
// @Description List the offered services and current prices in BRL.
// @Tags Appointment
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetServicesResponse] "Service catalog"
// @Router /v1/appointments/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	services := handler.service.GetServices(ctx)

	response.WithJSON(w, http.StatusOK, services)
}

// CreateAppointment books a slot for a client.
// @Summary Book an appointment
// @Description Book a free slot. The price is snapshotted from the catalog and a cancellation link is e-mailed to the client.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Data[dto.AppointmentResponse] "Appointment created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
func (handler *Handler) CreateAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAppointment")
	defer scope.End()

	req := dto.CreateAppointmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	appointment, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create appointment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment created successfully for " + req.Date + " " + req.TimeSlot)

	response.WithJSON(writer, http.StatusCreated, appointment)
}

// GetCancellationSummary shows an appointment by its cancellation token.
// @Summary Get cancellation summary
// @Description Show the appointment behind a cancellation token so the client can confirm before cancelling.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param token query string true "Cancellation token"
// @Success 200 {object} response.Data[dto.CancellationSummaryResponse] "Appointment summary"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/cancellation [get]
func (handler *Handler) GetCancellationSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCancellationSummary")
	defer scope.End()

	token := r.URL.Query().Get(constant.RequestParamToken)

	summary, err := handler.service.GetCancellationSummary(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cancellation summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cancellation summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

// CancelByToken cancels an appointment using its cancellation token.
// @Summary Cancel an appointment by token
// @Description Cancel the appointment behind a cancellation token. Cancelling twice is a safe no-op.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param token query string true "Cancellation token"
// @Success 200 {object} response.Message "Appointment cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/cancellation [post]
func (handler *Handler) CancelByToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelByToken")
	defer scope.End()

	token := r.URL.Query().Get(constant.RequestParamToken)

	if err := handler.service.CancelByToken(ctx, token); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel appointment by token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment cancelled successfully by client")

	response.WithMessage(w, http.StatusOK, "Appointment cancelled successfully")
}

// GetAppointments retrieves all appointments based on query parameters.
// @Summary Get all appointments
// @Description Retrieve all appointments with optional filtering and pagination.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param status query string false "Filter by status (active, cancelled)"
// @Param service query string false "Filter by service"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse] "List of appointments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	date := r.URL.Query().Get(model.FieldDate)
	status := r.URL.Query().Get(model.FieldStatus)
	serviceName := r.URL.Query().Get(model.FieldService)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if date != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if serviceName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldService,
			Operator: gDto.FilterOperatorEq,
			Value:    serviceName,
			Table:    model.TableName,
		})
	}

	appointments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointments retrieved successfully")

	response.WithJSON(w, http.StatusOK, appointments)
}

// GetAppointmentByID retrieves an appointment by its ID.
// @Summary Get an appointment by ID
// @Description Retrieve an appointment by its unique identifier.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Data[dto.AppointmentResponse] "Appointment details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	appointment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment retrieved successfully")

	response.WithJSON(w, http.StatusOK, appointment)
}

// UpdateAppointment updates an existing appointment by its ID.
// @Summary Update an appointment by ID
// @Description Update the details of an existing appointment.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Update Appointment Request"
// @Success 200 {object} response.Message "Appointment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAppointmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update appointment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Appointment updated successfully")
}

// CancelAppointment cancels an appointment by its ID.
// @Summary Cancel an appointment by ID
// @Description Cancel an appointment on behalf of the practitioner. The record is kept with status cancelled.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Appointment cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.CancelByID(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel appointment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Appointment cancelled successfully")
}
