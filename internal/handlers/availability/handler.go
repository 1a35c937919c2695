package availability

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/availability/model"
	"agenda/internal/domains/availability/model/dto"
	"agenda/internal/domains/availability/service"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/validator"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRule)
		routerGroup.Get("/", handler.GetRules)
		routerGroup.Get("/{id}", handler.GetRuleByID)
		routerGroup.Patch("/{id}", handler.UpdateRule)
		routerGroup.Delete("/{id}", handler.DeleteRule)
	})
}

// CreateRule handles the creation of a new weekly availability rule.
// @Summary Create an availability rule
// @Description Register a weekly one-hour attendance window for the given day and start time.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CreateAvailabilityRuleRequest true "Create Availability Rule Request"
// @Success 201 {object} response.Message "Availability rule created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [post]
// @Security BearerAuth
func (handler *Handler) CreateRule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRule")
	defer scope.End()

	req := dto.CreateAvailabilityRuleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create availability rule")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Availability rule created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Availability rule created successfully")
}

// GetRules retrieves all availability rules based on query parameters.
// @Summary Get all availability rules
// @Description Retrieve all weekly availability rules with optional filtering and pagination.
// @Tags Availability
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param day_of_week query string false "Filter by day of week (Segunda ... Domingo)"
// @Param active query bool false "Filter by active state"
// @Success 200 {object} response.Data[dto.GetAvailabilityRulesResponse] "List of availability rules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
// @Security BearerAuth
func (handler *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRules")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	dayOfWeek := r.URL.Query().Get(model.FieldDayOfWeek)
	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if dayOfWeek != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDayOfWeek,
			Operator: gDto.FilterOperatorEq,
			Value:    dayOfWeek,
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

	rules, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability rules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability rules retrieved successfully")

	response.WithJSON(w, http.StatusOK, rules)
}

// GetRuleByID retrieves an availability rule by its ID.
// @Summary Get an availability rule by ID
// @Description Retrieve an availability rule by its unique identifier.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Availability Rule ID"
// @Success 200 {object} response.Data[dto.AvailabilityRuleResponse] "Availability rule details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRuleByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRuleByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rule, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability rule by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability rule retrieved successfully")

	response.WithJSON(w, http.StatusOK, rule)
}

// UpdateRule updates an existing availability rule by its ID.
// @Summary Update an availability rule by ID
// @Description Activate or deactivate an existing availability rule.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Availability Rule ID"
// @Param request body dto.UpdateAvailabilityRuleRequest true "Update Availability Rule Request"
// @Success 200 {object} response.Message "Availability rule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAvailabilityRuleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update availability rule")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Availability rule updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Availability rule updated successfully")
}

// DeleteRule deletes an availability rule by its ID.
// @Summary Delete an availability rule by ID
// @Description Remove a weekly availability rule using its unique identifier.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Availability Rule ID"
// @Success 200 {object} response.Message "Availability rule deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete availability rule")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Availability rule deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Availability rule deleted successfully")
}
