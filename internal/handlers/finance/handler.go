package finance

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/finance/model"
	"agenda/internal/domains/finance/model/dto"
	"agenda/internal/domains/finance/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/validator"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Finance
	otel    otel.Otel
}

func New(service service.Finance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/finance", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEntry)
		routerGroup.Get("/", handler.GetEntries)
		routerGroup.Get("/summary", handler.GetMonthlySummary)
		routerGroup.Get("/{id}", handler.GetEntryByID)
		routerGroup.Patch("/{id}", handler.UpdateEntry)
		routerGroup.Delete("/{id}", handler.DeleteEntry)
	})
}

// CreateEntry handles the creation of a new ledger entry.
// @Summary Create a finance entry
// @Description Record an income or expense in the ledger.
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.CreateFinanceEntryRequest true "Create Finance Entry Request"
// @Success 201 {object} response.Message "Finance entry created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance [post]
// @Security BearerAuth
func (handler *Handler) CreateEntry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEntry")
	defer scope.End()

	req := dto.CreateFinanceEntryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create finance entry")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Finance entry created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Finance entry created successfully")
}

// GetEntries retrieves all ledger entries based on query parameters.
// @Summary Get all finance entries
// @Description Retrieve all ledger entries with optional filtering and pagination.
// @Tags Finance
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by type (income, expense)"
// @Param category query string false "Filter by category"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetFinanceEntriesResponse] "List of finance entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance [get]
// @Security BearerAuth
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	entryType := r.URL.Query().Get(model.FieldType)
	category := r.URL.Query().Get(model.FieldCategory)
	date := r.URL.Query().Get(model.FieldDate)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if entryType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    entryType,
			Table:    model.TableName,
		})
	}

	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
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

	entries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get finance entries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Finance entries retrieved successfully")

	response.WithJSON(w, http.StatusOK, entries)
}

// GetMonthlySummary totals the ledger of one month.
// @Summary Get monthly summary
// @Description Total income, expense and balance of the given month.
// @Tags Finance
// @Accept json
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} response.Data[dto.MonthlySummaryResponse] "Monthly summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/summary [get]
// @Security BearerAuth
func (handler *Handler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthlySummary")
	defer scope.End()

	month := r.URL.Query().Get(constant.RequestParamMonth)

	summary, err := handler.service.GetMonthlySummary(ctx, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monthly summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Monthly summary retrieved successfully for " + month)

	response.WithJSON(w, http.StatusOK, summary)
}

// GetEntryByID retrieves a ledger entry by its ID.
// @Summary Get a finance entry by ID
// @Description Retrieve a ledger entry by its unique identifier.
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Finance Entry ID"
// @Success 200 {object} response.Data[dto.FinanceEntryResponse] "Finance entry details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEntryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	entry, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get finance entry by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Finance entry retrieved successfully")

	response.WithJSON(w, http.StatusOK, entry)
}

// UpdateEntry updates an existing ledger entry by its ID.
// @Summary Update a finance entry by ID
// @Description Update the details of an existing ledger entry.
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Finance Entry ID"
// @Param request body dto.UpdateFinanceEntryRequest true "Update Finance Entry Request"
// @Success 200 {object} response.Message "Finance entry updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEntry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFinanceEntryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update finance entry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Finance entry updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Finance entry updated successfully")
}

// DeleteEntry deletes a ledger entry by its ID.
// @Summary Delete a finance entry by ID
// @Description Delete a ledger entry using its unique identifier.
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Finance Entry ID"
// @Success 200 {object} response.Message "Finance entry deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEntry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete finance entry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Finance entry deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Finance entry deleted successfully")
}
