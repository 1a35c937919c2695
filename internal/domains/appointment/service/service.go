package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	"agenda/config"
	"agenda/infras/kafka"
	"agenda/infras/mailer"
	"agenda/infras/otel"
	"agenda/internal/domains/appointment/model"
	"agenda/internal/domains/appointment/model/dto"
	"agenda/internal/domains/appointment/repository"
	availabilityModel "agenda/internal/domains/availability/model"
	availabilityRepo "agenda/internal/domains/availability/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/timezone"
	"agenda/shared/weekday"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAppointment    = "appointment:get"
	cacheGetAllAppointment = "appointment:gets"
	cacheCountAppointment  = "appointment:count"
	cacheSlotsAppointment  = "appointment:slots"

	topicAppointmentCreated   = "appointment.created"
	topicAppointmentCancelled = "appointment.cancelled"
)

type Appointment interface {
	GetBookableSlots(ctx context.Context, date string) (dto.BookableSlotsResponse, error)
	GetServices(ctx context.Context) dto.GetServicesResponse
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	GetCancellationSummary(ctx context.Context, token string) (dto.CancellationSummaryResponse, error)
	CancelByToken(ctx context.Context, token string) error
	CancelByID(ctx context.Context, id string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAppointmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) error
}

type serviceImpl struct {
	repo             repository.Appointment
	availabilityRepo availabilityRepo.Availability
	cfg              *config.Config
	cache            cache.RedisCache
	mailer           mailer.Mailer
	kafka            kafka.Client
	otel             otel.Otel
}

func New(
	repo repository.Appointment,
	availabilityRepo availabilityRepo.Availability,
	cfg *config.Config,
	cache cache.RedisCache,
	mailer mailer.Mailer,
	kafka kafka.Client,
	otel otel.Otel,
) Appointment {
	return &serviceImpl{
		repo:             repo,
		availabilityRepo: availabilityRepo,
		cfg:              cfg,
		cache:            cache,
		mailer:           mailer,
		kafka:            kafka,
		otel:             otel,
	}
}

// GetBookableSlots computes the free slots of a calendar day: the active
// weekly windows for that day of the week minus the slots already held by
// an active appointment.
func (s *serviceImpl) GetBookableSlots(ctx context.Context, date string) (res dto.BookableSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	dayName, ok := weekday.FromCivilDate(date)
	if !ok {
		return res, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheSlotsAppointment, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookable slots")

		return res, nil
	}

	slots, err := s.bookableSlots(ctx, date, dayName)
	if err != nil {
		return res, err
	}

	res = dto.BookableSlotsResponse{
		Date:      date,
		DayOfWeek: dayName,
		Slots:     slots,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookable slots to cache")
		}
	}()

	return res, nil
}

// bookableSlots is the uncached computation. The booking path calls it
// directly so a stale cache can never validate a taken slot.
func (s *serviceImpl) bookableSlots(ctx context.Context, date, dayName string) ([]string, error) {
	ruleFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    availabilityModel.FieldDayOfWeek,
				Operator: gDto.FilterOperatorEq,
				Value:    dayName,
				Table:    availabilityModel.TableName,
			},
			gDto.Filter{
				Field:    availabilityModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    availabilityModel.TableName,
			},
		},
	}

	rules, err := s.availabilityRepo.GetAll(ctx, gDto.QueryParams{}, ruleFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability rules")

		return nil, fmt.Errorf("failed to get availability rules: %w", err)
	}

	bookedFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusActive,
				Table:    model.TableName,
			},
		},
	}

	booked, err := s.repo.GetAll(ctx, gDto.QueryParams{}, bookedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked appointments")

		return nil, fmt.Errorf("failed to get booked appointments: %w", err)
	}

	taken := make(map[string]bool, len(booked))
	for _, appointment := range booked {
		taken[appointment.TimeSlot] = true
	}

	slots := make([]string, 0, len(rules))

	seen := make(map[string]bool, len(rules))
	for _, rule := range rules {
		if seen[rule.StartTime] || taken[rule.StartTime] {
			continue
		}

		seen[rule.StartTime] = true
		slots = append(slots, rule.StartTime)
	}

	// "HH:MM" strings sort chronologically.
	sort.Strings(slots)

	return slots, nil
}

// GetServices exposes the service catalog with current prices.
func (s *serviceImpl) GetServices(ctx context.Context) dto.GetServicesResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()

	res := dto.GetServicesResponse{}
	res.FromCatalog(model.ServiceCatalog)

	return res
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	price, ok := model.ServiceCatalog[req.Service]
	if !ok {
		return res, failure.BadRequestFromString("unknown service") // nolint:wrapcheck
	}

	if req.Date < timezone.Today() {
		return res, failure.BadRequestFromString("date cannot be in the past") // nolint:wrapcheck
	}

	dayName, ok := weekday.FromCivilDate(req.Date)
	if !ok {
		return res, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	slots, err := s.bookableSlots(ctx, req.Date, dayName)
	if err != nil {
		return res, err
	}

	if !slices.Contains(slots, req.TimeSlot) {
		return res, failure.Conflict("slot is not available") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	appointment := req.ToModel(user, price)

	if err = s.repo.Insert(ctx, appointment); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			log.Warn().Str("date", req.Date).Str("timeSlot", req.TimeSlot).Msg("slot taken by concurrent booking")

			return res, failure.Conflict("slot was just taken") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create appointment")

		return res, fmt.Errorf("failed to create appointment: %w", err)
	}

	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
		shared.InvalidateCaches(c, s.cache, cacheSlotsAppointment)

		s.sendConfirmationEmail(c, appointment)
		s.publishEvent(c, topicAppointmentCreated, appointment)
	}()

	return res, nil
}

func (s *serviceImpl) GetCancellationSummary(ctx context.Context, token string) (res dto.CancellationSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCancellationSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getByToken(ctx, token)
	if err != nil {
		return res, err
	}

	res.FromModel(appointment)

	return res, nil
}

// CancelByToken flips the appointment to cancelled. Cancelling an already
// cancelled appointment is a no-op, the client can retry safely.
func (s *serviceImpl) CancelByToken(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelByToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getByToken(ctx, token)
	if err != nil {
		return err
	}

	return s.cancel(ctx, appointment)
}

func (s *serviceImpl) CancelByID(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	return s.cancel(ctx, appointment)
}

func (s *serviceImpl) getByToken(ctx context.Context, token string) (model.Appointment, error) {
	if token == constant.Empty {
		return model.Appointment{}, failure.BadRequestFromString("missing cancellation token") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCancellationToken,
				Operator: gDto.FilterOperatorEq,
				Value:    token,
				Table:    model.TableName,
			},
		},
	}

	appointment, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment by token")

		return model.Appointment{}, fmt.Errorf("failed to get appointment by token: %w", err)
	}

	if appointment.ID == constant.Empty {
		return model.Appointment{}, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	return appointment, nil
}

func (s *serviceImpl) cancel(ctx context.Context, appointment model.Appointment) error {
	if appointment.Status == model.StatusCancelled {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	filter := shared.FilterByID(appointment.ID, model.FieldID, model.TableName)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel appointment")

		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointment, appointment.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete appointment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
		shared.InvalidateCaches(c, s.cache, cacheSlotsAppointment)

		s.publishEvent(c, topicAppointmentCancelled, appointment)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetAppointment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment")

		return res, nil
	}

	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateAppointmentRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if appointment exists")

		return fmt.Errorf("failed to check if appointment exists: %w", err)
	}

	if !exist {
		log.Error().Msg("appointment not found")

		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("slot was just taken") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update appointment")

		return fmt.Errorf("failed to update appointment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete appointment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
		shared.InvalidateCaches(c, s.cache, cacheSlotsAppointment)
	}()

	return nil
}

func (s *serviceImpl) sendConfirmationEmail(ctx context.Context, appointment model.Appointment) {
	cancelURL := fmt.Sprintf("%s/cancelamento?token=%s", s.cfg.App.PublicURL, appointment.CancellationToken)

	subject := "Agendamento confirmado - " + appointment.Service

	plainBody := fmt.Sprintf(
		"Olá %s,\n\nSeu agendamento de %s foi confirmado para %s às %s.\nValor: R$ %.2f\n\nPara cancelar, acesse: %s\n",
		appointment.ClientName, appointment.Service, appointment.Date, appointment.TimeSlot, appointment.Price, cancelURL,
	)

	htmlBody := fmt.Sprintf(
		"<p>Olá %s,</p><p>Seu agendamento de <strong>%s</strong> foi confirmado para <strong>%s</strong> às <strong>%s</strong>.</p><p>Valor: R$ %.2f</p><p><a href=%q>Cancelar agendamento</a></p>",
		appointment.ClientName, appointment.Service, appointment.Date, appointment.TimeSlot, appointment.Price, cancelURL,
	)

	if err := s.mailer.Send(ctx, appointment.ClientName, appointment.ClientEmail, subject, plainBody, htmlBody); err != nil {
		log.Error().Err(err).Str("appointmentID", appointment.ID).Msg("failed to send confirmation e-mail")
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, topic string, appointment model.Appointment) {
	message := kafka.Message{
		Key:   appointment.ID,
		Value: appointment,
	}

	if err := s.kafka.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish appointment event")
	}
}
