package service

import (
	"context"
	"fmt"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/availability/model"
	"agenda/internal/domains/availability/model/dto"
	"agenda/internal/domains/availability/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRule    = "availability:get"
	cacheGetAllRule = "availability:gets"
	cacheCountRule  = "availability:count"

	// Kept in sync with the appointment service, which caches computed
	// bookable slots under this prefix.
	cacheSlotsAppointment = "appointment:slots"
)

type Availability interface {
	Create(ctx context.Context, req dto.CreateAvailabilityRuleRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAvailabilityRulesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AvailabilityRuleResponse, error)
	Update(ctx context.Context, req dto.UpdateAvailabilityRuleRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Availability
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Availability, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAvailabilityRuleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rule, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse availability rule request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid start time: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, rule); err != nil {
		log.Error().Err(err).Msg("failed to create availability rule")

		return fmt.Errorf("failed to create availability rule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRule)
		shared.InvalidateCaches(c, s.cache, cacheCountRule)
		shared.InvalidateCaches(c, s.cache, cacheSlotsAppointment)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAvailabilityRulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability rules")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count availability rules")

		return res, fmt.Errorf("failed to count availability rules: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability rules")

		return res, fmt.Errorf("failed to get availability rules: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability rules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability rule count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count availability rules")

		return res, fmt.Errorf("failed to count availability rules: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability rule count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AvailabilityRuleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetRule, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability rule")

		return res, nil
	}

	rule, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability rule")

		return res, fmt.Errorf("failed to get availability rule: %w", err)
	}

	if rule.ID == constant.Empty {
		return res, failure.NotFound("availability rule not found") // nolint:wrapcheck
	}

	res.FromModel(rule)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability rule to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAvailabilityRuleRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateAvailabilityRuleRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if availability rule exists")

		return fmt.Errorf("failed to check if availability rule exists: %w", err)
	}

	if !exist {
		log.Error().Msg("availability rule not found")

		return failure.NotFound("availability rule not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update availability rule")

		return fmt.Errorf("failed to update availability rule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRule, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete availability rule from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRule)
		shared.InvalidateCaches(c, s.cache, cacheCountRule)
		shared.InvalidateCaches(c, s.cache, cacheSlotsAppointment)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if availability rule exists")

		return fmt.Errorf("failed to check if availability rule exists: %w", err)
	}

	if !exist {
		log.Error().Msg("availability rule not found")

		return failure.NotFound("availability rule not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete availability rule")

		return fmt.Errorf("failed to delete availability rule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRule, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete availability rule from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRule)
		shared.InvalidateCaches(c, s.cache, cacheCountRule)
		shared.InvalidateCaches(c, s.cache, cacheSlotsAppointment)
	}()

	return nil
}
