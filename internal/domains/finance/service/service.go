package service

import (
	"context"
	"fmt"
	"time"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/finance/model"
	"agenda/internal/domains/finance/model/dto"
	"agenda/internal/domains/finance/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetEntry     = "finance:get"
	cacheGetAllEntry  = "finance:gets"
	cacheCountEntry   = "finance:count"
	cacheSummaryEntry = "finance:summary"

	monthFormat = "2006-01"
)

type Finance interface {
	Create(ctx context.Context, req dto.CreateFinanceEntryRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFinanceEntriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.FinanceEntryResponse, error)
	GetMonthlySummary(ctx context.Context, month string) (dto.MonthlySummaryResponse, error)
	Update(ctx context.Context, req dto.UpdateFinanceEntryRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Finance
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Finance, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Finance {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFinanceEntryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create finance entry")

		return fmt.Errorf("failed to create finance entry: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEntry)
		shared.InvalidateCaches(c, s.cache, cacheCountEntry)
		shared.InvalidateCaches(c, s.cache, cacheSummaryEntry)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFinanceEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEntry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for finance entries")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count finance entries")

		return res, fmt.Errorf("failed to count finance entries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get finance entries")

		return res, fmt.Errorf("failed to get finance entries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save finance entries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEntry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for finance entry count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count finance entries")

		return res, fmt.Errorf("failed to count finance entries: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save finance entry count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FinanceEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetEntry, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for finance entry")

		return res, nil
	}

	entry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get finance entry")

		return res, fmt.Errorf("failed to get finance entry: %w", err)
	}

	if entry.ID == constant.Empty {
		return res, failure.NotFound("finance entry not found") // nolint:wrapcheck
	}

	res.FromModel(entry)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save finance entry to cache")
		}
	}()

	return res, nil
}

// GetMonthlySummary totals income, expense and balance for a "YYYY-MM" month.
func (s *serviceImpl) GetMonthlySummary(ctx context.Context, month string) (res dto.MonthlySummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMonthlySummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err := time.Parse(monthFormat, month); err != nil {
		return res, failure.BadRequestFromString("invalid month, expected YYYY-MM") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheSummaryEntry, month)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for monthly summary")

		return res, nil
	}

	summary, err := s.repo.Summarize(ctx, month)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize ledger")

		return res, fmt.Errorf("failed to summarize ledger: %w", err)
	}

	res.FromModel(month, summary)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save monthly summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFinanceEntryRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateFinanceEntryRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if finance entry exists")

		return fmt.Errorf("failed to check if finance entry exists: %w", err)
	}

	if !exist {
		log.Error().Msg("finance entry not found")

		return failure.NotFound("finance entry not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update finance entry")

		return fmt.Errorf("failed to update finance entry: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEntry, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete finance entry from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEntry)
		shared.InvalidateCaches(c, s.cache, cacheCountEntry)
		shared.InvalidateCaches(c, s.cache, cacheSummaryEntry)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if finance entry exists")

		return fmt.Errorf("failed to check if finance entry exists: %w", err)
	}

	if !exist {
		log.Error().Msg("finance entry not found")

		return failure.NotFound("finance entry not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete finance entry")

		return fmt.Errorf("failed to delete finance entry: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEntry, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete finance entry from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEntry)
		shared.InvalidateCaches(c, s.cache, cacheCountEntry)
		shared.InvalidateCaches(c, s.cache, cacheSummaryEntry)
	}()

	return nil
}
