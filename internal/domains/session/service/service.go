package service

import (
	"context"
	"fmt"

	"agenda/config"
	"agenda/infras/otel"
	patientModel "agenda/internal/domains/patient/model"
	patientRepo "agenda/internal/domains/patient/repository"
	"agenda/internal/domains/session/model"
	"agenda/internal/domains/session/model/dto"
	"agenda/internal/domains/session/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSession    = "session:get"
	cacheGetAllSession = "session:gets"
	cacheCountSession  = "session:count"
)

type Session interface {
	Create(ctx context.Context, req dto.CreateSessionRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSessionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	Update(ctx context.Context, req dto.UpdateSessionRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Session
	patientRepo patientRepo.Patient
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Session, patientRepo patientRepo.Patient, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Session {
	return &serviceImpl{
		repo:        repo,
		patientRepo: patientRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSessionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	patientExists, err := s.patientRepo.Exist(ctx, shared.FilterByID(req.PatientID, patientModel.FieldID, patientModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if patient exists")

		return fmt.Errorf("failed to check if patient exists: %w", err)
	}

	if !patientExists {
		return failure.BadRequestFromString("patient does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return fmt.Errorf("failed to create session: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSession)
		shared.InvalidateCaches(c, s.cache, cacheCountSession)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSessionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSession, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for sessions")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sessions")

		return res, fmt.Errorf("failed to count sessions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sessions")

		return res, fmt.Errorf("failed to get sessions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sessions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSession, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for session count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sessions")

		return res, fmt.Errorf("failed to count sessions: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save session count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetSession, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for session")

		return res, nil
	}

	session, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return res, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ID == constant.Empty {
		return res, failure.NotFound("session not found") // nolint:wrapcheck
	}

	res.FromModel(session)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save session to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSessionRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateSessionRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if session exists")

		return fmt.Errorf("failed to check if session exists: %w", err)
	}

	if !exist {
		log.Error().Msg("session not found")

		return failure.NotFound("session not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update session")

		return fmt.Errorf("failed to update session: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSession, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete session from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSession)
		shared.InvalidateCaches(c, s.cache, cacheCountSession)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if session exists")

		return fmt.Errorf("failed to check if session exists: %w", err)
	}

	if !exist {
		log.Error().Msg("session not found")

		return failure.NotFound("session not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSession, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete session from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSession)
		shared.InvalidateCaches(c, s.cache, cacheCountSession)
	}()

	return nil
}
