package service

import (
	"context"
	"fmt"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/infras/s3"
	"agenda/internal/domains/document/model"
	"agenda/internal/domains/document/model/dto"
	"agenda/internal/domains/document/repository"
	patientModel "agenda/internal/domains/patient/model"
	patientRepo "agenda/internal/domains/patient/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDocument    = "document:get"
	cacheGetAllDocument = "document:gets"
	cacheCountDocument  = "document:count"
)

type Document interface {
	Upload(ctx context.Context, req dto.UploadDocumentRequest) (dto.DocumentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDocumentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Document
	patientRepo patientRepo.Patient
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(repo repository.Document, patientRepo patientRepo.Patient, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Document {
	return &serviceImpl{
		repo:        repo,
		patientRepo: patientRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

// Upload stores the file in S3 and records it on the patient chart.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadDocumentRequest) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	patientExists, err := s.patientRepo.Exist(ctx, shared.FilterByID(req.PatientID, patientModel.FieldID, patientModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if patient exists")

		return res, fmt.Errorf("failed to check if patient exists: %w", err)
	}

	if !patientExists {
		return res, failure.BadRequestFromString("patient does not exist") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.Document, req.File, req.File.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	document := req.ToModel(user, url)

	if err = s.repo.Insert(ctx, document); err != nil {
		log.Error().Err(err).Msg("failed to create document")

		return res, fmt.Errorf("failed to create document: %w", err)
	}

	res.FromModel(document)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)
		shared.InvalidateCaches(c, s.cache, cacheCountDocument)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDocument, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for documents")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count documents")

		return res, fmt.Errorf("failed to count documents: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get documents")

		return res, fmt.Errorf("failed to get documents: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save documents to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDocument, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for document count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count documents")

		return res, fmt.Errorf("failed to count documents: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save document count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetDocument, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for document")

		return res, nil
	}

	document, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return res, fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return res, failure.NotFound("document not found") // nolint:wrapcheck
	}

	res.FromModel(document)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save document to cache")
		}
	}()

	return res, nil
}

// Delete removes the row and then the S3 object. The object cleanup is
// best effort, an orphan file is preferable to a dangling row.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	document, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		log.Error().Msg("document not found")

		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, document.URL)
		if objectName == constant.Empty {
			log.Warn().Str("url", document.URL).Msg("failed to extract object name from URL")
		} else if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDocument, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete document from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)
		shared.InvalidateCaches(c, s.cache, cacheCountDocument)
	}()

	return nil
}
