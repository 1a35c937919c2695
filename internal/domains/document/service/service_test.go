package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/otel/mocks"
	s3Mocks "agenda/infras/s3/mocks"
	documentMocks "agenda/internal/domains/document/mocks"
	"agenda/internal/domains/document/model"
	"agenda/internal/domains/document/model/dto"
	"agenda/internal/domains/document/service"
	patientMocks "agenda/internal/domains/patient/mocks"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/constant"
	"agenda/shared/failure"
)

func TestDocumentService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := documentMocks.NewMockDocument(ctrl)
	mockPatientRepo := patientMocks.NewMockPatient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "agenda-test"

	svc := service.New(mockRepo, mockPatientRepo, cfg, mockCache, mockOtel, mockS3)

	fileHeader := &multipart.FileHeader{Filename: "encaminhamento.pdf"}

	tests := []struct {
		name      string
		req       dto.UploadDocumentRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful upload",
			req: dto.UploadDocumentRequest{
				PatientID: "patient-1",
				File:      fileHeader,
			},
			setupMock: func() {
				mockPatientRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "agenda-test", model.EntityName, gomock.Any(), fileHeader, "encaminhamento.pdf").
					Return("https://agenda-test.s3.amazonaws.com/document/encaminhamento.pdf", nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, document model.Document) error {
						assert.Equal(t, "patient-1", document.PatientID)
						assert.Equal(t, "encaminhamento.pdf", document.FileName)
						assert.NotEmpty(t, document.URL)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "patient does not exist",
			req: dto.UploadDocumentRequest{
				PatientID: "missing-patient",
				File:      fileHeader,
			},
			setupMock: func() {
				mockPatientRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "S3 upload fails",
			req: dto.UploadDocumentRequest{
				PatientID: "patient-1",
				File:      fileHeader,
			},
			setupMock: func() {
				mockPatientRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "agenda-test", model.EntityName, gomock.Any(), fileHeader, "encaminhamento.pdf").
					Return("", errors.New("s3 error"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.UploadDocumentRequest{
				PatientID: "patient-1",
				File:      fileHeader,
			},
			setupMock: func() {
				mockPatientRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "agenda-test", model.EntityName, gomock.Any(), fileHeader, "encaminhamento.pdf").
					Return("https://agenda-test.s3.amazonaws.com/document/encaminhamento.pdf", nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Upload(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "encaminhamento.pdf", res.FileName)
			assert.NotEmpty(t, res.URL)
		})
	}
}

func TestDocumentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := documentMocks.NewMockDocument(ctrl)
	mockPatientRepo := patientMocks.NewMockPatient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "agenda-test"

	svc := service.New(mockRepo, mockPatientRepo, cfg, mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion removes the S3 object",
			id:   "doc-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Document{
						ID:       "doc-1",
						FileName: "laudo.pdf",
						URL:      "https://agenda-test.s3.amazonaws.com/document/laudo.pdf",
					}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					GetObjectNameFromURL("agenda-test", "https://agenda-test.s3.amazonaws.com/document/laudo.pdf").
					Return("laudo.pdf").
					AnyTimes()

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "agenda-test", model.EntityName, "laudo.pdf").
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "document not found",
			id:   "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Document{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Delete(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
