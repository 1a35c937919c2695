package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/otel/mocks"
	patientMocks "agenda/internal/domains/patient/mocks"
	sessionMocks "agenda/internal/domains/session/mocks"
	"agenda/internal/domains/session/model"
	"agenda/internal/domains/session/model/dto"
	"agenda/internal/domains/session/service"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/constant"
)

func TestSessionService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	mockPatientRepo := patientMocks.NewMockPatient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockPatientRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateSessionRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateSessionRequest{
				PatientID: "patient-id",
				Date:      "2025-07-10",
				Notes:     "Sessão produtiva, paciente relatou melhora no sono.",
			},
			setupMock: func() {
				mockPatientRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "patient does not exist",
			req: dto.CreateSessionRequest{
				PatientID: "missing-patient",
				Date:      "2025-07-10",
				Notes:     "Anotações",
			},
			setupMock: func() {
				mockPatientRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateSessionRequest{
				PatientID: "patient-id",
				Date:      "2025-07-10",
				Notes:     "Anotações",
			},
			setupMock: func() {
				mockPatientRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

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
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	mockPatientRepo := patientMocks.NewMockPatient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockPatientRepo, cfg, mockCache, mockOtel)

	session := model.Session{
		ID:          "session-id",
		PatientID:   "patient-id",
		PatientName: "Maria Silva",
		Date:        "2025-07-10",
		Notes:       "Anotações da sessão",
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantName  string
	}{
		{
			name: "cache miss, joined patient name comes through",
			id:   "session-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(session, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantName: "Maria Silva",
		},
		{
			name: "session not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Session{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantName, result.PatientName)
			}
		})
	}
}
