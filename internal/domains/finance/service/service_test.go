package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/otel/mocks"
	financeMocks "agenda/internal/domains/finance/mocks"
	"agenda/internal/domains/finance/model"
	"agenda/internal/domains/finance/model/dto"
	"agenda/internal/domains/finance/service"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/constant"
	"agenda/shared/failure"
)

func TestFinanceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := financeMocks.NewMockFinance(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateFinanceEntryRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateFinanceEntryRequest{
				Type:        model.TypeIncome,
				Description: "Consulta Inicial - Maria Silva",
				Category:    "Atendimento",
				Amount:      150,
				Date:        "2025-07-10",
			},
			setupMock: func() {
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
			name: "repository error",
			req: dto.CreateFinanceEntryRequest{
				Type:        model.TypeExpense,
				Description: "Aluguel do consultório",
				Amount:      2000,
				Date:        "2025-07-05",
			},
			setupMock: func() {
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

func TestFinanceService_GetMonthlySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := financeMocks.NewMockFinance(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name        string
		month       string
		setupMock   func()
		wantErr     bool
		wantCode    int
		wantBalance float64
	}{
		{
			name:      "invalid month",
			month:     "julho-2025",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "cache hit",
			month: "2025-07",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:  "successful summary",
			month: "2025-07",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Summarize(gomock.Any(), "2025-07").
					Return(model.MonthlySummary{Income: 3000, Expense: 1200, Entries: 14}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:     false,
			wantBalance: 1800,
		},
		{
			name:  "repository error",
			month: "2025-07",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Summarize(gomock.Any(), "2025-07").
					Return(model.MonthlySummary{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetMonthlySummary(context.Background(), tt.month)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)

			if tt.wantBalance != 0 {
				assert.Equal(t, tt.wantBalance, result.Balance)
				assert.Equal(t, "2025-07", result.Month)
			}
		})
	}
}
