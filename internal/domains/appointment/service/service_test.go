package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/config"
	kafkaMocks "agenda/infras/kafka/mocks"
	mailerMocks "agenda/infras/mailer/mocks"
	"agenda/infras/otel/mocks"
	appointmentMocks "agenda/internal/domains/appointment/mocks"
	"agenda/internal/domains/appointment/model"
	"agenda/internal/domains/appointment/model/dto"
	"agenda/internal/domains/appointment/service"
	availabilityMocks "agenda/internal/domains/availability/mocks"
	availabilityModel "agenda/internal/domains/availability/model"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/failure"
)

type serviceMocks struct {
	repo             *appointmentMocks.MockAppointment
	availabilityRepo *availabilityMocks.MockAvailability
	cache            *cacheMocks.MockRedisCache
	mailer           *mailerMocks.MockMailer
	kafka            *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Appointment, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		repo:             appointmentMocks.NewMockAppointment(ctrl),
		availabilityRepo: availabilityMocks.NewMockAvailability(ctrl),
		cache:            cacheMocks.NewMockRedisCache(ctrl),
		mailer:           mailerMocks.NewMockMailer(ctrl),
		kafka:            kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.PublicURL = "https://example.com"

	svc := service.New(m.repo, m.availabilityRepo, cfg, m.cache, m.mailer, m.kafka, mocks.NewOtel())

	return svc, m
}

func rule(day, start string) availabilityModel.AvailabilityRule {
	return availabilityModel.AvailabilityRule{
		ID:        "rule-" + day + "-" + start,
		DayOfWeek: day,
		StartTime: start,
		Active:    true,
	}
}

func TestAppointmentService_GetBookableSlots(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
		wantDay   string
		wantSlots []string
	}{
		{
			name:      "invalid date fails closed",
			date:      "02/06/2025",
			setupMock: func(m serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "impossible date fails closed",
			date:      "2025-02-30",
			setupMock: func(m serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "cache hit",
			date: "2025-06-02",
			setupMock: func(m serviceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booked and duplicate slots are removed, rest sorted ascending",
			date: "2025-06-02",
			setupMock: func(m serviceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.availabilityRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]availabilityModel.AvailabilityRule{
						rule("Segunda", "14:00"),
						rule("Segunda", "09:00"),
						rule("Segunda", "09:00"),
						rule("Segunda", "10:00"),
					}, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{
						{ID: "taken", Date: "2025-06-02", TimeSlot: "10:00", Status: model.StatusActive},
					}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantDay:   "Segunda",
			wantSlots: []string{"09:00", "14:00"},
		},
		{
			name: "availability repository error",
			date: "2025-06-02",
			setupMock: func(m serviceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.availabilityRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			result, err := svc.GetBookableSlots(context.Background(), tt.date)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)

			if tt.wantDay != "" {
				assert.Equal(t, tt.wantDay, result.DayOfWeek)
				assert.Equal(t, tt.wantSlots, result.Slots)
			}
		})
	}
}

func TestAppointmentService_Create(t *testing.T) {
	validReq := dto.CreateAppointmentRequest{
		ClientName:  "Maria Silva",
		ClientEmail: "maria@example.com",
		ClientPhone: "(11) 98888-7777",
		Service:     "Consulta Inicial",
		Date:        "2099-12-31",
		TimeSlot:    "10:00",
	}

	openSlot := func(m serviceMocks) {
		m.availabilityRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]availabilityModel.AvailabilityRule{rule("Quinta", "10:00")}, nil)

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Appointment{}, nil)
	}

	async := func(m serviceMocks) {
		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		req       func() dto.CreateAppointmentRequest
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking snapshots catalog price",
			req:  func() dto.CreateAppointmentRequest { return validReq },
			setupMock: func(m serviceMocks) {
				openSlot(m)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, appointment model.Appointment) error {
						assert.Equal(t, float64(150), appointment.Price)
						assert.Equal(t, model.StatusActive, appointment.Status)
						assert.NotEmpty(t, appointment.CancellationToken)

						return nil
					})

				async(m)
			},
			wantErr: false,
		},
		{
			name: "unknown service",
			req: func() dto.CreateAppointmentRequest {
				req := validReq
				req.Service = "Sessão de Hipnose"

				return req
			},
			setupMock: func(m serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "date in the past",
			req: func() dto.CreateAppointmentRequest {
				req := validReq
				req.Date = "2020-01-01"

				return req
			},
			setupMock: func(m serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "slot not offered that day",
			req:  func() dto.CreateAppointmentRequest { return validReq },
			setupMock: func(m serviceMocks) {
				m.availabilityRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]availabilityModel.AvailabilityRule{rule("Quinta", "14:00")}, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "slot already taken",
			req:  func() dto.CreateAppointmentRequest { return validReq },
			setupMock: func(m serviceMocks) {
				m.availabilityRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]availabilityModel.AvailabilityRule{rule("Quinta", "10:00")}, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Appointment{
						{ID: "taken", Date: "2099-12-31", TimeSlot: "10:00", Status: model.StatusActive},
					}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "concurrent booking hits unique index",
			req:  func() dto.CreateAppointmentRequest { return validReq },
			setupMock: func(m serviceMocks) {
				openSlot(m)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  func() dto.CreateAppointmentRequest { return validReq },
			setupMock: func(m serviceMocks) {
				openSlot(m)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			result, err := svc.Create(context.Background(), tt.req())

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusActive, result.Status)
			assert.NotEmpty(t, result.ID)
		})
	}
}

func TestAppointmentService_GetCancellationSummary(t *testing.T) {
	appointment := model.Appointment{
		ID:                "appointment-id",
		ClientName:        "Maria Silva",
		Service:           "Terapia de Casal",
		Price:             200,
		Date:              "2025-07-10",
		TimeSlot:          "15:00",
		Status:            model.StatusActive,
		CancellationToken: "valid-token",
	}

	tests := []struct {
		name      string
		token     string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "missing token",
			token:     "",
			setupMock: func(m serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "unknown token",
			token: "unknown-token",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Appointment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:  "successful summary",
			token: "valid-token",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(appointment, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			result, err := svc.GetCancellationSummary(context.Background(), tt.token)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, appointment.Service, result.Service)
			assert.Equal(t, appointment.Date, result.Date)
			assert.Equal(t, appointment.TimeSlot, result.TimeSlot)
		})
	}
}

func TestAppointmentService_CancelByToken(t *testing.T) {
	active := model.Appointment{
		ID:                "appointment-id",
		Status:            model.StatusActive,
		CancellationToken: "valid-token",
	}

	cancelled := active
	cancelled.Status = model.StatusCancelled

	tests := []struct {
		name      string
		token     string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "missing token",
			token:     "",
			setupMock: func(m serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "unknown token",
			token: "unknown-token",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Appointment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:  "successful cancellation",
			token: "valid-token",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(active, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:  "already cancelled is a no-op",
			token: "valid-token",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.CancelByToken(context.Background(), tt.token)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentService_CancelByID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "appointment not found",
			id:   "nonexistent-id",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Appointment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "successful cancellation",
			id:   "appointment-id",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Appointment{ID: "appointment-id", Status: model.StatusActive}, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.CancelByID(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentService_GetServices(t *testing.T) {
	svc, _ := newService(t)

	result := svc.GetServices(context.Background())

	assert.Len(t, result.Services, len(model.ServiceCatalog))

	for _, svcEntry := range result.Services {
		assert.Equal(t, model.ServiceCatalog[svcEntry.Name], svcEntry.Price)
	}

	for i := 1; i < len(result.Services); i++ {
		assert.Less(t, result.Services[i-1].Name, result.Services[i].Name)
	}
}

func TestAppointmentService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateAppointmentRequest
		id        string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "empty update request",
			req:       dto.UpdateAppointmentRequest{},
			id:        "appointment-id",
			setupMock: func(m serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "appointment not found",
			req:  dto.UpdateAppointmentRequest{TimeSlot: "11:00"},
			id:   "nonexistent-id",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "reschedule collides with unique index",
			req:  dto.UpdateAppointmentRequest{TimeSlot: "11:00"},
			id:   "appointment-id",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "successful update",
			req:  dto.UpdateAppointmentRequest{TimeSlot: "11:00"},
			id:   "appointment-id",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			ctx := context.Background()
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
