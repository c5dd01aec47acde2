package create_worker_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/infra/cache"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/internal/usecase/get_available_slots"
	"github.com/lobeca/lobeca-web/pkg/ptr"
)

// UseCase запись клиента без аккаунта от имени мастера.
// Регистрации нет: действующее лицо - уже аутентифицированный мастер.
type UseCase struct {
	client       LobecaClient
	slots        SlotsProvider
	cache        *cache.Cache
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client LobecaClient, slots SlotsProvider, queryCache *cache.Cache, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		slots:        slots,
		cache:        queryCache,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Права
	if !req.Session.IsAuthenticated(uc.timeProvider.Now()) {
		return nil, ErrAuthenticationRequired
	}
	if !req.Session.CanBookForCustomers() {
		uc.logger.Warn("CreateWorkerAppointment: user=%s role=%s cannot book for customers",
			req.Session.UserUUID, req.Session.Role)
		return nil, ErrForbidden
	}

	workerUUID := req.WorkerUUID
	if workerUUID == "" {
		workerUUID = req.Session.UserUUID
	}

	uc.logger.Info("CreateWorkerAppointment: actor=%s, worker=%s, service=%d, date=%s, time=%s",
		req.Session.UserUUID, workerUUID, req.ServiceID, req.Date, req.Time)

	// 2. Валидация
	identification, err := normalizeIdentification(req.CustomerIdentification)
	if err != nil {
		uc.logger.Warn("CreateWorkerAppointment: validation failed: %v", err)
		return nil, err
	}
	sel, err := buildSelection(req)
	if err != nil {
		uc.logger.Warn("CreateWorkerAppointment: validation failed: %v", err)
		return nil, err
	}

	// 3. Слот должен быть среди доступных и ещё не прошедших
	available, err := uc.slots.Execute(ctx, &get_available_slots.Request{WorkerUUID: workerUUID, Date: sel.Date})
	if err != nil {
		if errors.Is(err, get_available_slots.ErrWorkerNotFound) {
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("CreateWorkerAppointment: failed to load slots: %v", err)
		return nil, fmt.Errorf("%w: failed to load slots: %v", ErrInternal, err)
	}
	if !get_available_slots.Contains(available.Slots, sel.Time) {
		uc.logger.Warn("CreateWorkerAppointment: slot %s %s is not offered", sel.Date, sel.Time)
		return nil, ErrSlotUnavailable
	}

	scheduledAt, err := sel.ScheduledAt(uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Запись
	appointment, err := uc.client.CreateAppointmentByWorker(ctx, req.Session.AccessToken, domain.AppointmentCommand{
		WorkerEstablishmentServiceID: sel.ServiceID,
		CustomerIdentification:       ptr.Ptr(identification),
		ScheduledAt:                  scheduledAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, lobecaapi.ErrConflict):
			uc.logger.Warn("CreateWorkerAppointment: slot %s %s taken before commit", sel.Date, sel.Time)
			return nil, ErrSlotUnavailable
		case errors.Is(err, lobecaapi.ErrUnauthorized):
			return nil, ErrForbidden
		case errors.Is(err, lobecaapi.ErrValidation), errors.Is(err, lobecaapi.ErrNotFound):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CreateWorkerAppointment: failed to create appointment: %v", err)
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
	}

	uc.cache.Invalidate(ctx, cache.Mutation{
		Kind:            cache.MutationCreateByWorker,
		WorkerUUID:      workerUUID,
		Date:            sel.Date,
		UserUUID:        req.Session.UserUUID,
		AppointmentUUID: appointment.UUID,
	})

	uc.logger.Info("CreateWorkerAppointment: appointment uuid=%s created for %q", appointment.UUID, identification)

	return &Response{Appointment: appointment}, nil
}
