package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/infra/cache"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/pkg/ptr"
)

// UseCase use case для подтверждения записи (создание или перенос)
type UseCase struct {
	client       LobecaClient
	cache        *cache.Cache
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client LobecaClient, queryCache *cache.Cache, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
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

// Execute выполняет use case подтверждения записи.
// Защиты от гонки за слот на клиенте нет: единственная проверка - ответ 409 от API.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sel := req.Selection.Normalize()

	uc.logger.Info("ConfirmBooking: worker=%s, service=%d, date=%s, time=%s, appointment=%q",
		req.WorkerUUID, sel.ServiceID, sel.Date, sel.Time, sel.AppointmentUUID)

	// 1. Выбор должен быть полным
	if sel.Step() != domain.StepConfirm {
		uc.logger.Warn("ConfirmBooking: selection incomplete, step=%s", sel.Step())
		return nil, ErrIncompleteSelection
	}

	// 2. Без сессии - переход к регистрации
	now := uc.timeProvider.Now()
	if !req.Session.IsAuthenticated(now) {
		uc.logger.Info("ConfirmBooking: anonymous visitor, registration required")
		return nil, ErrAuthenticationRequired
	}

	// 3. Услуга должна принадлежать мастеру
	if err := uc.checkService(ctx, req.WorkerUUID, sel.ServiceID); err != nil {
		return nil, err
	}

	scheduledAt, err := sel.ScheduledAt(uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteSelection, err)
	}

	cmd := domain.AppointmentCommand{
		WorkerEstablishmentServiceID: sel.ServiceID,
		CustomerUUID:                 ptr.Ptr(req.Session.UserUUID),
		ScheduledAt:                  scheduledAt,
	}

	// 4. Создание или перенос
	var (
		appointment *domain.Appointment
		mutation    = cache.Mutation{
			WorkerUUID: req.WorkerUUID,
			Date:       sel.Date,
			UserUUID:   req.Session.UserUUID,
		}
	)

	if sel.IsReschedule() {
		mutation.Kind = cache.MutationUpdate
		mutation.AppointmentUUID = sel.AppointmentUUID
		mutation.PreviousDate = uc.previousDate(ctx, req.Session, sel.AppointmentUUID)

		appointment, err = uc.client.UpdateAppointment(ctx, req.Session.AccessToken, sel.AppointmentUUID, cmd)
	} else {
		mutation.Kind = cache.MutationCreate
		appointment, err = uc.client.CreateAppointment(ctx, req.Session.AccessToken, cmd)
	}

	if err != nil {
		return nil, uc.translateCommitError(err, sel)
	}

	// 5. Инвалидация кэша по таблице правил
	if mutation.AppointmentUUID == "" {
		mutation.AppointmentUUID = appointment.UUID
	}
	uc.cache.Invalidate(ctx, mutation)

	uc.logger.Info("ConfirmBooking: appointment uuid=%s scheduled at %s (reschedule=%t)",
		appointment.UUID, scheduledAt.Format(domain.ScheduledAtFormat), sel.IsReschedule())

	return &Response{
		Appointment: appointment,
		Rescheduled: sel.IsReschedule(),
	}, nil
}

func (uc *UseCase) checkService(ctx context.Context, workerUUID string, serviceID int64) error {
	worker, err := cache.Remember(ctx, uc.cache, cache.ResourceWorker, cache.WorkerKey(workerUUID),
		func(ctx context.Context) (*domain.Worker, error) {
			return uc.client.GetWorker(ctx, workerUUID)
		})
	if err != nil {
		if errors.Is(err, lobecaapi.ErrNotFound) {
			uc.logger.Warn("ConfirmBooking: worker=%s not found", workerUUID)
			return ErrWorkerNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get worker=%s: %v", workerUUID, err)
		return fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
	}

	if _, ok := worker.FindService(serviceID); !ok {
		uc.logger.Warn("ConfirmBooking: service=%d not offered by worker=%s", serviceID, workerUUID)
		return ErrServiceNotFound
	}
	return nil
}

// previousDate возвращает дату переносимой записи. Ошибка чтения не мешает переносу:
// тогда старый день доступности просто истечет по TTL.
func (uc *UseCase) previousDate(ctx context.Context, session *domain.Session, appointmentUUID string) string {
	old, err := cache.Remember(ctx, uc.cache, cache.ResourceAppointment, cache.AppointmentKey(session.UserUUID, appointmentUUID),
		func(ctx context.Context) (*domain.Appointment, error) {
			return uc.client.GetAppointment(ctx, session.AccessToken, appointmentUUID)
		})
	if err != nil {
		uc.logger.Warn("ConfirmBooking: failed to read appointment=%s before reschedule: %v", appointmentUUID, err)
		return ""
	}
	return old.ScheduledAt.In(uc.location).Format(domain.DateFormat)
}

func (uc *UseCase) translateCommitError(err error, sel domain.Selection) error {
	switch {
	case errors.Is(err, lobecaapi.ErrConflict):
		uc.logger.Warn("ConfirmBooking: slot %s %s taken before commit", sel.Date, sel.Time)
		return ErrSlotUnavailable
	case errors.Is(err, lobecaapi.ErrUnauthorized):
		uc.logger.Warn("ConfirmBooking: access token rejected, registration required")
		return ErrAuthenticationRequired
	case errors.Is(err, lobecaapi.ErrNotFound):
		uc.logger.Warn("ConfirmBooking: appointment=%q not found", sel.AppointmentUUID)
		return ErrAppointmentNotFound
	case errors.Is(err, lobecaapi.ErrValidation):
		uc.logger.Warn("ConfirmBooking: appointment rejected: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("ConfirmBooking: failed to commit appointment: %v", err)
		return fmt.Errorf("%w: failed to commit appointment: %v", ErrInternal, err)
	}
}
