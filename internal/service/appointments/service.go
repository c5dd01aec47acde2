package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/infra/cache"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/internal/service/appointments/models"
)

// Service сервис для работы с записями пользователя
type Service struct {
	client       LobecaClient
	cache        *cache.Cache
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(client LobecaClient, queryCache *cache.Cache, location *time.Location, logger Logger) *Service {
	return &Service{
		client:       client,
		cache:        queryCache,
		location:     location,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// List получает записи пользователя, ближайшие первыми
func (s *Service) List(ctx context.Context, session *domain.Session) (*models.AppointmentListResponse, error) {
	if !session.IsAuthenticated(s.timeProvider.Now()) {
		return nil, ErrAuthenticationRequired
	}

	s.logger.Info("List: fetching appointments for user=%s", session.UserUUID)

	list, err := cache.Remember(ctx, s.cache, cache.ResourceUserAppointments, cache.UserAppointmentsKey(session.UserUUID),
		func(ctx context.Context) ([]*domain.Appointment, error) {
			return s.client.GetUserAppointments(ctx, session.AccessToken)
		})
	if err != nil {
		return nil, s.translate("List", err)
	}

	sorted := make([]*domain.Appointment, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScheduledAt.Before(sorted[j].ScheduledAt)
	})

	s.logger.Info("List: found %d appointments for user=%s", len(sorted), session.UserUUID)
	return models.FromDomainAppointments(sorted, s.location), nil
}

// Get получает запись по UUID. Права доступа проверяет API.
func (s *Service) Get(ctx context.Context, session *domain.Session, appointmentUUID string) (*models.AppointmentResponse, error) {
	if !session.IsAuthenticated(s.timeProvider.Now()) {
		return nil, ErrAuthenticationRequired
	}

	s.logger.Info("Get: fetching appointment uuid=%s for user=%s", appointmentUUID, session.UserUUID)

	appointment, err := s.get(ctx, session, appointmentUUID)
	if err != nil {
		return nil, s.translate("Get", err)
	}

	return models.FromDomainAppointment(appointment, s.location), nil
}

// Cancel отменяет предстоящую запись и сбрасывает связанные ключи кэша
func (s *Service) Cancel(ctx context.Context, session *domain.Session, appointmentUUID string) error {
	now := s.timeProvider.Now()
	if !session.IsAuthenticated(now) {
		return ErrAuthenticationRequired
	}

	s.logger.Info("Cancel: cancelling appointment uuid=%s by user=%s", appointmentUUID, session.UserUUID)

	appointment, err := s.get(ctx, session, appointmentUUID)
	if err != nil {
		return s.translate("Cancel", err)
	}

	if !appointment.IsUpcoming(now) {
		s.logger.Warn("Cancel: appointment uuid=%s status=%s at %s cannot be cancelled",
			appointmentUUID, appointment.Status, appointment.ScheduledAt)
		return ErrCannotCancel
	}

	if err := s.client.DeleteAppointment(ctx, session.AccessToken, appointmentUUID); err != nil {
		return s.translate("Cancel", err)
	}

	s.cache.Invalidate(ctx, cache.Mutation{
		Kind:            cache.MutationDelete,
		WorkerUUID:      appointment.WorkerUUID,
		Date:            appointment.ScheduledAt.In(s.location).Format(domain.DateFormat),
		UserUUID:        session.UserUUID,
		AppointmentUUID: appointmentUUID,
	})

	s.logger.Info("Cancel: appointment uuid=%s cancelled", appointmentUUID)
	return nil
}

func (s *Service) get(ctx context.Context, session *domain.Session, appointmentUUID string) (*domain.Appointment, error) {
	return cache.Remember(ctx, s.cache, cache.ResourceAppointment, cache.AppointmentKey(session.UserUUID, appointmentUUID),
		func(ctx context.Context) (*domain.Appointment, error) {
			return s.client.GetAppointment(ctx, session.AccessToken, appointmentUUID)
		})
}

func (s *Service) translate(op string, err error) error {
	switch {
	case errors.Is(err, lobecaapi.ErrNotFound):
		s.logger.Warn("%s: appointment not found: %v", op, err)
		return ErrAppointmentNotFound
	case errors.Is(err, lobecaapi.ErrUnauthorized):
		s.logger.Warn("%s: access denied: %v", op, err)
		return ErrAccessDenied
	default:
		s.logger.Error("%s: API error: %v", op, err)
		return fmt.Errorf("%w: %s - API error: %v", ErrInternal, op, err)
	}
}
