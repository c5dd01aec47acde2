package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/infra/cache"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
)

// UseCase use case для получения доступных слотов мастера на дату
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: worker=%s, date=%s", req.WorkerUUID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req, uc.location)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем доступность (через кэш; повторы выполняет клиент)
	availability, err := cache.Remember(ctx, uc.cache, cache.ResourceAvailability,
		cache.AvailabilityKey(req.WorkerUUID, req.Date),
		func(ctx context.Context) (*domain.Availability, error) {
			return uc.client.GetAvailability(ctx, req.WorkerUUID, date)
		})
	if err != nil {
		if errors.Is(err, lobecaapi.ErrNotFound) {
			uc.logger.Warn("GetAvailableSlots: worker=%s not found", req.WorkerUUID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get availability worker=%s date=%s: %v",
			req.WorkerUUID, req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// 3. Отбрасываем прошедшие слоты
	now := uc.timeProvider.Now().In(uc.location)
	slots := FilterSlots(availability, date, now)

	uc.logger.Info("GetAvailableSlots: %d of %d slots left for worker=%s, date=%s",
		len(slots), len(availability.AvailableSlots), req.WorkerUUID, req.Date)

	return &Response{
		WorkerUUID: req.WorkerUUID,
		Date:       req.Date,
		IsWorking:  availability.IsWorking(),
		Slots:      slots,
	}, nil
}
