package load_wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/infra/cache"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/internal/usecase/get_available_slots"
)

// Config параметры отображения мастера
type Config struct {
	Location       *time.Location
	DaysShown      int
	SelectionDelay time.Duration
}

// UseCase собирает данные для текущего шага мастера записи
type UseCase struct {
	client       LobecaClient
	slots        SlotsProvider
	cache        *cache.Cache
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client LobecaClient, slots SlotsProvider, queryCache *cache.Cache, cfg Config, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		slots:        slots,
		cache:        queryCache,
		cfg:          cfg,
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
	if strings.TrimSpace(req.WorkerUUID) == "" {
		return nil, fmt.Errorf("%w: workerUUID is required", ErrInvalidInput)
	}

	state := domain.ParseWizardState(req.Query)
	now := uc.timeProvider.Now().In(uc.cfg.Location)

	uc.logger.Info("LoadWizard: worker=%s, step=%s", req.WorkerUUID, state.Step())

	// 1. Мастер и его услуги
	worker, err := cache.Remember(ctx, uc.cache, cache.ResourceWorker, cache.WorkerKey(req.WorkerUUID),
		func(ctx context.Context) (*domain.Worker, error) {
			return uc.client.GetWorker(ctx, req.WorkerUUID)
		})
	if err != nil {
		if errors.Is(err, lobecaapi.ErrNotFound) {
			uc.logger.Warn("LoadWizard: worker=%s not found", req.WorkerUUID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("LoadWizard: failed to get worker=%s: %v", req.WorkerUUID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp := &Response{
		Worker:         worker,
		State:          state,
		Selection:      state.Selection(),
		Authenticated:  req.Session.IsAuthenticated(now),
		SelectionDelay: uc.cfg.SelectionDelay,
	}

	if state.Step() == domain.StepService {
		return resp, nil
	}

	// 2. Выбранная услуга должна принадлежать мастеру
	service, ok := worker.FindService(resp.Selection.ServiceID)
	if !ok {
		uc.logger.Warn("LoadWizard: service=%d not offered by worker=%s", resp.Selection.ServiceID, req.WorkerUUID)
		return nil, ErrServiceNotFound
	}
	resp.Service = &service

	// 3. Данные шага
	switch s := state.(type) {
	case domain.DateStepState:
		resp.Days = uc.days(now)

	case domain.TimeStepState:
		slots, err := uc.slots.Execute(ctx, &get_available_slots.Request{WorkerUUID: req.WorkerUUID, Date: s.Date})
		if err != nil {
			if errors.Is(err, get_available_slots.ErrWorkerNotFound) {
				return nil, ErrWorkerNotFound
			}
			uc.logger.Warn("LoadWizard: slots unavailable for worker=%s date=%s: %v", req.WorkerUUID, s.Date, err)
			resp.SlotsError = true
			return resp, nil
		}
		resp.IsWorking = slots.IsWorking
		resp.Slots = slots.Slots

	case domain.ConfirmStepState:
		scheduledAt, err := resp.Selection.ScheduledAt(uc.cfg.Location)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		resp.ScheduledAt = scheduledAt
	}

	return resp, nil
}

// days возвращает ближайшие DaysShown дней, начиная с сегодняшнего
func (uc *UseCase) days(now time.Time) []Day {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := make([]Day, uc.cfg.DaysShown)
	for i := range days {
		d := today.AddDate(0, 0, i)
		days[i] = Day{
			Date:    d.Format(domain.DateFormat),
			Time:    d,
			IsToday: i == 0,
		}
	}
	return days
}
