package start_registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
)

// UseCase первый шаг регистрации: проверка данных, отправка OTP и сохранение намерения записи.
// Для уже зарегистрированного номера отправляется код входа, дальше путь тот же.
type UseCase struct {
	client        LobecaClient
	store         RegistrationStore
	limiter       RateLimiter
	defaultRegion string
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client LobecaClient, store RegistrationStore, limiter RateLimiter, defaultRegion string, logger Logger) *UseCase {
	return &UseCase{
		client:        client,
		store:         store,
		limiter:       limiter,
		defaultRegion: defaultRegion,
		logger:        logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация до любых запросов
	name, err := normalizeName(req.Name)
	if err != nil {
		uc.logger.Warn("StartRegistration: %v", err)
		return nil, err
	}

	phone, err := NormalizePhone(req.Phone, uc.defaultRegion)
	if err != nil {
		uc.logger.Warn("StartRegistration: %v", err)
		return nil, err
	}

	intent := req.Selection.Normalize()
	if intent.Step() != domain.StepConfirm || req.WorkerUUID == "" {
		uc.logger.Warn("StartRegistration: incomplete intent worker=%q step=%s", req.WorkerUUID, intent.Step())
		return nil, ErrIncompleteSelection
	}

	uc.logger.Info("StartRegistration: phone=%s, worker=%s, service=%d, date=%s, time=%s",
		MaskPhone(phone), req.WorkerUUID, intent.ServiceID, intent.Date, intent.Time)

	// 2. Ограничение частоты отправки кодов на номер
	if !uc.limiter.Allow(phone) {
		uc.logger.Warn("StartRegistration: rate limit exceeded for phone=%s", MaskPhone(phone))
		return nil, ErrTooManyAttempts
	}

	// 3. Регистрация в API (отправляет SMS с кодом)
	existing, err := uc.sendCode(ctx, name, phone)
	if err != nil {
		return nil, err
	}

	// 4. Намерение записи хранится до подтверждения кода
	pending, err := uc.store.Save(ctx, &domain.PendingRegistration{
		Name:            name,
		Phone:           phone,
		WorkerUUID:      req.WorkerUUID,
		Selection:       intent,
		ExistingAccount: existing,
	})
	if err != nil {
		uc.logger.Error("StartRegistration: failed to save pending registration: %v", err)
		return nil, fmt.Errorf("%w: failed to save pending registration: %v", ErrInternal, err)
	}

	uc.logger.Info("StartRegistration: pending registration id=%s created", pending.ID)

	return &Response{
		RegistrationID:  pending.ID,
		MaskedPhone:     MaskPhone(phone),
		ExistingAccount: existing,
	}, nil
}

// sendCode регистрирует номер, а если API отвечает 409, отправляет код входа.
// Возвращает true, когда аккаунт уже существовал.
func (uc *UseCase) sendCode(ctx context.Context, name, phone string) (bool, error) {
	err := uc.client.Register(ctx, name, phone)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, lobecaapi.ErrConflict) {
		return false, uc.translate("register", phone, err)
	}

	uc.logger.Info("StartRegistration: phone=%s already registered, sending login code", MaskPhone(phone))
	if err := uc.client.SendLoginCode(ctx, phone); err != nil {
		return false, uc.translate("send login code", phone, err)
	}
	return true, nil
}

func (uc *UseCase) translate(op, phone string, err error) error {
	if errors.Is(err, lobecaapi.ErrValidation) {
		uc.logger.Warn("StartRegistration: API rejected phone=%s on %s: %v", MaskPhone(phone), op, err)
		return fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	uc.logger.Error("StartRegistration: failed to %s for phone=%s: %v", op, MaskPhone(phone), err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
