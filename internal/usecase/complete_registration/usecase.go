package complete_registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	registrationStore "github.com/lobeca/lobeca-web/internal/infra/storage/registration"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/internal/usecase/confirm_booking"
)

// UseCase второй шаг регистрации: проверка OTP, создание сессии и запись
// с исходным намерением без изменений
type UseCase struct {
	client       LobecaClient
	store        RegistrationStore
	limiter      RateLimiter
	sessions     SessionRepository
	confirmer    BookingConfirmer
	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// sessionTTL применяется, если в токене нет claim exp.
// limiter ограничивает попытки ввода кода на одну регистрацию.
func NewUseCase(
	client LobecaClient,
	store RegistrationStore,
	limiter RateLimiter,
	sessions SessionRepository,
	confirmer BookingConfirmer,
	sessionTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		store:        store,
		limiter:      limiter,
		sessions:     sessions,
		confirmer:    confirmer,
		sessionTTL:   sessionTTL,
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
	// 1. Валидация кода
	code := strings.TrimSpace(req.Code)
	if !isValidCode(code) {
		uc.logger.Warn("CompleteRegistration: malformed code for registration=%s", req.RegistrationID)
		return nil, fmt.Errorf("%w: code must be %d digits", ErrInvalidCode, domain.VerificationCodeLength)
	}

	// 2. Ограничение попыток: каждая проверка уходит в API
	if !uc.limiter.Allow(req.RegistrationID) {
		uc.logger.Warn("CompleteRegistration: too many attempts for registration=%s", req.RegistrationID)
		return nil, ErrTooManyAttempts
	}

	// 3. Ожидающая регистрация
	pending, err := uc.store.Get(ctx, req.RegistrationID)
	if err != nil {
		if errors.Is(err, registrationStore.ErrRegistrationNotFound) {
			uc.logger.Warn("CompleteRegistration: registration=%s not found or expired", req.RegistrationID)
			return nil, ErrRegistrationExpired
		}
		uc.logger.Error("CompleteRegistration: failed to load registration=%s: %v", req.RegistrationID, err)
		return nil, fmt.Errorf("%w: failed to load registration: %v", ErrInternal, err)
	}

	// 4. Проверка кода в API (создает профиль или выполняет вход)
	verified, err := uc.client.VerifyCode(ctx, pending.Phone, code)
	if err != nil {
		if errors.Is(err, lobecaapi.ErrValidation) || errors.Is(err, lobecaapi.ErrUnauthorized) || errors.Is(err, lobecaapi.ErrNotFound) {
			uc.logger.Warn("CompleteRegistration: code rejected for registration=%s", pending.ID)
			return nil, ErrInvalidCode
		}
		uc.logger.Error("CompleteRegistration: failed to verify code for registration=%s: %v", pending.ID, err)
		return nil, fmt.Errorf("%w: failed to verify code: %v", ErrInternal, err)
	}

	// 5. Локальная сессия
	now := uc.timeProvider.Now()
	expiresAt, ok := tokenExpiry(verified.AccessToken)
	if !ok {
		expiresAt = now.Add(uc.sessionTTL)
	}

	role := domain.Role(verified.User.Role)
	if role == "" {
		role = domain.RoleCustomer
	}
	name := verified.User.Name
	if name == "" {
		name = pending.Name
	}

	session, err := uc.sessions.Create(ctx, &domain.Session{
		UserUUID:    verified.User.UUID,
		Name:        name,
		Phone:       pending.Phone,
		Role:        role,
		AccessToken: verified.AccessToken,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
	})
	if err != nil {
		uc.logger.Error("CompleteRegistration: failed to create session for user=%s: %v", verified.User.UUID, err)
		return nil, fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
	}

	// Код уже использован: повторная проверка невозможна
	if err := uc.store.Delete(ctx, pending.ID); err != nil {
		uc.logger.Warn("CompleteRegistration: failed to delete registration=%s: %v", pending.ID, err)
	}

	uc.logger.Info("CompleteRegistration: user=%s verified, existing_account=%t, session=%s",
		session.UserUUID, pending.ExistingAccount, session.ID)

	resp := &Response{
		Session:    session,
		WorkerUUID: pending.WorkerUUID,
		Selection:  pending.Selection,
	}

	// 6. Запись с исходным намерением
	booking, err := uc.confirmer.Execute(ctx, &confirm_booking.Request{
		WorkerUUID: pending.WorkerUUID,
		Selection:  pending.Selection,
		Session:    session,
	})
	if err != nil {
		uc.logger.Warn("CompleteRegistration: commit after registration failed for user=%s: %v", session.UserUUID, err)
		resp.CommitErr = err
		return resp, nil
	}

	resp.Booking = booking
	return resp, nil
}

func isValidCode(code string) bool {
	if len(code) != domain.VerificationCodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
