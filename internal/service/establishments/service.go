package establishments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/internal/service/establishments/models"
)

// Service сервис экрана оформления подписки заведения
type Service struct {
	client LobecaClient
	now    func() time.Time
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(client LobecaClient, logger Logger) *Service {
	return &Service{
		client: client,
		now:    time.Now,
		logger: logger,
	}
}

// Checkout загружает заведение и тарифные планы параллельно.
// Ждёт оба запроса и возвращает первую ошибку; остальные запросы отменяются через контекст.
func (s *Service) Checkout(ctx context.Context, session *domain.Session, establishmentID int64) (*models.CheckoutResponse, error) {
	if !session.IsAuthenticated(s.now()) {
		return nil, ErrAuthenticationRequired
	}
	if establishmentID <= 0 {
		return nil, fmt.Errorf("%w: establishmentID must be positive", ErrInvalidInput)
	}

	s.logger.Info("Checkout: establishment=%d, user=%s", establishmentID, session.UserUUID)

	var (
		establishment *domain.Establishment
		plans         []domain.Plan
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		e, err := s.client.GetEstablishment(gctx, session.AccessToken, establishmentID)
		if err != nil {
			return fmt.Errorf("establishment: %w", err)
		}
		establishment = e
		return nil
	})

	g.Go(func() error {
		p, err := s.client.GetPlans(gctx, session.AccessToken)
		if err != nil {
			return fmt.Errorf("plans: %w", err)
		}
		plans = p
		return nil
	})

	if err := g.Wait(); err != nil {
		switch {
		case errors.Is(err, lobecaapi.ErrNotFound):
			s.logger.Warn("Checkout: establishment=%d not found: %v", establishmentID, err)
			return nil, ErrEstablishmentNotFound
		case errors.Is(err, lobecaapi.ErrUnauthorized):
			s.logger.Warn("Checkout: access denied for user=%s: %v", session.UserUUID, err)
			return nil, ErrAccessDenied
		default:
			s.logger.Error("Checkout: failed to load establishment=%d: %v", establishmentID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return models.FromDomainCheckout(&domain.Checkout{
		Establishment: *establishment,
		Plans:         plans,
	}), nil
}
