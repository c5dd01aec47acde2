package establishments

import (
	"context"

	"github.com/lobeca/lobeca-web/internal/domain"
)

// LobecaClient интерфейс клиента Lobeca API
type LobecaClient interface {
	GetEstablishment(ctx context.Context, token string, establishmentID int64) (*domain.Establishment, error)
	GetPlans(ctx context.Context, token string) ([]domain.Plan, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
