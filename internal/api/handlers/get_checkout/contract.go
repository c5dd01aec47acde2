package get_checkout

import (
	"context"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/service/establishments/models"
)

type EstablishmentService interface {
	Checkout(ctx context.Context, session *domain.Session, establishmentID int64) (*models.CheckoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
