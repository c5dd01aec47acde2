package establishments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/pkg/logger"
	"github.com/lobeca/lobeca-web/pkg/ptr"
)

type fakeClient struct {
	establishmentErr error
	plansErr         error
	plansDelay       time.Duration
	plansCancelled   bool
}

func (f *fakeClient) GetEstablishment(ctx context.Context, token string, id int64) (*domain.Establishment, error) {
	if f.establishmentErr != nil {
		return nil, f.establishmentErr
	}
	return &domain.Establishment{ID: id, Name: "Barbearia do Zé", PlanID: ptr.Ptr(int64(2))}, nil
}

func (f *fakeClient) GetPlans(ctx context.Context, token string) ([]domain.Plan, error) {
	if f.plansDelay > 0 {
		select {
		case <-ctx.Done():
			f.plansCancelled = true
			return nil, ctx.Err()
		case <-time.After(f.plansDelay):
		}
	}
	if f.plansErr != nil {
		return nil, f.plansErr
	}
	return []domain.Plan{{ID: 1, Name: "Básico"}, {ID: 2, Name: "Pro"}}, nil
}

func session() *domain.Session {
	return &domain.Session{UserUUID: "o-1", Role: domain.RoleOwner, AccessToken: "token", ExpiresAt: time.Now().Add(time.Hour)}
}

func TestService_Checkout(t *testing.T) {
	svc := NewService(&fakeClient{}, logger.Nop())

	resp, err := svc.Checkout(context.Background(), session(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.Establishment.ID)
	require.Len(t, resp.Plans, 2)
	assert.False(t, resp.Plans[0].Current)
	assert.True(t, resp.Plans[1].Current)
}

func TestService_CheckoutSurfacesFirstError(t *testing.T) {
	client := &fakeClient{establishmentErr: lobecaapi.ErrNotFound, plansDelay: 5 * time.Second}
	svc := NewService(client, logger.Nop())

	start := time.Now()
	_, err := svc.Checkout(context.Background(), session(), 5)

	assert.ErrorIs(t, err, ErrEstablishmentNotFound)
	assert.True(t, client.plansCancelled, "sibling read is cancelled")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestService_CheckoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeClient
		wantErr error
	}{
		{"plans unauthorized", &fakeClient{plansErr: lobecaapi.ErrUnauthorized}, ErrAccessDenied},
		{"plans failed", &fakeClient{plansErr: errors.New("boom")}, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.client, logger.Nop()).Checkout(context.Background(), session(), 5)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := NewService(&fakeClient{}, logger.Nop()).Checkout(context.Background(), nil, 5)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	_, err = NewService(&fakeClient{}, logger.Nop()).Checkout(context.Background(), session(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
