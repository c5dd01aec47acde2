package confirm_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/infra/cache"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/pkg/logger"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fakeClient struct {
	worker    *domain.Worker
	existing  *domain.Appointment
	commitErr error

	created []domain.AppointmentCommand
	updated []string
}

func (f *fakeClient) GetWorker(ctx context.Context, workerUUID string) (*domain.Worker, error) {
	if f.worker == nil {
		return nil, lobecaapi.ErrNotFound
	}
	return f.worker, nil
}

func (f *fakeClient) GetAppointment(ctx context.Context, token, appointmentUUID string) (*domain.Appointment, error) {
	if f.existing == nil {
		return nil, lobecaapi.ErrNotFound
	}
	return f.existing, nil
}

func (f *fakeClient) CreateAppointment(ctx context.Context, token string, cmd domain.AppointmentCommand) (*domain.Appointment, error) {
	f.created = append(f.created, cmd)
	if f.commitErr != nil {
		return nil, f.commitErr
	}
	return &domain.Appointment{UUID: "apt-new", ScheduledAt: cmd.ScheduledAt, Status: domain.AppointmentScheduled}, nil
}

func (f *fakeClient) UpdateAppointment(ctx context.Context, token, appointmentUUID string, cmd domain.AppointmentCommand) (*domain.Appointment, error) {
	f.updated = append(f.updated, appointmentUUID)
	if f.commitErr != nil {
		return nil, f.commitErr
	}
	return &domain.Appointment{UUID: appointmentUUID, ScheduledAt: cmd.ScheduledAt, Status: domain.AppointmentScheduled}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, brt)

func customer() *domain.Session {
	return &domain.Session{
		ID:          "s-1",
		UserUUID:    "u-1",
		Role:        domain.RoleCustomer,
		AccessToken: "token",
		ExpiresAt:   now.Add(24 * time.Hour),
	}
}

func worker() *domain.Worker {
	return &domain.Worker{UUID: "w-1", Services: []domain.Service{{ID: 42, Name: "Corte"}}}
}

func selection() domain.Selection {
	return domain.Selection{ServiceID: 42, Date: "2025-03-10", Time: "14:30"}
}

func newUseCase(client *fakeClient, c *cache.Cache) *UseCase {
	return NewUseCase(client, c, brt, logger.Nop()).WithTimeProvider(fixedTime{now: now})
}

func TestUseCase_CreatesAppointment(t *testing.T) {
	client := &fakeClient{worker: worker()}
	uc := newUseCase(client, nil)

	resp, err := uc.Execute(context.Background(), &Request{WorkerUUID: "w-1", Selection: selection(), Session: customer()})
	require.NoError(t, err)

	require.Len(t, client.created, 1)
	cmd := client.created[0]
	assert.Equal(t, int64(42), cmd.WorkerEstablishmentServiceID)
	require.NotNil(t, cmd.CustomerUUID)
	assert.Equal(t, "u-1", *cmd.CustomerUUID)
	assert.Nil(t, cmd.CustomerIdentification)
	assert.Equal(t, "2025-03-10T14:30:00", lobecaapi.NewAppointmentRequest(cmd).ScheduledAt)

	assert.Equal(t, "apt-new", resp.Appointment.UUID)
	assert.False(t, resp.Rescheduled)
	assert.Empty(t, client.updated)
}

func TestUseCase_ConflictIsSlotUnavailable(t *testing.T) {
	client := &fakeClient{worker: worker(), commitErr: fmt.Errorf("%w: status 409", lobecaapi.ErrConflict)}
	uc := newUseCase(client, nil)

	_, err := uc.Execute(context.Background(), &Request{WorkerUUID: "w-1", Selection: selection(), Session: customer()})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Len(t, client.created, 1, "commit is never retried")
}

func TestUseCase_AnonymousNeedsRegistration(t *testing.T) {
	expired := customer()
	expired.ExpiresAt = now.Add(-time.Minute)

	for name, session := range map[string]*domain.Session{"anonymous": nil, "expired": expired} {
		t.Run(name, func(t *testing.T) {
			client := &fakeClient{worker: worker()}
			uc := newUseCase(client, nil)

			_, err := uc.Execute(context.Background(), &Request{WorkerUUID: "w-1", Selection: selection(), Session: session})

			assert.ErrorIs(t, err, ErrAuthenticationRequired)
			assert.Empty(t, client.created)
		})
	}
}

func TestUseCase_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeClient
		sel     domain.Selection
		wantErr error
	}{
		{"incomplete", &fakeClient{worker: worker()}, domain.Selection{ServiceID: 42, Date: "2025-03-10"}, ErrIncompleteSelection},
		{"worker not found", &fakeClient{}, selection(), ErrWorkerNotFound},
		{"foreign service", &fakeClient{worker: worker()}, domain.Selection{ServiceID: 7, Date: "2025-03-10", Time: "14:30"}, ErrServiceNotFound},
		{"validation", &fakeClient{worker: worker(), commitErr: lobecaapi.ErrValidation}, selection(), ErrInvalidInput},
		{"upstream down", &fakeClient{worker: worker(), commitErr: lobecaapi.ErrUnavailable}, selection(), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.client, nil)
			_, err := uc.Execute(context.Background(), &Request{WorkerUUID: "w-1", Selection: tt.sel, Session: customer()})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_RescheduleInvalidatesOldAndNewDay(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	c := cache.New(rdb, time.Minute, nil, logger.Nop())

	for _, k := range []string{
		"availability:w-1:2025-03-08",
		"availability:w-1:2025-03-10",
		"availability:w-1:2025-03-11",
		"appointments:user:u-1",
	} {
		require.NoError(t, mr.Set(k, "{}"))
	}

	client := &fakeClient{
		worker:   worker(),
		existing: &domain.Appointment{UUID: "apt-1", ScheduledAt: time.Date(2025, 3, 8, 10, 0, 0, 0, brt)},
	}
	uc := newUseCase(client, c)

	sel := selection()
	sel.AppointmentUUID = "apt-1"

	resp, err := uc.Execute(context.Background(), &Request{WorkerUUID: "w-1", Selection: sel, Session: customer()})
	require.NoError(t, err)

	assert.True(t, resp.Rescheduled)
	assert.Equal(t, []string{"apt-1"}, client.updated)
	assert.Empty(t, client.created)

	assert.False(t, mr.Exists("availability:w-1:2025-03-08"))
	assert.False(t, mr.Exists("availability:w-1:2025-03-10"))
	assert.False(t, mr.Exists("appointments:user:u-1"))
	assert.False(t, mr.Exists("appointment:u-1:apt-1"))
	assert.True(t, mr.Exists("availability:w-1:2025-03-11"))
}
