package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/pkg/logger"
	"github.com/lobeca/lobeca-web/pkg/types"
)

type fakeClient struct {
	availability *domain.Availability
	err          error
	gotDate      time.Time
	calls        int
}

func (f *fakeClient) GetAvailability(ctx context.Context, workerUUID string, date time.Time) (*domain.Availability, error) {
	f.calls++
	f.gotDate = date
	return f.availability, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func TestUseCase_Execute(t *testing.T) {
	client := &fakeClient{availability: availabilityOf(true, "09:00", "14:30")}
	uc := NewUseCase(client, nil, brt, logger.Nop()).
		WithTimeProvider(fixedTime{now: time.Date(2025, 3, 10, 12, 0, 0, 0, brt)})

	resp, err := uc.Execute(context.Background(), &Request{WorkerUUID: "w-1", Date: "2025-03-10"})
	require.NoError(t, err)

	assert.True(t, resp.IsWorking)
	assert.Equal(t, []types.TimeString{"14:30"}, resp.Slots)
	assert.Equal(t, time.Monday, client.gotDate.Weekday())
	assert.Equal(t, brt, client.gotDate.Location())
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		apiErr  error
		wantErr error
		calls   int
	}{
		{"missing worker", &Request{Date: "2025-03-10"}, nil, ErrInvalidInput, 0},
		{"invalid date", &Request{WorkerUUID: "w-1", Date: "10/03/2025"}, nil, ErrInvalidInput, 0},
		{"not found", &Request{WorkerUUID: "w-1", Date: "2025-03-10"}, fmt.Errorf("%w: status 404", lobecaapi.ErrNotFound), ErrWorkerNotFound, 1},
		{"upstream failure", &Request{WorkerUUID: "w-1", Date: "2025-03-10"}, errors.New("dial tcp: refused"), ErrUnavailable, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{err: tt.apiErr}
			uc := NewUseCase(client, nil, brt, logger.Nop())

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.calls, client.calls)
		})
	}
}
