package create_worker_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobeca/lobeca-web/internal/api/handlers"
	"github.com/lobeca/lobeca-web/internal/api/middleware"
	"github.com/lobeca/lobeca-web/internal/domain"
	createWorkerAppointment "github.com/lobeca/lobeca-web/internal/usecase/create_worker_appointment"
	"github.com/lobeca/lobeca-web/pkg/logger"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fakeUseCase struct {
	resp *createWorkerAppointment.Response
	err  error
	got  *createWorkerAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createWorkerAppointment.Request) (*createWorkerAppointment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func workerSession() *domain.Session {
	return &domain.Session{
		ID:          "s-1",
		UserUUID:    "w-1",
		AccessToken: "token",
		Role:        domain.RoleWorker,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func call(uc *fakeUseCase, body string, session *domain.Session) *httptest.ResponseRecorder {
	h := NewHandler(uc, brt, logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != nil {
		req = req.WithContext(middleware.WithSession(req.Context(), session))
	}

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"serviceID":42,"date":"2025-03-10","time":"14:30","customerIdentification":"Carlos"}`

func TestHandle_Created(t *testing.T) {
	identification := "Carlos"
	uc := &fakeUseCase{resp: &createWorkerAppointment.Response{Appointment: &domain.Appointment{
		UUID:                         "apt-1",
		WorkerEstablishmentServiceID: 42,
		WorkerUUID:                   "w-1",
		CustomerIdentification:       &identification,
		ScheduledAt:                  time.Date(2025, 3, 10, 14, 30, 0, 0, brt),
		Status:                       domain.AppointmentScheduled,
	}}}

	rec := call(uc, validBody, workerSession())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "apt-1", resp["uuid"])
	assert.Equal(t, "2025-03-10T14:30:00", resp["scheduledAt"])
	assert.Equal(t, "Carlos", resp["customerIdentification"])

	require.NotNil(t, uc.got)
	assert.Equal(t, "Carlos", uc.got.CustomerIdentification)
	assert.Equal(t, "2025-03-10", uc.got.Date)
	assert.Equal(t, int64(42), uc.got.ServiceID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "malformed json",
			body:       `{"serviceID":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgInvalidRequestBody,
		},
		{
			name:       "malformed time",
			body:       `{"serviceID":42,"date":"2025-03-10","time":"2pm","customerIdentification":"Carlos"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgInvalidTime,
		},
		{
			name:       "slot taken",
			body:       validBody,
			err:        createWorkerAppointment.ErrSlotUnavailable,
			wantStatus: http.StatusConflict,
			wantMsg:    "Horário indisponível. Escolha outro horário.",
		},
		{
			name:       "customer account",
			body:       validBody,
			err:        createWorkerAppointment.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantMsg:    msgForbidden,
		},
		{
			name:       "missing identification",
			body:       validBody,
			err:        createWorkerAppointment.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgInvalidInput,
		},
		{
			name:       "upstream failure",
			body:       validBody,
			err:        createWorkerAppointment.ErrInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(&fakeUseCase{err: tt.err}, tt.body, workerSession())

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantMsg, resp.Message)
			}
		})
	}
}

func TestHandle_Unauthenticated(t *testing.T) {
	rec := call(&fakeUseCase{err: createWorkerAppointment.ErrAuthenticationRequired}, validBody, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
