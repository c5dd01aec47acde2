package cancel_appointment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/lobeca/lobeca-web/internal/api/middleware"
	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/service/appointments"
	"github.com/lobeca/lobeca-web/pkg/logger"
)

type fakeService struct {
	err     error
	gotUUID string
}

func (f *fakeService) Cancel(_ context.Context, _ *domain.Session, appointmentUUID string) error {
	f.gotUUID = appointmentUUID
	return f.err
}

func TestHandle(t *testing.T) {
	session := &domain.Session{
		ID:          "s-1",
		UserUUID:    "c-1",
		AccessToken: "token",
		Role:        domain.RoleCustomer,
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "cancelled", wantStatus: http.StatusNoContent},
		{name: "not found", err: fmt.Errorf("%w: 404", appointments.ErrAppointmentNotFound), wantStatus: http.StatusNotFound},
		{name: "someone else's", err: appointments.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "already past", err: appointments.ErrCannotCancel, wantStatus: http.StatusBadRequest},
		{name: "no session", err: appointments.ErrAuthenticationRequired, wantStatus: http.StatusUnauthorized},
		{name: "api down", err: appointments.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, logger.Nop())

			r := mux.NewRouter()
			r.HandleFunc("/api/v1/appointments/{appointmentUUID}", h.Handle).Methods(http.MethodDelete)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/apt-1", nil)
			req = req.WithContext(middleware.WithSession(req.Context(), session))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "apt-1", svc.gotUUID)
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
