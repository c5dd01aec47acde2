package confirm_booking

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/lobeca/lobeca-web/internal/api/handlers"
	"github.com/lobeca/lobeca-web/internal/api/middleware"
	"github.com/lobeca/lobeca-web/internal/domain"
	completeRegistration "github.com/lobeca/lobeca-web/internal/usecase/complete_registration"
	confirmBooking "github.com/lobeca/lobeca-web/internal/usecase/confirm_booking"
	startRegistration "github.com/lobeca/lobeca-web/internal/usecase/start_registration"
	"github.com/lobeca/lobeca-web/internal/views"
)

const (
	msgInvalidForm         = "formulário inválido"
	msgWorkerNotFound      = "Profissional não encontrado."
	msgServiceNotFound     = "Serviço não encontrado."
	msgAppointmentNotFound = "Agendamento não encontrado."
	msgBookingRejected     = "Não foi possível agendar com os dados informados."
	msgBookingFailed       = "Não foi possível concluir o agendamento. Tente novamente."
	msgInvalidName         = "Informe seu nome (mínimo de 2 letras)."
	msgInvalidPhone        = "Informe um celular válido com DDD."
	msgTooManyAttempts     = "Muitas tentativas. Aguarde um minuto e tente novamente."
	msgRegistrationFailed  = "Não foi possível enviar o código. Tente novamente."
	msgInvalidCode         = "Código inválido."
	msgRegistrationExpired = "O código expirou. Informe seus dados novamente."
	msgVerificationFailed  = "Não foi possível validar o código. Tente novamente."
)

type Handler struct {
	confirm  ConfirmBookingUseCase
	start    StartRegistrationUseCase
	complete CompleteRegistrationUseCase
	renderer WizardRenderer
	cookie   SessionCookie
	logger   Logger
}

func NewHandler(
	confirm ConfirmBookingUseCase,
	start StartRegistrationUseCase,
	complete CompleteRegistrationUseCase,
	renderer WizardRenderer,
	cookie SessionCookie,
	logger Logger,
) *Handler {
	return &Handler{
		confirm:  confirm,
		start:    start,
		complete: complete,
		renderer: renderer,
		cookie:   cookie,
		logger:   logger,
	}
}

// HandleConfirm POST /book/{workerUUID}/confirm
// Query: serviceID, date, time и, при переносе, appointmentUUID
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	workerUUID := mux.Vars(r)["workerUUID"]
	query := r.URL.Query()
	session := middleware.GetSession(r.Context())

	result, err := h.confirm.Execute(r.Context(), &confirmBooking.Request{
		WorkerUUID: workerUUID,
		Selection:  domain.SelectionFromQuery(query),
		Session:    session,
	})
	if err != nil {
		h.commitFailed(w, r, "POST /book/{workerUUID}/confirm", workerUUID, query, session, err)
		return
	}

	h.logger.Info("POST /book/{workerUUID}/confirm - Appointment confirmed: worker_uuid=%s, appointment_uuid=%s, rescheduled=%t",
		workerUUID, result.Appointment.UUID, result.Rescheduled)
	h.renderer.RenderBooked(w, r, workerUUID, query, session, result.Appointment, result.Rescheduled)
}

// HandleRegister POST /book/{workerUUID}/register
// Form: name, phone. Отправляет OTP и сохраняет намерение записи из query.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	workerUUID := mux.Vars(r)["workerUUID"]
	query := r.URL.Query()
	session := middleware.GetSession(r.Context())

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /book/{workerUUID}/register - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	name := r.PostForm.Get("name")
	phone := r.PostForm.Get("phone")

	result, err := h.start.Execute(r.Context(), &startRegistration.Request{
		WorkerUUID: workerUUID,
		Name:       name,
		Phone:      phone,
		Selection:  domain.SelectionFromQuery(query),
	})
	if err != nil {
		reg := &views.RegistrationView{Name: name, Phone: phone}
		status := http.StatusBadRequest

		switch {
		case errors.Is(err, startRegistration.ErrInvalidName):
			h.logger.Warn("POST /book/{workerUUID}/register - Invalid name: worker_uuid=%s", workerUUID)
			reg.FieldErrors = map[string]string{"name": msgInvalidName}

		case errors.Is(err, startRegistration.ErrInvalidPhone):
			h.logger.Warn("POST /book/{workerUUID}/register - Invalid phone: worker_uuid=%s", workerUUID)
			reg.FieldErrors = map[string]string{"phone": msgInvalidPhone}

		case errors.Is(err, startRegistration.ErrTooManyAttempts):
			h.logger.Warn("POST /book/{workerUUID}/register - Too many attempts: worker_uuid=%s", workerUUID)
			reg.Error = msgTooManyAttempts
			status = http.StatusTooManyRequests

		case errors.Is(err, startRegistration.ErrIncompleteSelection):
			h.logger.Warn("POST /book/{workerUUID}/register - Incomplete selection: query=%s", r.URL.RawQuery)
			h.renderer.Render(w, r, workerUUID, query, session, http.StatusBadRequest, nil)
			return

		default:
			h.logger.Error("POST /book/{workerUUID}/register - Failed to start registration: worker_uuid=%s, error=%v", workerUUID, err)
			reg.Error = msgRegistrationFailed
			status = http.StatusServiceUnavailable
		}

		h.renderer.Render(w, r, workerUUID, query, session, status, withRegistration(reg))
		return
	}

	h.logger.Info("POST /book/{workerUUID}/register - Verification code sent: worker_uuid=%s, registration_id=%s, existing_account=%t",
		workerUUID, result.RegistrationID, result.ExistingAccount)
	h.renderer.Render(w, r, workerUUID, query, session, http.StatusOK, withRegistration(&views.RegistrationView{
		RegistrationID: result.RegistrationID,
		MaskedPhone:    result.MaskedPhone,
		SignIn:         result.ExistingAccount,
	}))
}

// HandleVerify POST /book/{workerUUID}/verify
// Form: registrationID, code. После проверки кода создает сессию и подтверждает исходную запись.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	workerUUID := mux.Vars(r)["workerUUID"]
	query := r.URL.Query()
	session := middleware.GetSession(r.Context())

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /book/{workerUUID}/verify - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	registrationID := r.PostForm.Get("registrationID")
	maskedPhone := r.PostForm.Get("maskedPhone")

	result, err := h.complete.Execute(r.Context(), &completeRegistration.Request{
		RegistrationID: registrationID,
		Code:           r.PostForm.Get("code"),
	})
	if err != nil {
		reg := &views.RegistrationView{
			RegistrationID: registrationID,
			MaskedPhone:    maskedPhone,
			SignIn:         r.PostForm.Get("signIn") == "1",
		}
		status := http.StatusBadRequest

		switch {
		case errors.Is(err, completeRegistration.ErrInvalidCode):
			h.logger.Warn("POST /book/{workerUUID}/verify - Invalid code: registration_id=%s", registrationID)
			reg.FieldErrors = map[string]string{"code": msgInvalidCode}

		case errors.Is(err, completeRegistration.ErrTooManyAttempts):
			h.logger.Warn("POST /book/{workerUUID}/verify - Too many attempts: registration_id=%s", registrationID)
			reg.Error = msgTooManyAttempts
			status = http.StatusTooManyRequests

		case errors.Is(err, completeRegistration.ErrRegistrationExpired):
			h.logger.Warn("POST /book/{workerUUID}/verify - Registration expired: registration_id=%s", registrationID)
			reg = &views.RegistrationView{Error: msgRegistrationExpired}
			status = http.StatusGone

		default:
			h.logger.Error("POST /book/{workerUUID}/verify - Failed to verify code: registration_id=%s, error=%v", registrationID, err)
			reg.Error = msgVerificationFailed
			status = http.StatusServiceUnavailable
		}

		h.renderer.Render(w, r, workerUUID, query, session, status, withRegistration(reg))
		return
	}

	// Профиль и сессия уже созданы, cookie выдается даже если запись не удалась
	h.cookie.Set(w, result.Session)

	intent := result.Selection.Query()
	if result.CommitErr != nil {
		h.commitFailed(w, r, "POST /book/{workerUUID}/verify", result.WorkerUUID, intent, result.Session, result.CommitErr)
		return
	}

	h.logger.Info("POST /book/{workerUUID}/verify - Registered and confirmed: user_uuid=%s, appointment_uuid=%s",
		result.Session.UserUUID, result.Booking.Appointment.UUID)
	h.renderer.RenderBooked(w, r, result.WorkerUUID, intent, result.Session, result.Booking.Appointment, result.Booking.Rescheduled)
}

// commitFailed переводит ошибку подтверждения в экран. URL не меняется:
// пользователь остается на шаге подтверждения с тем же выбором.
func (h *Handler) commitFailed(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	workerUUID string,
	query url.Values,
	session *domain.Session,
	err error,
) {
	switch {
	case errors.Is(err, confirmBooking.ErrSlotUnavailable):
		h.logger.Warn("%s - Slot unavailable: worker_uuid=%s, query=%s", op, workerUUID, query.Encode())
		h.renderer.Render(w, r, workerUUID, query, session, http.StatusConflict, withError(views.MsgSlotUnavailable))

	case errors.Is(err, confirmBooking.ErrAuthenticationRequired):
		h.logger.Info("%s - Registration required: worker_uuid=%s", op, workerUUID)
		h.renderer.Render(w, r, workerUUID, query, nil, http.StatusOK, withRegistration(&views.RegistrationView{}))

	case errors.Is(err, confirmBooking.ErrIncompleteSelection):
		h.logger.Warn("%s - Incomplete selection: query=%s", op, query.Encode())
		h.renderer.Render(w, r, workerUUID, query, session, http.StatusBadRequest, nil)

	case errors.Is(err, confirmBooking.ErrWorkerNotFound):
		h.logger.Warn("%s - Worker not found: worker_uuid=%s", op, workerUUID)
		h.renderer.RenderError(w, r, http.StatusNotFound, views.NotFound(msgWorkerNotFound))

	case errors.Is(err, confirmBooking.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: worker_uuid=%s, query=%s", op, workerUUID, query.Encode())
		h.renderer.RenderError(w, r, http.StatusNotFound, views.NotFound(msgServiceNotFound))

	case errors.Is(err, confirmBooking.ErrAppointmentNotFound):
		h.logger.Warn("%s - Appointment not found: query=%s", op, query.Encode())
		h.renderer.RenderError(w, r, http.StatusNotFound, views.NotFound(msgAppointmentNotFound))

	case errors.Is(err, confirmBooking.ErrInvalidInput):
		h.logger.Warn("%s - Booking rejected: worker_uuid=%s, error=%v", op, workerUUID, err)
		h.renderer.Render(w, r, workerUUID, query, session, http.StatusBadRequest, withError(msgBookingRejected))

	default:
		h.logger.Error("%s - Failed to confirm booking: worker_uuid=%s, error=%v", op, workerUUID, err)
		h.renderer.Render(w, r, workerUUID, query, session, http.StatusServiceUnavailable, withError(msgBookingFailed))
	}
}

func withError(message string) func(*views.WizardView) {
	return func(v *views.WizardView) {
		v.Error = message
	}
}

func withRegistration(reg *views.RegistrationView) func(*views.WizardView) {
	return func(v *views.WizardView) {
		v.Registration = reg
	}
}
