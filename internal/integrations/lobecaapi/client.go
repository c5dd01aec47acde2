package lobecaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
)

const defaultRetryDelay = 200 * time.Millisecond

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик запросов к API
type MetricsRecorder interface {
	ObserveUpstream(operation, status string, d time.Duration)
}

// Client клиент для работы с Lobeca API
type Client struct {
	baseURL     string
	httpClient  *http.Client
	readRetries int
	retryDelay  time.Duration
	location    *time.Location
	metrics     MetricsRecorder
	log         Logger
}

// Option настройка клиента
type Option func(*Client)

// WithMetrics включает запись метрик
func WithMetrics(m MetricsRecorder) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLocation задаёт зону, в которой интерпретируется scheduledAt без смещения
func WithLocation(loc *time.Location) Option {
	return func(c *Client) { c.location = loc }
}

// WithRetryDelay задаёт базовую паузу между повторами чтения
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// NewClient создает новый экземпляр клиента Lobeca API.
// timeout применяется к каждому запросу, readRetries - число повторов для GET при ErrUnavailable.
func NewClient(baseURL string, timeout time.Duration, readRetries int, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		readRetries: readRetries,
		retryDelay:  defaultRetryDelay,
		location:    time.UTC,
		log:         log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetWorker получает мастера и список его услуг
func (c *Client) GetWorker(ctx context.Context, workerUUID string) (*domain.Worker, error) {
	var dto WorkerDTO
	err := c.do(ctx, call{
		operation: "get_worker",
		method:    http.MethodGet,
		path:      "/user/worker/" + url.PathEscape(workerUUID),
	}, &dto)
	if err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// GetAvailability получает рабочие часы и свободные слоты мастера на дату
func (c *Client) GetAvailability(ctx context.Context, workerUUID string, date time.Time) (*domain.Availability, error) {
	dateStr := date.Format(domain.DateFormat)

	query := url.Values{}
	query.Set("workerUUID", workerUUID)
	query.Set("dayOfWeek", strconv.Itoa(int(date.Weekday())))
	query.Set("date", dateStr)

	var resp AvailabilityResponse
	err := c.do(ctx, call{
		operation: "get_availability",
		method:    http.MethodGet,
		path:      "/user/availability",
		query:     query,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.ToDomain(workerUUID, dateStr), nil
}

// CreateAppointment создает запись от имени клиента
func (c *Client) CreateAppointment(ctx context.Context, token string, cmd domain.AppointmentCommand) (*domain.Appointment, error) {
	return c.writeAppointment(ctx, call{
		operation: "create_appointment",
		method:    http.MethodPost,
		path:      "/appointment",
		token:     token,
		body:      NewAppointmentRequest(cmd),
	})
}

// CreateAppointmentByWorker создает запись от имени мастера для клиента без аккаунта
func (c *Client) CreateAppointmentByWorker(ctx context.Context, token string, cmd domain.AppointmentCommand) (*domain.Appointment, error) {
	return c.writeAppointment(ctx, call{
		operation: "create_appointment_by_worker",
		method:    http.MethodPost,
		path:      "/appointment/by-worker",
		token:     token,
		body:      NewAppointmentRequest(cmd),
	})
}

// UpdateAppointment переносит существующую запись
func (c *Client) UpdateAppointment(ctx context.Context, token, appointmentUUID string, cmd domain.AppointmentCommand) (*domain.Appointment, error) {
	return c.writeAppointment(ctx, call{
		operation: "update_appointment",
		method:    http.MethodPatch,
		path:      "/appointment/" + url.PathEscape(appointmentUUID),
		token:     token,
		body:      NewAppointmentRequest(cmd),
	})
}

// DeleteAppointment отменяет запись
func (c *Client) DeleteAppointment(ctx context.Context, token, appointmentUUID string) error {
	return c.do(ctx, call{
		operation: "delete_appointment",
		method:    http.MethodDelete,
		path:      "/appointment/" + url.PathEscape(appointmentUUID),
		token:     token,
	}, nil)
}

// GetAppointment получает запись по UUID
func (c *Client) GetAppointment(ctx context.Context, token, appointmentUUID string) (*domain.Appointment, error) {
	var dto AppointmentDTO
	err := c.do(ctx, call{
		operation: "get_appointment",
		method:    http.MethodGet,
		path:      "/appointment/" + url.PathEscape(appointmentUUID),
		token:     token,
	}, &dto)
	if err != nil {
		return nil, err
	}
	return dto.ToDomain(c.location)
}

// GetUserAppointments получает записи текущего пользователя
func (c *Client) GetUserAppointments(ctx context.Context, token string) ([]*domain.Appointment, error) {
	var dtos []AppointmentDTO
	err := c.do(ctx, call{
		operation: "get_user_appointments",
		method:    http.MethodGet,
		path:      "/user/appointments",
		token:     token,
	}, &dtos)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Appointment, 0, len(dtos))
	for i := range dtos {
		a, err := dtos[i].ToDomain(c.location)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

// Register регистрирует пользователя и отправляет OTP-код по SMS
func (c *Client) Register(ctx context.Context, name, phone string) error {
	return c.do(ctx, call{
		operation: "register",
		method:    http.MethodPost,
		path:      "/user/register",
		body:      RegisterRequest{Name: name, Phone: phone},
	}, nil)
}

// SendLoginCode отправляет OTP-код для входа по номеру, у которого уже есть аккаунт.
// Подтверждается тем же VerifyCode.
func (c *Client) SendLoginCode(ctx context.Context, phone string) error {
	return c.do(ctx, call{
		operation: "send_code",
		method:    http.MethodPost,
		path:      "/user/send-code",
		body:      SendCodeRequest{Phone: phone},
	}, nil)
}

// VerifyCode подтверждает OTP-код; API создает профиль и выдает токен доступа
func (c *Client) VerifyCode(ctx context.Context, phone, code string) (*VerifyCodeResponse, error) {
	var resp VerifyCodeResponse
	err := c.do(ctx, call{
		operation: "verify_code",
		method:    http.MethodPost,
		path:      "/user/verify-code",
		body:      VerifyCodeRequest{Phone: phone, Code: code},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" || resp.User.UUID == "" {
		return nil, fmt.Errorf("%w: verify-code response without token or user", ErrInvalidResponse)
	}
	return &resp, nil
}

// GetEstablishment получает заведение
func (c *Client) GetEstablishment(ctx context.Context, token string, establishmentID int64) (*domain.Establishment, error) {
	var dto EstablishmentDTO
	err := c.do(ctx, call{
		operation: "get_establishment",
		method:    http.MethodGet,
		path:      "/establishment/" + strconv.FormatInt(establishmentID, 10),
		token:     token,
	}, &dto)
	if err != nil {
		return nil, err
	}
	e := dto.ToDomain()
	return &e, nil
}

// GetPlans получает список тарифных планов подписки
func (c *Client) GetPlans(ctx context.Context, token string) ([]domain.Plan, error) {
	var dtos []PlanDTO
	err := c.do(ctx, call{
		operation: "get_plans",
		method:    http.MethodGet,
		path:      "/subscription/plans",
		token:     token,
	}, &dtos)
	if err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, len(dtos))
	for i := range dtos {
		plans[i] = dtos[i].ToDomain()
	}
	return plans, nil
}

func (c *Client) writeAppointment(ctx context.Context, req call) (*domain.Appointment, error) {
	var dto AppointmentDTO
	if err := c.do(ctx, req, &dto); err != nil {
		return nil, err
	}
	return dto.ToDomain(c.location)
}

type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	token     string
	body      interface{}
}

// do выполняет запрос. Чтения (GET) повторяются до readRetries раз при ErrUnavailable,
// изменения выполняются ровно один раз.
func (c *Client) do(ctx context.Context, req call, out interface{}) error {
	attempts := 1
	if req.method == http.MethodGet {
		attempts += c.readRetries
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = c.doOnce(ctx, req, out)
		if err == nil || !errors.Is(err, ErrUnavailable) || attempt == attempts {
			break
		}

		c.log.Warn("lobecaapi: %s attempt %d/%d failed: %v", req.operation, attempt, attempts, err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		case <-time.After(c.retryDelay * time.Duration(attempt)):
		}
	}

	if err != nil && errors.Is(err, ErrUnavailable) {
		c.log.Error("lobecaapi: %s %s failed: %v", req.method, req.path, err)
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, req call, out interface{}) error {
	start := time.Now()
	status := "error"
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveUpstream(req.operation, status, time.Since(start))
		}
	}()

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(data)
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)

	if err := statusError(resp); err != nil {
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// statusError сопоставляет статус-код ответа с ошибкой клиента
func statusError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusNotFound:
		sentinel = ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		sentinel = ErrConflict
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		sentinel = ErrUnauthorized
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
		sentinel = ErrValidation
	case resp.StatusCode >= http.StatusInternalServerError:
		sentinel = ErrUnavailable
	default:
		sentinel = ErrInvalidResponse
	}

	return fmt.Errorf("%w: status %d: %s", sentinel, resp.StatusCode, readErrorMessage(resp.Body))
}

func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var apiErr ErrorResponse
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return strings.TrimSpace(string(data))
}
