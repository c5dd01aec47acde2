package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/pkg/types"
)

const keyPrefix = "registration:pending:"

// record формат хранения в redis
type record struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	WorkerUUID      string    `json:"workerUUID"`
	ServiceID       int64     `json:"serviceID"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	AppointmentUUID string    `json:"appointmentUUID,omitempty"`
	ExistingAccount bool      `json:"existingAccount,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Store хранилище регистраций, ожидающих подтверждения OTP
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore создает хранилище; записи живут ttl
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Save сохраняет регистрацию. Если ID не задан, генерируется UUID.
func (s *Store) Save(ctx context.Context, p *domain.PendingRegistration) (*domain.PendingRegistration, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(record{
		ID:              p.ID,
		Name:            p.Name,
		Phone:           p.Phone,
		WorkerUUID:      p.WorkerUUID,
		ServiceID:       p.Selection.ServiceID,
		Date:            p.Selection.Date,
		Time:            p.Selection.Time.String(),
		AppointmentUUID: p.Selection.AppointmentUUID,
		ExistingAccount: p.ExistingAccount,
		CreatedAt:       p.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+p.ID, data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("%w: Save: %v", ErrStorage, err)
	}

	return p, nil
}

// Get получает регистрацию по ID
func (s *Store) Get(ctx context.Context, id string) (*domain.PendingRegistration, error) {
	data, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("%w: Get: %v", ErrStorage, err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &domain.PendingRegistration{
		ID:         r.ID,
		Name:       r.Name,
		Phone:      r.Phone,
		WorkerUUID: r.WorkerUUID,
		Selection: domain.Selection{
			ServiceID:       r.ServiceID,
			Date:            r.Date,
			Time:            types.TimeString(r.Time),
			AppointmentUUID: r.AppointmentUUID,
		},
		ExistingAccount: r.ExistingAccount,
		CreatedAt:       r.CreatedAt,
	}, nil
}

// Delete удаляет регистрацию после успешного подтверждения
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrStorage, err)
	}
	return nil
}
