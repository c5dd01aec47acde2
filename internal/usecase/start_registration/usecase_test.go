package start_registration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/pkg/logger"
	"github.com/lobeca/lobeca-web/pkg/ratelimit"
)

type fakeClient struct {
	err        error
	loginErr   error
	phones     []string
	loginCodes []string
}

func (f *fakeClient) Register(ctx context.Context, name, phone string) error {
	f.phones = append(f.phones, phone)
	return f.err
}

func (f *fakeClient) SendLoginCode(ctx context.Context, phone string) error {
	f.loginCodes = append(f.loginCodes, phone)
	return f.loginErr
}

type fakeStore struct {
	saved *domain.PendingRegistration
}

func (f *fakeStore) Save(ctx context.Context, p *domain.PendingRegistration) (*domain.PendingRegistration, error) {
	p.ID = "reg-1"
	f.saved = p
	return p, nil
}

func intent() domain.Selection {
	return domain.Selection{ServiceID: 42, Date: "2025-03-10", Time: "14:30"}
}

func TestUseCase_SavesIntentAndSendsCode(t *testing.T) {
	client := &fakeClient{}
	store := &fakeStore{}
	uc := NewUseCase(client, store, ratelimit.New(3, 3), "BR", logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{
		WorkerUUID: "w-1",
		Name:       "  Maria   Silva ",
		Phone:      "(11) 98765-4321",
		Selection:  intent(),
	})
	require.NoError(t, err)

	assert.Equal(t, "reg-1", resp.RegistrationID)
	assert.Equal(t, "**********4321", resp.MaskedPhone)
	assert.Equal(t, []string{"+5511987654321"}, client.phones)

	require.NotNil(t, store.saved)
	assert.Equal(t, "Maria Silva", store.saved.Name)
	assert.Equal(t, intent(), store.saved.Selection)
	assert.Equal(t, "w-1", store.saved.WorkerUUID)
}

func TestUseCase_ValidationHappensBeforeAnyRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"short name", &Request{WorkerUUID: "w-1", Name: "M", Phone: "11987654321", Selection: intent()}, ErrInvalidName},
		{"bad phone", &Request{WorkerUUID: "w-1", Name: "Maria", Phone: "123", Selection: intent()}, ErrInvalidPhone},
		{"no time", &Request{WorkerUUID: "w-1", Name: "Maria", Phone: "11987654321",
			Selection: domain.Selection{ServiceID: 42, Date: "2025-03-10"}}, ErrIncompleteSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			uc := NewUseCase(client, &fakeStore{}, ratelimit.New(3, 3), "BR", logger.Nop())

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, client.phones)
		})
	}
}

func TestUseCase_RateLimited(t *testing.T) {
	client := &fakeClient{}
	uc := NewUseCase(client, &fakeStore{}, ratelimit.New(1, 1), "BR", logger.Nop())
	req := &Request{WorkerUUID: "w-1", Name: "Maria", Phone: "+55 11 98765-4321", Selection: intent()}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.Len(t, client.phones, 1)
}

func TestUseCase_AlreadyRegisteredSendsLoginCode(t *testing.T) {
	client := &fakeClient{err: lobecaapi.ErrConflict}
	store := &fakeStore{}
	uc := NewUseCase(client, store, ratelimit.New(3, 3), "BR", logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{WorkerUUID: "w-1", Name: "Maria", Phone: "11987654321", Selection: intent()})
	require.NoError(t, err)

	assert.True(t, resp.ExistingAccount)
	assert.Equal(t, "reg-1", resp.RegistrationID)
	assert.Equal(t, []string{"+5511987654321"}, client.loginCodes)

	require.NotNil(t, store.saved)
	assert.True(t, store.saved.ExistingAccount)
	assert.Equal(t, intent(), store.saved.Selection)
}

func TestUseCase_LoginCodeFailure(t *testing.T) {
	store := &fakeStore{}
	client := &fakeClient{err: lobecaapi.ErrConflict, loginErr: lobecaapi.ErrUnavailable}
	uc := NewUseCase(client, store, ratelimit.New(3, 3), "BR", logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{WorkerUUID: "w-1", Name: "Maria", Phone: "11987654321", Selection: intent()})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, store.saved)
}
