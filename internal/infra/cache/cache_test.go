package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/pkg/logger"
	"github.com/lobeca/lobeca-web/pkg/metrics"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis, *metrics.Metrics) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	m := metrics.NewWithRegisterer(prometheus.NewRegistry(), "test")
	return New(rdb, time.Minute, m, logger.Nop()), mr, m
}

func TestRemember_ReadThrough(t *testing.T) {
	c, mr, m := newTestCache(t)
	ctx := context.Background()

	calls := 0
	fetch := func(ctx context.Context) (*domain.Worker, error) {
		calls++
		return &domain.Worker{UUID: "w-1", Name: "João", Services: []domain.Service{{ID: 42, Name: "Corte"}}}, nil
	}

	first, err := Remember(ctx, c, ResourceWorker, WorkerKey("w-1"), fetch)
	require.NoError(t, err)
	second, err := Remember(ctx, c, ResourceWorker, WorkerKey("w-1"), fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists("worker:w-1"))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookupsTotal.WithLabelValues(ResourceWorker, "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookupsTotal.WithLabelValues(ResourceWorker, "miss")))

	mr.FastForward(2 * time.Minute)
	_, err = Remember(ctx, c, ResourceWorker, WorkerKey("w-1"), fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "expired entries are refetched")
}

func TestRemember_FetchErrorIsNotCached(t *testing.T) {
	c, mr, _ := newTestCache(t)
	errBoom := errors.New("boom")

	_, err := Remember(context.Background(), c, ResourceAppointment, AppointmentKey("u-1", "apt-1"),
		func(ctx context.Context) (*domain.Appointment, error) { return nil, errBoom })

	assert.ErrorIs(t, err, errBoom)
	assert.False(t, mr.Exists("appointment:u-1:apt-1"))
}

func TestRemember_RedisDownFallsBackToFetch(t *testing.T) {
	c, mr, _ := newTestCache(t)
	mr.Close()

	got, err := Remember(context.Background(), c, ResourceWorker, WorkerKey("w-1"),
		func(ctx context.Context) (string, error) { return "fresh", nil })

	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}

func TestRemember_NilCachePassesThrough(t *testing.T) {
	got, err := Remember(context.Background(), nil, ResourceWorker, WorkerKey("w-1"),
		func(ctx context.Context) (int, error) { return 7, nil })

	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestInvalidate_DeletesRuleKeysOnly(t *testing.T) {
	c, mr, _ := newTestCache(t)

	for _, k := range []string{
		"availability:w-1:2025-03-10",
		"availability:w-1:2025-03-11",
		"appointments:user:u-1",
		"appointment:u-1:apt-1",
		"worker:w-1",
	} {
		require.NoError(t, mr.Set(k, "{}"))
	}

	c.Invalidate(context.Background(), Mutation{
		Kind:       MutationCreate,
		WorkerUUID: "w-1",
		Date:       "2025-03-10",
		UserUUID:   "u-1",
	})

	assert.False(t, mr.Exists("availability:w-1:2025-03-10"))
	assert.False(t, mr.Exists("appointments:user:u-1"))
	assert.True(t, mr.Exists("availability:w-1:2025-03-11"))
	assert.True(t, mr.Exists("appointment:u-1:apt-1"))
	assert.True(t, mr.Exists("worker:w-1"))
}

func TestKeysFor(t *testing.T) {
	tests := []struct {
		name string
		m    Mutation
		want []string
	}{
		{
			name: "create",
			m:    Mutation{Kind: MutationCreate, WorkerUUID: "w-1", Date: "2025-03-10", UserUUID: "u-1"},
			want: []string{"appointments:user:u-1", "availability:w-1:2025-03-10"},
		},
		{
			name: "create by worker",
			m:    Mutation{Kind: MutationCreateByWorker, WorkerUUID: "w-1", Date: "2025-03-10", UserUUID: "w-1"},
			want: []string{"appointments:user:w-1", "availability:w-1:2025-03-10"},
		},
		{
			name: "update moves between days",
			m: Mutation{Kind: MutationUpdate, WorkerUUID: "w-1", Date: "2025-03-11", PreviousDate: "2025-03-10",
				UserUUID: "u-1", AppointmentUUID: "apt-1"},
			want: []string{"appointment:u-1:apt-1", "appointments:user:u-1", "availability:w-1:2025-03-10", "availability:w-1:2025-03-11"},
		},
		{
			name: "update on same day",
			m: Mutation{Kind: MutationUpdate, WorkerUUID: "w-1", Date: "2025-03-10", PreviousDate: "2025-03-10",
				UserUUID: "u-1", AppointmentUUID: "apt-1"},
			want: []string{"appointment:u-1:apt-1", "appointments:user:u-1", "availability:w-1:2025-03-10"},
		},
		{
			name: "delete",
			m:    Mutation{Kind: MutationDelete, WorkerUUID: "w-1", Date: "2025-03-10", UserUUID: "u-1", AppointmentUUID: "apt-1"},
			want: []string{"appointment:u-1:apt-1", "appointments:user:u-1", "availability:w-1:2025-03-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KeysFor(tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := KeysFor(Mutation{Kind: "rename"})
	assert.ErrorIs(t, err, ErrUnknownMutation)
}
