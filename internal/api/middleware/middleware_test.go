package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobeca/lobeca-web/internal/domain"
	sessionRepo "github.com/lobeca/lobeca-web/internal/infra/storage/session"
	"github.com/lobeca/lobeca-web/pkg/logger"
	"github.com/lobeca/lobeca-web/pkg/metrics"
)

const sessionID = "6f1f5c1e-8a4b-4a51-9d7e-2b8f3c1d9e01"

type fakeSessions struct {
	session *domain.Session
	err     error
	calls   int
}

func (f *fakeSessions) GetActive(_ context.Context, id string, _ time.Time) (*domain.Session, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.session == nil || f.session.ID != id {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return f.session, nil
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry(), "test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/book/{workerUUID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/book/w-1", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/book/{workerUUID}", "404")))
}

func TestSession_LoadsActiveSession(t *testing.T) {
	repo := &fakeSessions{session: &domain.Session{ID: sessionID, UserUUID: "u-1"}}
	cookie := SessionCookie{Name: "lobeca_session"}

	var got *domain.Session
	h := Session(repo, cookie, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSession(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lobeca_session", Value: sessionID})
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.UserUUID)
}

func TestSession_UnknownSessionClearsCookie(t *testing.T) {
	repo := &fakeSessions{}
	cookie := SessionCookie{Name: "lobeca_session"}

	var got *domain.Session
	h := Session(repo, cookie, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSession(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lobeca_session", Value: sessionID})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Nil(t, got)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}

func TestSession_MalformedCookieSkipsLookup(t *testing.T) {
	repo := &fakeSessions{}
	h := Session(repo, SessionCookie{Name: "lobeca_session"}, logger.Nop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lobeca_session", Value: "' OR 1=1"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 0, repo.calls)
}

func TestSession_StoreErrorKeepsRequestAnonymous(t *testing.T) {
	repo := &fakeSessions{err: errors.New("connection refused")}

	called := false
	h := Session(repo, SessionCookie{Name: "lobeca_session"}, logger.Nop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Nil(t, GetSession(r.Context()))
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lobeca_session", Value: sessionID})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Empty(t, rec.Result().Cookies())
}

func TestRecover(t *testing.T) {
	h := Recover(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
