package logout

import (
	"context"
	"net/http"
)

type SessionRepository interface {
	Delete(ctx context.Context, id string) error
}

type SessionCookie interface {
	ID(r *http.Request) (string, bool)
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
