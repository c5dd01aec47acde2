package complete_registration

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry читает claim exp из токена доступа без проверки подписи: ключ есть только у API
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
