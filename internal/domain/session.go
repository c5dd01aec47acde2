package domain

import "time"

// Role роль пользователя на платформе
type Role string

const (
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
	RoleOwner    Role = "owner"
)

// Session аутентифицированная сессия браузера.
// Передаётся в use cases явно; nil означает анонимного посетителя.
type Session struct {
	ID          string
	UserUUID    string
	Name        string
	Phone       string
	Role        Role
	AccessToken string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// IsAuthenticated проверяет, что сессия существует и не истекла
func (s *Session) IsAuthenticated(now time.Time) bool {
	return s != nil && s.AccessToken != "" && s.UserUUID != "" && now.Before(s.ExpiresAt)
}

// CanBookForCustomers возвращает true для мастеров и владельцев
func (s *Session) CanBookForCustomers() bool {
	return s != nil && (s.Role == RoleWorker || s.Role == RoleOwner)
}
