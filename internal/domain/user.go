package domain

import (
	"context"
	"time"
)

// Глобальные разрешения.
const (
	GlobalPermissionAdmin = "admin"
	GlobalPermissionScan  = "scan"
)

// Разрешения на проект.
const (
	ProjectPermissionUser       = "user"
	ProjectPermissionCodeViewer = "codeviewer"
	ProjectPermissionAdmin      = "admin"
	ProjectPermissionScan       = "scan"
)

// User представляет сущность пользователя в системе.
type User struct {
	UUID     string
	Login    string
	Name     string
	IsActive bool
}

// UserToken токен пользователя, которым аутентифицируются запросы.
type UserToken struct {
	UUID           string
	UserUUID       string
	Name           string
	ExpirationDate *time.Time
}

// IsExpired сообщает, истек ли срок действия токена на момент now.
func (t *UserToken) IsExpired(now time.Time) bool {
	return t.ExpirationDate != nil && !now.Before(*t.ExpirationDate)
}

// Role выданное разрешение. Пустой EntityUUID означает глобальное разрешение.
type Role struct {
	Permission string
	EntityUUID string
}

// UserSession сессия текущего пользователя запроса.
type UserSession interface {
	Login() string
	IsLoggedIn() bool
	HasPermission(permission string) bool
	HasEntityPermission(permission string, project *Project) bool
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	GetByTokenHash(ctx context.Context, tokenHash string) (*User, *UserToken, error)
}

// PermissionRepository определяет контракт чтения разрешений пользователя.
type PermissionRepository interface {
	SelectRoles(ctx context.Context, userUUID string) ([]Role, error)
}
