package session

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"sonar-pr-decoration/internal/domain"
)

// Factory создает сессии пользователей по токенам.
type Factory struct {
	userRepo       domain.UserRepository
	permissionRepo domain.PermissionRepository
	now            func() time.Time
}

// NewFactory создает новый экземпляр Factory.
func NewFactory(userRepo domain.UserRepository, permissionRepo domain.PermissionRepository) *Factory {
	return &Factory{
		userRepo:       userRepo,
		permissionRepo: permissionRepo,
		now:            time.Now,
	}
}

// HashToken возвращает SHA-384 хэш токена в hex, в таком виде токены хранятся в базе.
func HashToken(token string) string {
	sum := sha512.Sum384([]byte(token))
	return hex.EncodeToString(sum[:])
}

// FromToken аутентифицирует пользователя по токену и загружает его разрешения.
// Неизвестный, просроченный токен или неактивный пользователь дают ErrUnauthorized.
func (f *Factory) FromToken(ctx context.Context, token string) (domain.UserSession, error) {
	// 1. Ищем токен
	user, userToken, err := f.userRepo.GetByTokenHash(ctx, HashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to authenticate token: %w", err)
	}

	// 2. Проверяем срок действия и активность
	if userToken.IsExpired(f.now()) || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	// 3. Загружаем разрешения
	roles, err := f.permissionRepo.SelectRoles(ctx, user.UUID)
	if err != nil {
		return nil, fmt.Errorf("failed to load permissions of %s: %w", user.Login, err)
	}

	return NewUserSession(user, roles), nil
}
