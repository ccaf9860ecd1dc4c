package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sonar-pr-decoration/internal/database"
	"sonar-pr-decoration/internal/domain"
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	queries *database.Queries
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(queries *database.Queries) domain.UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

// GetByTokenHash возвращает пользователя и токен по хэшу токена.
func (r *UserRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.User, *domain.UserToken, error) {
	row, err := r.queries.GetUserByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to get user by token: %w", err)
	}

	// Конвертируем NullInt64 → *time.Time
	var expiration *time.Time
	if row.ExpirationDate.Valid {
		t := time.UnixMilli(row.ExpirationDate.Int64)
		expiration = &t
	}

	user := &domain.User{
		UUID:     row.Uuid,
		Login:    row.Login,
		Name:     row.Name,
		IsActive: row.Active,
	}
	token := &domain.UserToken{
		UUID:           row.TokenUuid,
		UserUUID:       row.Uuid,
		Name:           row.TokenName,
		ExpirationDate: expiration,
	}

	return user, token, nil
}
