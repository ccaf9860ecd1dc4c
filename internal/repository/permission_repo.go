package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"sonar-pr-decoration/internal/domain"
)

// PermissionRepository читает разрешения пользователя: выданные напрямую и через группы.
type PermissionRepository struct {
	db      *sql.DB
	builder squirrel.StatementBuilderType
}

// NewPermissionRepository создает новый экземпляр PermissionRepository.
func NewPermissionRepository(db *sql.DB) domain.PermissionRepository {
	return &PermissionRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// SelectRoles возвращает все глобальные и проектные разрешения пользователя.
func (r *PermissionRepository) SelectRoles(ctx context.Context, userUUID string) ([]domain.Role, error) {
	direct := r.builder.
		Select("role", "entity_uuid").
		From("user_roles").
		Where(squirrel.Eq{"user_uuid": userUUID})

	roles, err := r.queryRoles(ctx, direct)
	if err != nil {
		return nil, fmt.Errorf("failed to select user roles: %w", err)
	}

	viaGroups := r.builder.
		Select("gr.role", "gr.entity_uuid").
		From("group_roles gr").
		Join("groups_users gu ON gu.group_uuid = gr.group_uuid").
		Where(squirrel.Eq{"gu.user_uuid": userUUID})

	groupRoles, err := r.queryRoles(ctx, viaGroups)
	if err != nil {
		return nil, fmt.Errorf("failed to select group roles: %w", err)
	}

	return append(roles, groupRoles...), nil
}

func (r *PermissionRepository) queryRoles(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Role, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var (
			role       string
			entityUUID sql.NullString
		)
		if err := rows.Scan(&role, &entityUUID); err != nil {
			return nil, err
		}
		roles = append(roles, domain.Role{Permission: role, EntityUUID: entityUUID.String})
	}

	return roles, rows.Err()
}
