package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sonar-pr-decoration/internal/database"
	"sonar-pr-decoration/internal/domain"
)

// ProjectRepository реализует domain.ComponentFinder поверх PostgreSQL.
type ProjectRepository struct {
	queries *database.Queries
}

// NewProjectRepository создает новый экземпляр ProjectRepository.
func NewProjectRepository(queries *database.Queries) domain.ComponentFinder {
	return &ProjectRepository{
		queries: queries,
	}
}

// GetProjectByKey возвращает проект по ключу.
func (r *ProjectRepository) GetProjectByKey(ctx context.Context, projectKey string) (*domain.Project, error) {
	dbProject, err := r.queries.GetProjectByKey(ctx, projectKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project '%s': %w", projectKey, domain.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &domain.Project{
		UUID:      dbProject.Uuid,
		Key:       dbProject.Kee,
		Name:      dbProject.Name,
		Qualifier: dbProject.Qualifier,
		Private:   dbProject.Private,
	}, nil
}
