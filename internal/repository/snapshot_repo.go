package repository

import (
	"context"
	"fmt"
	"time"

	"sonar-pr-decoration/internal/database"
	"sonar-pr-decoration/internal/domain"
)

// SnapshotRepository реализует domain.SnapshotRepository.
type SnapshotRepository struct {
	queries *database.Queries
}

// NewSnapshotRepository создает новый экземпляр SnapshotRepository.
func NewSnapshotRepository(queries *database.Queries) domain.SnapshotRepository {
	return &SnapshotRepository{
		queries: queries,
	}
}

// SelectLastAnalysesByRootComponentUUIDs возвращает последние успешные анализы компонентов.
func (r *SnapshotRepository) SelectLastAnalysesByRootComponentUUIDs(ctx context.Context, rootComponentUUIDs []string) ([]*domain.Snapshot, error) {
	if len(rootComponentUUIDs) == 0 {
		return []*domain.Snapshot{}, nil
	}

	dbSnapshots, err := r.queries.SelectLastAnalysesByRootComponentUuids(ctx, rootComponentUUIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to select last analyses: %w", err)
	}

	result := make([]*domain.Snapshot, len(dbSnapshots))
	for i, s := range dbSnapshots {
		result[i] = &domain.Snapshot{
			UUID:              s.Uuid,
			RootComponentUUID: s.RootComponentUuid,
			CreatedAt:         time.UnixMilli(s.CreatedAt),
		}
	}

	return result, nil
}
