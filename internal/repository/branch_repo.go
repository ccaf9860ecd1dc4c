package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"sonar-pr-decoration/internal/database"
	"sonar-pr-decoration/internal/domain"
)

// BranchRepository реализует чтение веток проекта из PostgreSQL.
type BranchRepository struct {
	queries *database.Queries
}

// NewBranchRepository создает новый экземпляр BranchRepository.
func NewBranchRepository(queries *database.Queries) domain.BranchRepository {
	return &BranchRepository{
		queries: queries,
	}
}

// SelectByProject возвращает все ветки проекта.
func (r *BranchRepository) SelectByProject(ctx context.Context, projectUUID string) ([]*domain.Branch, error) {
	dbBranches, err := r.queries.SelectBranchesByProject(ctx, projectUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to select branches by project: %w", err)
	}

	return toDomainBranches(dbBranches)
}

// SelectByUUIDs возвращает ветки по списку uuid одним запросом.
func (r *BranchRepository) SelectByUUIDs(ctx context.Context, uuids []string) ([]*domain.Branch, error) {
	if len(uuids) == 0 {
		return []*domain.Branch{}, nil
	}

	dbBranches, err := r.queries.SelectBranchesByUuids(ctx, uuids)
	if err != nil {
		return nil, fmt.Errorf("failed to select branches by uuids: %w", err)
	}

	return toDomainBranches(dbBranches)
}

func toDomainBranches(dbBranches []database.ProjectBranch) ([]*domain.Branch, error) {
	branches := make([]*domain.Branch, 0, len(dbBranches))
	for _, dbBranch := range dbBranches {
		branch := &domain.Branch{
			UUID:            dbBranch.Uuid,
			ProjectUUID:     dbBranch.ProjectUuid,
			Key:             dbBranch.Kee,
			Type:            domain.BranchType(dbBranch.BranchType),
			IsMain:          dbBranch.IsMain,
			MergeBranchUUID: dbBranch.MergeBranchUuid.String,
		}

		// Метаданные пул-реквеста хранятся в JSONB и могут отсутствовать
		if len(dbBranch.PullRequestData) > 0 {
			var data domain.PullRequestData
			if err := json.Unmarshal(dbBranch.PullRequestData, &data); err != nil {
				return nil, fmt.Errorf("failed to decode pull request data of branch %s: %w", dbBranch.Uuid, err)
			}
			branch.PullRequestData = &data
		}

		branches = append(branches, branch)
	}

	return branches, nil
}
