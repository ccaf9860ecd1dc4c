// Package mocks содержит testify-моки контрактов domain.
package mocks

import (
	"context"

	"sonar-pr-decoration/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ComponentFinder мок domain.ComponentFinder.
type ComponentFinder struct {
	mock.Mock
}

func (m *ComponentFinder) GetProjectByKey(ctx context.Context, projectKey string) (*domain.Project, error) {
	args := m.Called(ctx, projectKey)
	if project := args.Get(0); project != nil {
		return project.(*domain.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

// BranchRepository мок domain.BranchRepository.
type BranchRepository struct {
	mock.Mock
}

func (m *BranchRepository) SelectByProject(ctx context.Context, projectUUID string) ([]*domain.Branch, error) {
	args := m.Called(ctx, projectUUID)
	if branches := args.Get(0); branches != nil {
		return branches.([]*domain.Branch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BranchRepository) SelectByUUIDs(ctx context.Context, uuids []string) ([]*domain.Branch, error) {
	args := m.Called(ctx, uuids)
	if branches := args.Get(0); branches != nil {
		return branches.([]*domain.Branch), args.Error(1)
	}
	return nil, args.Error(1)
}

// MeasureRepository мок domain.MeasureRepository.
type MeasureRepository struct {
	mock.Mock
}

func (m *MeasureRepository) SelectByComponentUUIDsAndMetricKeys(ctx context.Context, componentUUIDs []string, metricKeys []string) ([]*domain.Measure, error) {
	args := m.Called(ctx, componentUUIDs, metricKeys)
	if measures := args.Get(0); measures != nil {
		return measures.([]*domain.Measure), args.Error(1)
	}
	return nil, args.Error(1)
}

// SnapshotRepository мок domain.SnapshotRepository.
type SnapshotRepository struct {
	mock.Mock
}

func (m *SnapshotRepository) SelectLastAnalysesByRootComponentUUIDs(ctx context.Context, rootComponentUUIDs []string) ([]*domain.Snapshot, error) {
	args := m.Called(ctx, rootComponentUUIDs)
	if snapshots := args.Get(0); snapshots != nil {
		return snapshots.([]*domain.Snapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

// UserRepository мок domain.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.User, *domain.UserToken, error) {
	args := m.Called(ctx, tokenHash)
	var (
		user  *domain.User
		token *domain.UserToken
	)
	if u := args.Get(0); u != nil {
		user = u.(*domain.User)
	}
	if t := args.Get(1); t != nil {
		token = t.(*domain.UserToken)
	}
	return user, token, args.Error(2)
}

// PermissionRepository мок domain.PermissionRepository.
type PermissionRepository struct {
	mock.Mock
}

func (m *PermissionRepository) SelectRoles(ctx context.Context, userUUID string) ([]domain.Role, error) {
	args := m.Called(ctx, userUUID)
	if roles := args.Get(0); roles != nil {
		return roles.([]domain.Role), args.Error(1)
	}
	return nil, args.Error(1)
}
