package usecase

import (
	"context"
	"fmt"

	"sonar-pr-decoration/internal/domain"
)

// BranchLookup загружает ветки по списку uuid одним запросом.
type BranchLookup func(ctx context.Context, uuids []string) ([]*domain.Branch, error)

// PRUseCase реализует бизнес-логику для работы с Pull Request'ами.
type PRUseCase struct {
	componentFinder domain.ComponentFinder
	branchRepo      domain.BranchRepository
	measureRepo     domain.MeasureRepository
	snapshotRepo    domain.SnapshotRepository
}

// NewPRUseCase создает новый экземпляр PRUseCase.
func NewPRUseCase(
	componentFinder domain.ComponentFinder,
	branchRepo domain.BranchRepository,
	measureRepo domain.MeasureRepository,
	snapshotRepo domain.SnapshotRepository,
) domain.PRUseCase {
	return &PRUseCase{
		componentFinder: componentFinder,
		branchRepo:      branchRepo,
		measureRepo:     measureRepo,
		snapshotRepo:    snapshotRepo,
	}
}

// ListPullRequests возвращает пул-реквесты проекта с базовой веткой, статусом quality gate
// и датой последнего анализа. Порядок совпадает с порядком, который вернуло хранилище.
func (uc *PRUseCase) ListPullRequests(ctx context.Context, session domain.UserSession, projectKey string) ([]*domain.PullRequestSummary, error) {
	// 1. Находим проект
	project, err := uc.componentFinder.GetProjectByKey(ctx, projectKey)
	if err != nil {
		return nil, err
	}

	// 2. Проверяем права до любых запросов к веткам
	if !canBrowse(session, project) {
		return nil, domain.ErrForbidden
	}

	// 3. Получаем ветки проекта и оставляем только пул-реквесты
	branches, err := uc.branchRepo.SelectByProject(ctx, project.UUID)
	if err != nil {
		return nil, fmt.Errorf("failed to select project branches: %w", err)
	}

	pullRequests := filterPullRequests(branches)
	if len(pullRequests) == 0 {
		return []*domain.PullRequestSummary{}, nil
	}

	// 4. Разрешаем целевые ветки
	bases, err := ResolveBases(ctx, pullRequests, uc.branchRepo.SelectByUUIDs)
	if err != nil {
		return nil, err
	}

	uuids := make([]string, len(pullRequests))
	for i, pr := range pullRequests {
		uuids[i] = pr.UUID
	}

	// 5. Статусы quality gate
	measures, err := uc.measureRepo.SelectByComponentUUIDsAndMetricKeys(ctx, uuids, []string{domain.AlertStatusKey})
	if err != nil {
		return nil, fmt.Errorf("failed to select quality gate measures: %w", err)
	}
	qualityGates := make(map[string]string, len(measures))
	for _, m := range measures {
		if value, ok := m.Value(domain.AlertStatusKey); ok {
			qualityGates[m.ComponentUUID] = value
		}
	}

	// 6. Даты последних анализов
	snapshots, err := uc.snapshotRepo.SelectLastAnalysesByRootComponentUUIDs(ctx, uuids)
	if err != nil {
		return nil, fmt.Errorf("failed to select last analyses: %w", err)
	}
	analyses := make(map[string]*domain.Snapshot, len(snapshots))
	for _, s := range snapshots {
		analyses[s.RootComponentUUID] = s
	}

	// 7. Собираем результат
	result := make([]*domain.PullRequestSummary, 0, len(pullRequests))
	for _, pr := range pullRequests {
		result = append(result, toSummary(pr, bases, qualityGates, analyses))
	}

	return result, nil
}

// ResolveBases собирает уникальные uuid целевых веток, загружает их одним вызовом lookup
// и возвращает соответствие uuid -> ключ ветки. Ненайденные uuid в результат не попадают.
func ResolveBases(ctx context.Context, pullRequests []*domain.Branch, lookup BranchLookup) (map[string]string, error) {
	seen := make(map[string]struct{}, len(pullRequests))
	uuids := make([]string, 0, len(pullRequests))
	for _, pr := range pullRequests {
		if pr.MergeBranchUUID == "" {
			continue
		}
		if _, ok := seen[pr.MergeBranchUUID]; ok {
			continue
		}
		seen[pr.MergeBranchUUID] = struct{}{}
		uuids = append(uuids, pr.MergeBranchUUID)
	}

	bases := make(map[string]string, len(uuids))
	if len(uuids) == 0 {
		return bases, nil
	}

	branches, err := lookup(ctx, uuids)
	if err != nil {
		return nil, fmt.Errorf("failed to select merge branches: %w", err)
	}
	for _, b := range branches {
		bases[b.UUID] = b.Key
	}

	return bases, nil
}

func filterPullRequests(branches []*domain.Branch) []*domain.Branch {
	result := make([]*domain.Branch, 0, len(branches))
	for _, b := range branches {
		if b.IsPullRequest() {
			result = append(result, b)
		}
	}
	return result
}

func toSummary(
	pr *domain.Branch,
	bases map[string]string,
	qualityGates map[string]string,
	analyses map[string]*domain.Snapshot,
) *domain.PullRequestSummary {
	summary := &domain.PullRequestSummary{Key: pr.Key}

	data := pr.PullRequestData
	if data == nil {
		data = &domain.PullRequestData{}
	}
	summary.Title = data.Title
	summary.Branch = data.Branch
	summary.URL = data.URL

	// У осиротевшего пул-реквеста base и target остаются пустыми
	if base, ok := bases[pr.MergeBranchUUID]; ok {
		summary.Base = base
		summary.Target = base
		if data.Target != "" {
			summary.Target = data.Target
		}
	} else {
		summary.IsOrphan = true
	}

	if status, ok := qualityGates[pr.UUID]; ok {
		summary.QualityGateStatus = status
	} else if snapshot, ok := analyses[pr.UUID]; ok {
		createdAt := snapshot.CreatedAt
		summary.AnalysisDate = &createdAt
	}

	return summary
}

// canBrowse разрешает просмотр пул-реквестов пользователям проекта и анализаторам.
func canBrowse(session domain.UserSession, project *domain.Project) bool {
	return session.HasEntityPermission(domain.ProjectPermissionUser, project) ||
		session.HasEntityPermission(domain.ProjectPermissionScan, project) ||
		session.HasPermission(domain.GlobalPermissionScan)
}
