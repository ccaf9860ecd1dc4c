package domain

import "context"

// PRUseCase определяет бизнес-логику для работы с Pull Request'ами.
type PRUseCase interface {
	ListPullRequests(ctx context.Context, session UserSession, projectKey string) ([]*PullRequestSummary, error)
}

// WorkerCountProvider определяет число фоновых воркеров.
type WorkerCountProvider interface {
	Get() int
}

// Configuration источник настроек ключ-значение.
type Configuration interface {
	GetInt(key string) (int, bool)
}
