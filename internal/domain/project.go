package domain

import "context"

// Qualifier проекта верхнего уровня.
const QualifierProject = "TRK"

// Project представляет проект, к которому относятся ветки и пул-реквесты.
type Project struct {
	UUID      string
	Key       string
	Name      string
	Qualifier string
	Private   bool
}

// ComponentFinder определяет контракт поиска проекта по ключу.
// Если проект не найден, возвращается ErrProjectNotFound.
type ComponentFinder interface {
	GetProjectByKey(ctx context.Context, projectKey string) (*Project, error)
}
