package mocks

import (
	"context"

	"sonar-pr-decoration/internal/domain"

	"github.com/stretchr/testify/mock"
)

// PRUseCase мок domain.PRUseCase.
type PRUseCase struct {
	mock.Mock
}

func (m *PRUseCase) ListPullRequests(ctx context.Context, session domain.UserSession, projectKey string) ([]*domain.PullRequestSummary, error) {
	args := m.Called(ctx, session, projectKey)
	if prs := args.Get(0); prs != nil {
		return prs.([]*domain.PullRequestSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

// WorkerCountProvider мок domain.WorkerCountProvider.
type WorkerCountProvider struct {
	mock.Mock
}

func (m *WorkerCountProvider) Get() int {
	return m.Called().Int(0)
}

// UserSession мок domain.UserSession.
type UserSession struct {
	mock.Mock
}

func (m *UserSession) Login() string {
	return m.Called().String(0)
}

func (m *UserSession) IsLoggedIn() bool {
	return m.Called().Bool(0)
}

func (m *UserSession) HasPermission(permission string) bool {
	return m.Called(permission).Bool(0)
}

func (m *UserSession) HasEntityPermission(permission string, project *domain.Project) bool {
	return m.Called(permission, project).Bool(0)
}

// Authenticator мок handler.Authenticator.
type Authenticator struct {
	mock.Mock
}

func (m *Authenticator) FromToken(ctx context.Context, token string) (domain.UserSession, error) {
	args := m.Called(ctx, token)
	if s := args.Get(0); s != nil {
		return s.(domain.UserSession), args.Error(1)
	}
	return nil, args.Error(1)
}
