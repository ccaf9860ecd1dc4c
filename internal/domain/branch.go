package domain

import "context"

// BranchType тип ветки анализа.
type BranchType string

const (
	BranchTypeBranch      BranchType = "BRANCH"
	BranchTypePullRequest BranchType = "PULL_REQUEST"
)

// PullRequestData метаданные пул-реквеста, полученные от ALM/CI провайдера.
type PullRequestData struct {
	Branch     string            `json:"branch,omitempty"`
	Title      string            `json:"title,omitempty"`
	Target     string            `json:"target,omitempty"`
	URL        string            `json:"url,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Branch представляет ветку проекта: долгоживущую ветку или пул-реквест.
type Branch struct {
	UUID            string
	ProjectUUID     string
	Key             string
	Type            BranchType
	IsMain          bool
	MergeBranchUUID string
	PullRequestData *PullRequestData
}

// IsPullRequest сообщает, является ли ветка пул-реквестом.
func (b *Branch) IsPullRequest() bool {
	return b.Type == BranchTypePullRequest
}

// BranchRepository определяет контракт для чтения веток проекта.
type BranchRepository interface {
	SelectByProject(ctx context.Context, projectUUID string) ([]*Branch, error)
	SelectByUUIDs(ctx context.Context, uuids []string) ([]*Branch, error)
}
