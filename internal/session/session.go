// Package session реализует сессию пользователя web-запроса.
package session

import "sonar-pr-decoration/internal/domain"

// UserSession хранит пользователя и его разрешения, загруженные при аутентификации.
type UserSession struct {
	user               *domain.User
	globalPermissions  map[string]struct{}
	projectPermissions map[string]map[string]struct{}
}

// Anonymous возвращает сессию без пользователя и разрешений.
func Anonymous() *UserSession {
	return &UserSession{
		globalPermissions:  map[string]struct{}{},
		projectPermissions: map[string]map[string]struct{}{},
	}
}

// NewUserSession создает сессию пользователя с указанными разрешениями.
func NewUserSession(user *domain.User, roles []domain.Role) *UserSession {
	s := Anonymous()
	s.user = user

	for _, role := range roles {
		if role.EntityUUID == "" {
			s.globalPermissions[role.Permission] = struct{}{}
			continue
		}
		perms, ok := s.projectPermissions[role.EntityUUID]
		if !ok {
			perms = map[string]struct{}{}
			s.projectPermissions[role.EntityUUID] = perms
		}
		perms[role.Permission] = struct{}{}
	}

	return s
}

func (s *UserSession) Login() string {
	if s.user == nil {
		return ""
	}
	return s.user.Login
}

func (s *UserSession) IsLoggedIn() bool {
	return s.user != nil
}

// HasPermission проверяет глобальное разрешение.
func (s *UserSession) HasPermission(permission string) bool {
	_, ok := s.globalPermissions[permission]
	return ok
}

// HasEntityPermission проверяет разрешение на проект.
// Публичные проекты доступны на чтение всем, включая анонимных пользователей.
func (s *UserSession) HasEntityPermission(permission string, project *domain.Project) bool {
	if project == nil {
		return false
	}
	if !project.Private && isPublicPermission(permission) {
		return true
	}
	_, ok := s.projectPermissions[project.UUID][permission]
	return ok
}

func isPublicPermission(permission string) bool {
	return permission == domain.ProjectPermissionUser || permission == domain.ProjectPermissionCodeViewer
}
