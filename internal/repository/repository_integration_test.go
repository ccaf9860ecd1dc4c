package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"sonar-pr-decoration/internal/database"
	"sonar-pr-decoration/internal/domain"
	"sonar-pr-decoration/internal/repository"
	"sonar-pr-decoration/internal/session"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *sql.DB
	queries  *database.Queries
	ctx      context.Context
}

func TestRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	suite.Run(t, new(RepositoryTestSuite))
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Skipf("docker is not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		suite.T().Skipf("docker is not available: %v", err)
	}
	suite.pool = pool

	suite.resource, err = pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=password",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=sonar_pr_decoration_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	suite.Require().NoError(err)
	_ = suite.resource.Expire(120)

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		"postgres", "password", "localhost", suite.resource.GetPort("5432/tcp"), "sonar_pr_decoration_test",
	)

	pool.MaxWait = time.Minute
	suite.Require().NoError(pool.Retry(func() error {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return err
		}
		suite.db = db
		return nil
	}))

	suite.Require().NoError(database.MigrateDB(suite.db))
	suite.queries = database.New(suite.db)
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close()
	}
	if suite.pool != nil && suite.resource != nil {
		_ = suite.pool.Purge(suite.resource)
	}
}

func (suite *RepositoryTestSuite) TearDownTest() {
	tables := []string{
		"group_roles", "groups_users", "user_roles", "user_tokens", "users",
		"snapshots", "measures", "project_branches", "projects",
	}
	for _, table := range tables {
		_, err := suite.db.ExecContext(suite.ctx, fmt.Sprintf("DELETE FROM %s", table))
		suite.Require().NoError(err)
	}
}

func (suite *RepositoryTestSuite) insertProject(key string, private bool) string {
	projectUUID := uuid.NewString()
	err := suite.queries.InsertProject(suite.ctx, database.InsertProjectParams{
		Uuid:      projectUUID,
		Kee:       key,
		Name:      key,
		Qualifier: domain.QualifierProject,
		Private:   private,
	})
	suite.Require().NoError(err)
	return projectUUID
}

func (suite *RepositoryTestSuite) insertBranch(params database.InsertBranchParams) {
	suite.Require().NoError(suite.queries.InsertBranch(suite.ctx, params))
}

func (suite *RepositoryTestSuite) TestProjectRepository_GetProjectByKey() {
	projectUUID := suite.insertProject("my-project", true)
	repo := repository.NewProjectRepository(suite.queries)

	project, err := repo.GetProjectByKey(suite.ctx, "my-project")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), projectUUID, project.UUID)
	assert.True(suite.T(), project.Private)

	_, err = repo.GetProjectByKey(suite.ctx, "unknown")
	assert.ErrorIs(suite.T(), err, domain.ErrProjectNotFound)
}

func (suite *RepositoryTestSuite) TestBranchRepository() {
	projectUUID := suite.insertProject("my-project", true)
	mainUUID := uuid.NewString()
	prUUID := uuid.NewString()

	suite.insertBranch(database.InsertBranchParams{
		Uuid:        mainUUID,
		ProjectUuid: projectUUID,
		Kee:         "main",
		BranchType:  string(domain.BranchTypeBranch),
		IsMain:      true,
	})
	suite.insertBranch(database.InsertBranchParams{
		Uuid:            prUUID,
		ProjectUuid:     projectUUID,
		Kee:             "42",
		BranchType:      string(domain.BranchTypePullRequest),
		MergeBranchUuid: sql.NullString{String: mainUUID, Valid: true},
		PullRequestData: []byte(`{"branch":"feature/x","title":"Add x","target":"main","url":"https://scm/pr/42"}`),
	})

	repo := repository.NewBranchRepository(suite.queries)

	branches, err := repo.SelectByProject(suite.ctx, projectUUID)
	suite.Require().NoError(err)
	suite.Require().Len(branches, 2)

	pr := branches[0]
	assert.Equal(suite.T(), "42", pr.Key)
	assert.True(suite.T(), pr.IsPullRequest())
	assert.Equal(suite.T(), mainUUID, pr.MergeBranchUUID)
	suite.Require().NotNil(pr.PullRequestData)
	assert.Equal(suite.T(), "Add x", pr.PullRequestData.Title)
	assert.Equal(suite.T(), "feature/x", pr.PullRequestData.Branch)
	assert.Nil(suite.T(), branches[1].PullRequestData)

	byUUID, err := repo.SelectByUUIDs(suite.ctx, []string{mainUUID, "missing"})
	suite.Require().NoError(err)
	suite.Require().Len(byUUID, 1)
	assert.Equal(suite.T(), "main", byUUID[0].Key)

	empty, err := repo.SelectByUUIDs(suite.ctx, nil)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), empty)
}

func (suite *RepositoryTestSuite) TestMeasureAndSnapshotRepositories() {
	projectUUID := suite.insertProject("my-project", true)
	suite.insertBranch(database.InsertBranchParams{Uuid: "pr1", ProjectUuid: projectUUID, Kee: "1", BranchType: string(domain.BranchTypePullRequest)})
	suite.insertBranch(database.InsertBranchParams{Uuid: "pr2", ProjectUuid: projectUUID, Kee: "2", BranchType: string(domain.BranchTypePullRequest)})

	suite.Require().NoError(suite.queries.UpsertMeasure(suite.ctx, database.UpsertMeasureParams{
		ComponentUuid: "pr1",
		BranchUuid:    "pr1",
		JsonValue:     []byte(`{"alert_status":"OK","coverage":81.5}`),
	}))
	suite.Require().NoError(suite.queries.UpsertMeasure(suite.ctx, database.UpsertMeasureParams{
		ComponentUuid: "pr2",
		BranchUuid:    "pr2",
		JsonValue:     []byte(`{"coverage":12}`),
	}))

	measures, err := repository.NewMeasureRepository(suite.queries).
		SelectByComponentUUIDsAndMetricKeys(suite.ctx, []string{"pr1", "pr2"}, []string{domain.AlertStatusKey})
	suite.Require().NoError(err)
	suite.Require().Len(measures, 1)
	value, ok := measures[0].Value(domain.AlertStatusKey)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "OK", value)

	snapshots := []database.InsertSnapshotParams{
		{Uuid: "s1", RootComponentUuid: "pr2", Status: "P", Islast: false, CreatedAt: 1000},
		{Uuid: "s2", RootComponentUuid: "pr2", Status: "P", Islast: true, CreatedAt: 1234567891234},
		{Uuid: "s3", RootComponentUuid: "pr1", Status: "U", Islast: true, CreatedAt: 5000},
	}
	for _, s := range snapshots {
		suite.Require().NoError(suite.queries.InsertSnapshot(suite.ctx, s))
	}

	analyses, err := repository.NewSnapshotRepository(suite.queries).
		SelectLastAnalysesByRootComponentUUIDs(suite.ctx, []string{"pr1", "pr2"})
	suite.Require().NoError(err)
	suite.Require().Len(analyses, 1)
	assert.Equal(suite.T(), "pr2", analyses[0].RootComponentUUID)
	assert.True(suite.T(), analyses[0].CreatedAt.Equal(time.UnixMilli(1234567891234)))
}

func (suite *RepositoryTestSuite) TestUserAndPermissionRepositories() {
	projectUUID := suite.insertProject("my-project", true)
	userUUID := uuid.NewString()
	groupUUID := uuid.NewString()

	suite.Require().NoError(suite.queries.InsertUser(suite.ctx, database.InsertUserParams{
		Uuid:   userUUID,
		Login:  "alice",
		Name:   "Alice",
		Active: true,
	}))
	suite.Require().NoError(suite.queries.InsertUserToken(suite.ctx, database.InsertUserTokenParams{
		Uuid:      uuid.NewString(),
		UserUuid:  userUUID,
		Name:      "ci",
		TokenHash: session.HashToken("secret-token"),
	}))
	suite.Require().NoError(suite.queries.InsertUserRole(suite.ctx, database.InsertUserRoleParams{
		Uuid:     uuid.NewString(),
		UserUuid: userUUID,
		Role:     domain.GlobalPermissionScan,
	}))

	_, err := suite.db.ExecContext(suite.ctx,
		"INSERT INTO groups_users (group_uuid, user_uuid) VALUES ($1, $2)", groupUUID, userUUID)
	suite.Require().NoError(err)
	_, err = suite.db.ExecContext(suite.ctx,
		"INSERT INTO group_roles (uuid, group_uuid, role, entity_uuid) VALUES ($1, $2, $3, $4)",
		uuid.NewString(), groupUUID, domain.ProjectPermissionUser, projectUUID)
	suite.Require().NoError(err)

	users := repository.NewUserRepository(suite.queries)
	user, token, err := users.GetByTokenHash(suite.ctx, session.HashToken("secret-token"))
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "alice", user.Login)
	assert.Equal(suite.T(), "ci", token.Name)
	assert.Nil(suite.T(), token.ExpirationDate)

	_, _, err = users.GetByTokenHash(suite.ctx, session.HashToken("other"))
	assert.ErrorIs(suite.T(), err, domain.ErrUserNotFound)

	roles, err := repository.NewPermissionRepository(suite.db).SelectRoles(suite.ctx, userUUID)
	suite.Require().NoError(err)
	assert.ElementsMatch(suite.T(), []domain.Role{
		{Permission: domain.GlobalPermissionScan},
		{Permission: domain.ProjectPermissionUser, EntityUUID: projectUUID},
	}, roles)

	sessions := session.NewFactory(users, repository.NewPermissionRepository(suite.db))
	userSession, err := sessions.FromToken(suite.ctx, "secret-token")
	suite.Require().NoError(err)
	assert.True(suite.T(), userSession.IsLoggedIn())
	assert.True(suite.T(), userSession.HasEntityPermission(domain.ProjectPermissionUser, &domain.Project{UUID: projectUUID, Private: true}))
}
