package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sonar-pr-decoration/api"
	"sonar-pr-decoration/internal/domain"
	"sonar-pr-decoration/internal/handler"
	"sonar-pr-decoration/internal/mocks"
	"sonar-pr-decoration/internal/session"
	"sonar-pr-decoration/internal/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type spyWriter struct {
	mock.Mock
	next handler.ResponseWriter
}

func (w *spyWriter) Write(c echo.Context, status int, msg handler.ProtoMessage) error {
	w.Called(status, msg)
	return w.next.Write(c, status, msg)
}

type HandlerTestSuite struct {
	suite.Suite
	echo          *echo.Echo
	prUseCase     *mocks.PRUseCase
	workerCount   *mocks.WorkerCountProvider
	authenticator *mocks.Authenticator
	writer        *spyWriter
	logHook       *test.Hook
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	logger, hook := test.NewNullLogger()
	suite.logHook = hook

	suite.prUseCase = &mocks.PRUseCase{}
	suite.workerCount = &mocks.WorkerCountProvider{}
	suite.authenticator = &mocks.Authenticator{}
	suite.writer = &spyWriter{next: handler.NewProtoBufWriter()}

	metrics := telemetry.NewPrometheusMetrics(prometheus.NewRegistry())

	suite.echo = echo.New()
	suite.echo.Use(handler.LoggingMiddleware(logger))
	ws := suite.echo.Group("", handler.AuthMiddleware(suite.authenticator, logger), handler.ErrorMiddleware())
	api.RegisterHandlers(ws, handler.NewAPIHandler(suite.prUseCase, suite.workerCount, suite.writer, metrics, logger))
}

func (suite *HandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *HandlerTestSuite) TestListPullRequests_JSON() {
	analysisDate := time.UnixMilli(1234567891234)
	suite.prUseCase.On("ListPullRequests", mock.Anything, mock.Anything, "my-project").Return([]*domain.PullRequestSummary{
		{Key: "prKey", Title: "title", Branch: "prBranch", Base: "main", Target: "main", URL: "url", QualityGateStatus: "OK"},
		{Key: "prKey2", Branch: "prBranch2", IsOrphan: true, AnalysisDate: &analysisDate},
	}, nil)
	suite.writer.On("Write", http.StatusOK, mock.Anything).Return()

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/api/project_pull_requests/list?project=my-project", nil))

	suite.Require().Equal(http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	var raw map[string][]map[string]any
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
	prs := raw["pullRequests"]
	suite.Require().Len(prs, 2)

	assert.Equal(suite.T(), map[string]any{
		"key":    "prKey",
		"title":  "title",
		"branch": "prBranch",
		"base":   "main",
		"target": "main",
		"url":    "url",
		"status": map[string]any{"qualityGateStatus": "OK"},
	}, prs[0])
	assert.Equal(suite.T(), map[string]any{
		"key":          "prKey2",
		"branch":       "prBranch2",
		"isOrphan":     true,
		"analysisDate": domain.FormatDateTime(analysisDate),
		"status":       map[string]any{},
	}, prs[1])

	suite.writer.AssertNumberOfCalls(suite.T(), "Write", 1)
}

func (suite *HandlerTestSuite) TestListPullRequests_Protobuf() {
	prs := []*domain.PullRequestSummary{{Key: "prKey", Base: "main", Target: "main"}}
	suite.prUseCase.On("ListPullRequests", mock.Anything, mock.Anything, "my-project").Return(prs, nil)
	suite.writer.On("Write", http.StatusOK, mock.Anything).Return()

	req := httptest.NewRequest(http.MethodGet, "/api/project_pull_requests/list?project=my-project", nil)
	req.Header.Set(echo.HeaderAccept, handler.MIMEProtobuf)
	rec := suite.serve(req)

	suite.Require().Equal(http.StatusOK, rec.Code)
	assert.Equal(suite.T(), handler.MIMEProtobuf, rec.Header().Get(echo.HeaderContentType))

	key, base := "prKey", "main"
	expected := api.ListWsResponse{PullRequests: []api.PullRequest{
		{Key: &key, Base: &base, Target: &base, Status: &api.Status{}},
	}}
	assert.Equal(suite.T(), expected.MarshalProto(), rec.Body.Bytes())
}

func (suite *HandlerTestSuite) TestListPullRequests_EmptyList() {
	suite.prUseCase.On("ListPullRequests", mock.Anything, mock.Anything, "empty").Return([]*domain.PullRequestSummary{}, nil)
	suite.writer.On("Write", http.StatusOK, mock.Anything).Return()

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/api/project_pull_requests/list?project=empty", nil))

	suite.Require().Equal(http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"pullRequests":[]}`, rec.Body.String())
}

func (suite *HandlerTestSuite) TestListPullRequests_Errors() {
	testCases := []struct {
		name       string
		project    string
		err        error
		statusCode int
		code       string
	}{
		{name: "Forbidden", project: "private", err: domain.ErrForbidden, statusCode: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "Project not found", project: "missing", err: domain.ErrProjectNotFound, statusCode: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "Unexpected failure", project: "broken", err: errors.New("db is down"), statusCode: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.prUseCase.On("ListPullRequests", mock.Anything, mock.Anything, tc.project).Return(nil, tc.err)

			rec := suite.serve(httptest.NewRequest(http.MethodGet, "/api/project_pull_requests/list?project="+tc.project, nil))

			suite.Require().Equal(tc.statusCode, rec.Code)
			var response api.ErrorResponse
			suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(suite.T(), api.ErrorResponseErrorCode(tc.code), response.Error.Code)
			suite.writer.AssertNotCalled(suite.T(), "Write", mock.Anything, mock.Anything)
		})
	}
}

func (suite *HandlerTestSuite) TestListPullRequests_MissingProject() {
	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/api/project_pull_requests/list", nil))

	suite.Require().Equal(http.StatusBadRequest, rec.Code)
	var response api.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(suite.T(), api.INVALIDREQUEST, response.Error.Code)
	assert.Contains(suite.T(), response.Error.Message, "project")
	suite.prUseCase.AssertNotCalled(suite.T(), "ListPullRequests", mock.Anything, mock.Anything, mock.Anything)

	entry := suite.logHook.LastEntry()
	suite.Require().NotNil(entry)
	assert.Equal(suite.T(), logrus.WarnLevel, entry.Level)
	assert.Equal(suite.T(), http.StatusBadRequest, entry.Data["status"])
}

func (suite *HandlerTestSuite) TestUnknownRoute_LoggedWithErrorStatus() {
	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	entry := suite.logHook.LastEntry()
	suite.Require().NotNil(entry)
	assert.Equal(suite.T(), logrus.WarnLevel, entry.Level)
	assert.Equal(suite.T(), http.StatusNotFound, entry.Data["status"])
}

func (suite *HandlerTestSuite) TestListPullRequests_PassesAuthenticatedSession() {
	userSession := session.NewUserSession(&domain.User{UUID: "u1", Login: "alice", IsActive: true}, nil)
	suite.authenticator.On("FromToken", mock.Anything, "secret").Return(userSession, nil)
	suite.prUseCase.On("ListPullRequests", mock.Anything, userSession, "my-project").Return([]*domain.PullRequestSummary{}, nil)
	suite.writer.On("Write", http.StatusOK, mock.Anything).Return()

	req := httptest.NewRequest(http.MethodGet, "/api/project_pull_requests/list?project=my-project", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer secret")
	rec := suite.serve(req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	suite.authenticator.AssertExpectations(suite.T())
	suite.prUseCase.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListPullRequests_AnonymousWithoutCredentials() {
	suite.prUseCase.On("ListPullRequests", mock.Anything, mock.MatchedBy(func(s domain.UserSession) bool {
		return !s.IsLoggedIn()
	}), "public").Return([]*domain.PullRequestSummary{}, nil)
	suite.writer.On("Write", http.StatusOK, mock.Anything).Return()

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/api/project_pull_requests/list?project=public", nil))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	suite.authenticator.AssertNotCalled(suite.T(), "FromToken", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAuthentication_BasicAuthToken() {
	suite.authenticator.On("FromToken", mock.Anything, "secret").Return(session.Anonymous(), nil)
	suite.workerCount.On("Get").Return(2)
	suite.writer.On("Write", http.StatusOK, mock.Anything).Return()

	req := httptest.NewRequest(http.MethodGet, "/api/ce/worker_count", nil)
	req.SetBasicAuth("secret", "")
	rec := suite.serve(req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	suite.authenticator.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAuthentication_Failures() {
	testCases := []struct {
		name       string
		header     string
		err        error
		statusCode int
	}{
		{name: "Unknown token", header: "Bearer unknown", err: domain.ErrUnauthorized, statusCode: http.StatusUnauthorized},
		{name: "Password login", header: "Basic YWxpY2U6cGFzc3dvcmQ=", err: domain.ErrUnauthorized, statusCode: http.StatusUnauthorized},
		{name: "Session failure", header: "Bearer broken", err: errors.New("db is down"), statusCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.authenticator.ExpectedCalls = nil
			suite.authenticator.On("FromToken", mock.Anything, mock.Anything).Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/api/project_pull_requests/list?project=my-project", nil)
			req.Header.Set(echo.HeaderAuthorization, tc.header)
			rec := suite.serve(req)

			assert.Equal(suite.T(), tc.statusCode, rec.Code)
			suite.prUseCase.AssertNotCalled(suite.T(), "ListPullRequests", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (suite *HandlerTestSuite) TestGetCeWorkerCount() {
	suite.workerCount.On("Get").Return(4)
	suite.writer.On("Write", http.StatusOK, mock.Anything).Return()

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/api/ce/worker_count", nil))

	suite.Require().Equal(http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"value":4,"canSetWorkerCount":false}`, rec.Body.String())
}

func TestProtoBufWriter_NegotiatesFormat(t *testing.T) {
	e := echo.New()
	writer := handler.NewProtoBufWriter()
	msg := api.WorkerCountWsResponse{Value: 3}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAccept, "application/x-protobuf, application/json")
	rec := httptest.NewRecorder()
	require.NoError(t, writer.Write(e.NewContext(req, rec), http.StatusOK, msg))
	assert.Equal(t, msg.MarshalProto(), rec.Body.Bytes())

	testCases := []struct {
		name   string
		accept string
	}{
		{name: "No Accept header", accept: ""},
		{name: "JSON only", accept: "application/json"},
		{name: "Protobuf refused with q=0", accept: "application/x-protobuf;q=0, application/json"},
		{name: "Protobuf refused with q=0.0", accept: "application/x-protobuf; q=0.0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.accept != "" {
				req.Header.Set(echo.HeaderAccept, tc.accept)
			}
			rec := httptest.NewRecorder()

			require.NoError(t, writer.Write(e.NewContext(req, rec), http.StatusOK, msg))
			assert.JSONEq(t, `{"value":3,"canSetWorkerCount":false}`, rec.Body.String())
		})
	}
}
