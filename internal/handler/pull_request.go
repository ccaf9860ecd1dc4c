package handler

import (
	"net/http"

	"sonar-pr-decoration/api"
	"sonar-pr-decoration/internal/domain"
	"sonar-pr-decoration/internal/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PRHandler обрабатывает HTTP-запросы связанные с пул-реквестами
type PRHandler struct {
	*BaseHandler
	prUseCase domain.PRUseCase
	writer    ResponseWriter
	metrics   *telemetry.PrometheusMetrics
}

// NewPRHandler создает новый экземпляр PRHandler
func NewPRHandler(prUseCase domain.PRUseCase, writer ResponseWriter, metrics *telemetry.PrometheusMetrics, logger *logrus.Logger) *PRHandler {
	return &PRHandler{
		BaseHandler: NewBaseHandler(logger),
		prUseCase:   prUseCase,
		writer:      writer,
		metrics:     metrics,
	}
}

// GetProjectPullRequestsList обрабатывает действие list контроллера api/project_pull_requests
func (h *PRHandler) GetProjectPullRequestsList(c echo.Context, params api.GetProjectPullRequestsListParams) error {
	logEntry := h.logRequest(c, "list_pull_requests").WithField("project", params.Project)
	logEntry.Info("Listing pull requests")

	prs, err := h.prUseCase.ListPullRequests(c.Request().Context(), SessionFromContext(c), params.Project)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list pull requests")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	h.metrics.ObserveListedPullRequests(len(prs))
	logEntry.WithField("prs_count", len(prs)).Info("Pull requests listed successfully")
	return h.writer.Write(c, http.StatusOK, toAPIListResponse(prs))
}
