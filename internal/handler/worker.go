package handler

import (
	"net/http"

	"sonar-pr-decoration/api"
	"sonar-pr-decoration/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// WorkerHandler отдает число воркеров фоновых задач.
type WorkerHandler struct {
	*BaseHandler
	provider domain.WorkerCountProvider
	writer   ResponseWriter
}

// NewWorkerHandler создает новый экземпляр WorkerHandler.
func NewWorkerHandler(provider domain.WorkerCountProvider, writer ResponseWriter, logger *logrus.Logger) *WorkerHandler {
	return &WorkerHandler{
		BaseHandler: NewBaseHandler(logger),
		provider:    provider,
		writer:      writer,
	}
}

// GetCeWorkerCount обрабатывает GET /api/ce/worker_count.
func (h *WorkerHandler) GetCeWorkerCount(c echo.Context) error {
	count := h.provider.Get()
	h.logRequest(c, "get_worker_count").WithField("worker_count", count).Debug("Worker count requested")

	return h.writer.Write(c, http.StatusOK, api.WorkerCountWsResponse{
		Value:             count,
		CanSetWorkerCount: false,
	})
}
