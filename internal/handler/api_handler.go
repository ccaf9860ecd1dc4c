package handler

import (
	"sonar-pr-decoration/api"
	"sonar-pr-decoration/internal/domain"
	"sonar-pr-decoration/internal/telemetry"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*PRHandler
	*WorkerHandler
}

func NewAPIHandler(
	prUseCase domain.PRUseCase,
	workerCountProvider domain.WorkerCountProvider,
	writer ResponseWriter,
	metrics *telemetry.PrometheusMetrics,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		PRHandler:     NewPRHandler(prUseCase, writer, metrics, logger),
		WorkerHandler: NewWorkerHandler(workerCountProvider, writer, logger),
	}
}
