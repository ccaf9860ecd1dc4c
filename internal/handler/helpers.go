package handler

import (
	"errors"
	"net/http"

	"sonar-pr-decoration/api"
	"sonar-pr-decoration/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIListResponse(prs []*domain.PullRequestSummary) api.ListWsResponse {
	result := make([]api.PullRequest, len(prs))
	for i, pr := range prs {
		result[i] = toAPIPullRequest(pr)
	}
	return api.ListWsResponse{PullRequests: result}
}

func toAPIPullRequest(pr *domain.PullRequestSummary) api.PullRequest {
	key := pr.Key
	apiPR := api.PullRequest{
		Key:    &key,
		Title:  optionalString(pr.Title),
		Branch: optionalString(pr.Branch),
		Base:   optionalString(pr.Base),
		Target: optionalString(pr.Target),
		Url:    optionalString(pr.URL),
		Status: &api.Status{
			QualityGateStatus: optionalString(pr.QualityGateStatus),
		},
	}

	if pr.IsOrphan {
		isOrphan := true
		apiPR.IsOrphan = &isOrphan
	}

	if pr.AnalysisDate != nil {
		analysisDate := domain.FormatDateTime(*pr.AnalysisDate)
		apiPR.AnalysisDate = &analysisDate
	}

	return apiPR
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(code),
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Unauthorized (401)
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Forbidden (403)
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not Found errors (404)
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
