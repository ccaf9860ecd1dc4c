package domain

import "time"

// DateTimeFormat формат дат в ответах web-сервисов (yyyy-MM-dd'T'HH:mm:ssZ).
const DateTimeFormat = "2006-01-02T15:04:05-0700"

// FormatDateTime форматирует дату в DateTimeFormat.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeFormat)
}

// PullRequestSummary представляет пул-реквест в ответе list.
// Пустые строки означают отсутствие значения.
type PullRequestSummary struct {
	Key               string
	Title             string
	Branch            string
	Base              string
	Target            string
	URL               string
	IsOrphan          bool
	QualityGateStatus string
	AnalysisDate      *time.Time
}
