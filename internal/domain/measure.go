package domain

import (
	"context"
	"time"
)

// AlertStatusKey ключ метрики статуса quality gate.
const AlertStatusKey = "alert_status"

// Measure содержит значения метрик компонента (ветки).
type Measure struct {
	ComponentUUID string
	Values        map[string]string
}

// Value возвращает значение метрики и признак его наличия.
func (m *Measure) Value(metricKey string) (string, bool) {
	if m == nil || m.Values == nil {
		return "", false
	}
	value, ok := m.Values[metricKey]
	return value, ok
}

// Snapshot запись об одном завершенном анализе.
type Snapshot struct {
	UUID              string
	RootComponentUUID string
	CreatedAt         time.Time
}

// MeasureRepository определяет контракт для чтения значений метрик.
type MeasureRepository interface {
	SelectByComponentUUIDsAndMetricKeys(ctx context.Context, componentUUIDs []string, metricKeys []string) ([]*Measure, error)
}

// SnapshotRepository определяет контракт для чтения последних анализов.
type SnapshotRepository interface {
	SelectLastAnalysesByRootComponentUUIDs(ctx context.Context, rootComponentUUIDs []string) ([]*Snapshot, error)
}
