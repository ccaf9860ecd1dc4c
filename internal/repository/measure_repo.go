package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"sonar-pr-decoration/internal/database"
	"sonar-pr-decoration/internal/domain"
)

// MeasureRepository реализует domain.MeasureRepository для работы со значениями метрик.
type MeasureRepository struct {
	queries *database.Queries
}

// NewMeasureRepository создает новый экземпляр MeasureRepository.
func NewMeasureRepository(queries *database.Queries) domain.MeasureRepository {
	return &MeasureRepository{
		queries: queries,
	}
}

// SelectByComponentUUIDsAndMetricKeys возвращает значения указанных метрик для компонентов.
// Компоненты без единой из запрошенных метрик в результат не попадают.
func (r *MeasureRepository) SelectByComponentUUIDsAndMetricKeys(ctx context.Context, componentUUIDs []string, metricKeys []string) ([]*domain.Measure, error) {
	if len(componentUUIDs) == 0 || len(metricKeys) == 0 {
		return []*domain.Measure{}, nil
	}

	dbMeasures, err := r.queries.SelectMeasuresByComponentUuids(ctx, componentUUIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to select measures: %w", err)
	}

	result := make([]*domain.Measure, 0, len(dbMeasures))
	for _, dbMeasure := range dbMeasures {
		var raw map[string]any
		if err := json.Unmarshal(dbMeasure.JsonValue, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode measures of component %s: %w", dbMeasure.ComponentUuid, err)
		}

		values := make(map[string]string, len(metricKeys))
		for _, key := range metricKeys {
			if value, ok := raw[key]; ok && value != nil {
				values[key] = measureValueToString(value)
			}
		}
		if len(values) == 0 {
			continue
		}

		result = append(result, &domain.Measure{
			ComponentUUID: dbMeasure.ComponentUuid,
			Values:        values,
		})
	}

	return result, nil
}

func measureValueToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
