package worker

import "sonar-pr-decoration/internal/domain"

// Настройки числа воркеров фоновых задач.
const (
	CountKey     = "sonar.ce.worker.count"
	DefaultCount = 2
	MaxCount     = 10
)

// CountProvider определяет число воркеров по настройке CountKey.
type CountProvider struct {
	configuration domain.Configuration
}

// NewCountProvider создает новый экземпляр CountProvider.
func NewCountProvider(configuration domain.Configuration) domain.WorkerCountProvider {
	return &CountProvider{
		configuration: configuration,
	}
}

// Get возвращает настроенное число воркеров, но не больше MaxCount.
// Отсутствующее, нечисловое или отрицательное значение заменяется на DefaultCount.
func (p *CountProvider) Get() int {
	count, ok := p.configuration.GetInt(CountKey)
	if !ok || count < 0 {
		count = DefaultCount
	}
	return min(MaxCount, count)
}
