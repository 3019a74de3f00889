package persist

import (
	"encoding/json"
	"os"
	"path/filepath"

	"heatcls/domain/core"
)

// MetricKey is the single key of the metric record.
const MetricKey = "ROC AUC"

// WriteMetric writes {"ROC AUC": <value>} to path, creating missing
// parent directories and overwriting any previous record.
func WriteMetric(path string, value float64) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return core.NewPersistenceError(path, err)
		}
	}

	payload, err := json.Marshal(map[string]float64{MetricKey: value})
	if err != nil {
		return core.NewPersistenceError(path, err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return core.NewPersistenceError(path, err)
	}
	return nil
}

// ReadMetric reads back a metric record written by WriteMetric.
func ReadMetric(path string) (float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, core.NewPersistenceError(path, err)
	}
	var record map[string]float64
	if err := json.Unmarshal(raw, &record); err != nil {
		return 0, core.NewPersistenceError(path, err)
	}
	value, ok := record[MetricKey]
	if !ok {
		return 0, core.NewPersistenceError(path, errMissingMetricKey)
	}
	return value, nil
}
