package persist

import (
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"

	"heatcls/domain/core"
	"heatcls/internal/model"
	"heatcls/internal/pipeline"
	"heatcls/internal/transform"
)

var errMissingMetricKey = errors.New("metric record missing \"ROC AUC\" key")

// registerTypes tells gob about every concrete estimator that can sit
// behind the pipeline's interface fields.
func registerTypes() {
	gob.Register(&transform.StandardScaler{})
	gob.Register(&transform.MinMaxScaler{})
	gob.Register(&transform.RobustScaler{})
	gob.Register(&transform.Passthrough{})
	gob.Register(&model.LogisticRegression{})
	gob.Register(&model.LinearSVC{})
}

// SaveModel serializes the fitted pipeline to path, creating missing
// parent directories. The artifact format is gob; LoadModel is the
// counterpart reader.
func SaveModel(path string, pipe *pipeline.Pipeline) error {
	registerTypes()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return core.NewPersistenceError(path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return core.NewPersistenceError(path, err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(pipe); err != nil {
		return core.NewPersistenceError(path, err)
	}
	return nil
}

// LoadModel reads a pipeline artifact written by SaveModel. The loaded
// pipeline carries its learned state and can predict, but is not
// cloneable (the builder specs are not part of the artifact).
func LoadModel(path string) (*pipeline.Pipeline, error) {
	registerTypes()

	file, err := os.Open(path)
	if err != nil {
		return nil, core.NewPersistenceError(path, err)
	}
	defer file.Close()

	var pipe pipeline.Pipeline
	if err := gob.NewDecoder(file).Decode(&pipe); err != nil {
		return nil, core.NewPersistenceError(path, err)
	}
	return &pipe, nil
}
