package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"heatcls/domain/core"
)

// TrainConfig is the complete configuration of one training run.
// It is loaded once, validated eagerly, and immutable afterwards.
type TrainConfig struct {
	Data             DataConfig             `yaml:"data_config"`
	FeatureTransform FeatureTransformConfig `yaml:"feature_transform"`
	Classifier       map[string]any         `yaml:"cls_config"`
	CrossVal         CrossValConfig         `yaml:"cross_val"`
	OutputMetric     string                 `yaml:"output_metric"`
	ModelPath        string                 `yaml:"model_path"`
}

// DataConfig locates the input files and names the target column.
type DataConfig struct {
	PathToTrain       string `yaml:"path_to_train"`
	PathToTest        string `yaml:"path_to_test"`
	UniqueValuesLimit int    `yaml:"unique_values_limit"`
	TargetVariable    string `yaml:"target_variable"`
}

// FeatureTransformConfig is the ordered list of transform stages.
type FeatureTransformConfig struct {
	Transformers []TransformerConfig `yaml:"transformers"`
}

// TransformerConfig declares one feature-transform stage.
type TransformerConfig struct {
	StageName string         `yaml:"stage_name"`
	ClassName string         `yaml:"classname"`
	Params    map[string]any `yaml:"params"`
	Columns   []string       `yaml:"columns"`
}

// CrossValConfig configures the k-fold evaluation.
type CrossValConfig struct {
	Scores []string `yaml:"scores"`
	CV     int      `yaml:"cv"`
}

// Load reads and validates a train configuration from a YAML file.
// Unknown top-level or nested fields are rejected so typos fail at load
// time instead of deep inside pipeline construction.
func Load(path string) (*TrainConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, core.NewConfigValidationError(path, err.Error())
	}

	cfg := &TrainConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, core.NewConfigValidationError(path, err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate performs eager required-field and type checks, producing a
// precise field path on failure.
func (c *TrainConfig) Validate() error {
	if c.Data.PathToTrain == "" {
		return core.NewConfigValidationError("data_config.path_to_train", "required")
	}
	if c.Data.PathToTest == "" {
		return core.NewConfigValidationError("data_config.path_to_test", "required")
	}
	if c.Data.UniqueValuesLimit <= 0 {
		return core.NewConfigValidationError("data_config.unique_values_limit", "must be positive")
	}
	if c.Data.TargetVariable == "" {
		return core.NewConfigValidationError("data_config.target_variable", "required")
	}

	if len(c.FeatureTransform.Transformers) == 0 {
		return core.NewConfigValidationError("feature_transform.transformers", "at least one transform stage required")
	}
	seen := make(map[string]bool)
	for i, t := range c.FeatureTransform.Transformers {
		prefix := fmt.Sprintf("feature_transform.transformers[%d]", i)
		if t.StageName == "" {
			return core.NewConfigValidationError(prefix+".stage_name", "required")
		}
		if seen[t.StageName] {
			return core.NewConfigValidationError(prefix+".stage_name", fmt.Sprintf("duplicate stage name %q", t.StageName))
		}
		seen[t.StageName] = true
		if t.ClassName == "" {
			return core.NewConfigValidationError(prefix+".classname", "required")
		}
		if len(t.Columns) == 0 {
			return core.NewConfigValidationError(prefix+".columns", "at least one column required")
		}
	}

	if _, err := c.ClassifierName(); err != nil {
		return err
	}

	if c.CrossVal.CV < 2 {
		return core.NewConfigValidationError("cross_val.cv", "fold count must be at least 2")
	}
	if len(c.CrossVal.Scores) == 0 {
		return core.NewConfigValidationError("cross_val.scores", "at least one scoring function required")
	}

	if c.OutputMetric == "" {
		return core.NewConfigValidationError("output_metric", "required")
	}
	if c.ModelPath == "" {
		return core.NewConfigValidationError("model_path", "required")
	}
	return nil
}

// ClassifierName extracts the classname field of cls_config.
func (c *TrainConfig) ClassifierName() (string, error) {
	raw, ok := c.Classifier["classname"]
	if !ok {
		return "", core.NewConfigValidationError("cls_config.classname", "required")
	}
	name, ok := raw.(string)
	if !ok || name == "" {
		return "", core.NewConfigValidationError("cls_config.classname", "must be a non-empty string")
	}
	return name, nil
}

// ClassifierParams returns cls_config with the classname field
// stripped, ready to hand to the classifier's constructor.
func (c *TrainConfig) ClassifierParams() map[string]any {
	params := make(map[string]any, len(c.Classifier))
	for k, v := range c.Classifier {
		if k == "classname" {
			continue
		}
		params[k] = v
	}
	return params
}

// ResolvePaths rewrites relative file paths against baseDir, so a run
// behaves the same regardless of the process working directory.
func (c *TrainConfig) ResolvePaths(baseDir string) {
	c.Data.PathToTrain = resolve(baseDir, c.Data.PathToTrain)
	c.Data.PathToTest = resolve(baseDir, c.Data.PathToTest)
	c.OutputMetric = resolve(baseDir, c.OutputMetric)
	c.ModelPath = resolve(baseDir, c.ModelPath)
}

func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
