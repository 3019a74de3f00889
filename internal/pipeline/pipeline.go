package pipeline

import (
	"errors"
	"fmt"

	"heatcls/domain/core"
	"heatcls/domain/tabular"
	"heatcls/internal/registry"
	"heatcls/ports"
)

var errNoStages = errors.New("no transform stages configured")

// TransformSpec names one feature-transform stage: which transformer to
// resolve, its keyword parameters, and the input columns it claims.
type TransformSpec struct {
	StageName string
	ClassName string
	Params    registry.Params
	Columns   []string
}

// ClassifierSpec names the terminal classifier and its parameters. The
// classname key has already been stripped from Params by the loader.
type ClassifierSpec struct {
	ClassName string
	Params    registry.Params
}

// Pipeline is the composed run artifact: a feature-transform stage
// followed by a terminal classifier. The structure is fixed after
// Build; only learned state changes across Fit calls.
type Pipeline struct {
	FeatureTransform *ColumnTransformer
	Classifier       ports.Classifier

	transformSpecs []TransformSpec
	classifierSpec ClassifierSpec
	reg            *registry.Registry
}

// Build composes a pipeline from configuration. It performs no I/O and
// does not validate column existence against data; identical
// configuration always yields a structurally identical pipeline.
func Build(transforms []TransformSpec, cls ClassifierSpec, reg *registry.Registry) (*Pipeline, error) {
	if len(transforms) == 0 {
		return nil, core.NewConfigValidationError("feature_transform.transformers", "at least one transform stage required")
	}

	seen := make(map[string]bool, len(transforms))
	stages := make([]Stage, 0, len(transforms))
	for i, spec := range transforms {
		if spec.StageName == "" {
			return nil, core.NewConfigValidationError(
				fmt.Sprintf("feature_transform.transformers[%d].stage_name", i), "must not be empty")
		}
		if seen[spec.StageName] {
			return nil, core.NewConfigValidationError(
				fmt.Sprintf("feature_transform.transformers[%d].stage_name", i),
				fmt.Sprintf("duplicate stage name %q", spec.StageName))
		}
		seen[spec.StageName] = true

		transformer, err := reg.Transformer(spec.ClassName, spec.Params)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", spec.StageName, err)
		}
		columns := make([]string, len(spec.Columns))
		copy(columns, spec.Columns)
		stages = append(stages, Stage{
			Name:        spec.StageName,
			Columns:     columns,
			Transformer: transformer,
		})
	}

	classifier, err := reg.Classifier(cls.ClassName, cls.Params)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		FeatureTransform: &ColumnTransformer{
			Stages:    stages,
			Unmatched: UnmatchedDrop,
		},
		Classifier:     classifier,
		transformSpecs: transforms,
		classifierSpec: cls,
		reg:            reg,
	}, nil
}

// Fit learns the feature transforms on X, then fits the classifier on
// the transformed matrix. The pipeline is mutated in place.
func (p *Pipeline) Fit(X *tabular.Matrix, y []float64) error {
	if len(y) == 0 {
		return core.ErrEmptyTarget
	}
	if err := p.FeatureTransform.Fit(X); err != nil {
		return err
	}
	transformed, err := p.FeatureTransform.Transform(X)
	if err != nil {
		return err
	}
	return p.Classifier.Fit(transformed, y)
}

// PredictProba transforms X and returns the classifier's two-column
// probability output.
func (p *Pipeline) PredictProba(X *tabular.Matrix) ([][]float64, error) {
	transformed, err := p.FeatureTransform.Transform(X)
	if err != nil {
		return nil, err
	}
	return p.Classifier.PredictProba(transformed)
}

// Clone rebuilds an unfitted pipeline from the original specs. Build is
// deterministic, so the clone is structurally identical to the
// receiver as constructed.
func (p *Pipeline) Clone() (*Pipeline, error) {
	if p.reg == nil {
		return nil, core.NewComputeError("pipeline clone", errors.New("pipeline was not created by Build"))
	}
	return Build(p.transformSpecs, p.classifierSpec, p.reg)
}

// StageNames returns the configured stage names in execution order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.FeatureTransform.Stages))
	for i, s := range p.FeatureTransform.Stages {
		names[i] = s.Name
	}
	return names
}
