package pipeline

import (
	"fmt"

	"heatcls/domain/core"
	"heatcls/domain/tabular"
	"heatcls/ports"
)

// UnmatchedPolicy says what happens to input columns no stage claims.
type UnmatchedPolicy string

// UnmatchedDrop discards unclaimed columns. It is the only policy the
// harness implements: the transformed matrix contains exactly the stage
// outputs, never raw leftovers.
const UnmatchedDrop UnmatchedPolicy = "drop"

// Stage is one named transformer bound to an ordered column subset.
type Stage struct {
	Name        string
	Columns     []string
	Transformer ports.Transformer
}

// ColumnTransformer applies each stage to its own column subset and
// concatenates the outputs in stage order. Column existence is checked
// against real data at fit/transform time, not at build time.
type ColumnTransformer struct {
	Stages    []Stage
	Unmatched UnmatchedPolicy
}

func (ct *ColumnTransformer) Fit(X *tabular.Matrix) error {
	for _, stage := range ct.Stages {
		sub, err := X.Select(stage.Columns)
		if err != nil {
			return fmt.Errorf("stage %q: %w", stage.Name, err)
		}
		if err := stage.Transformer.Fit(sub); err != nil {
			return fmt.Errorf("stage %q: %w", stage.Name, err)
		}
	}
	return nil
}

func (ct *ColumnTransformer) Transform(X *tabular.Matrix) (*tabular.Matrix, error) {
	parts := make([]*tabular.Matrix, 0, len(ct.Stages))
	for _, stage := range ct.Stages {
		sub, err := X.Select(stage.Columns)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", stage.Name, err)
		}
		out, err := stage.Transformer.Transform(sub)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", stage.Name, err)
		}
		// Prefix output columns with the stage name so two stages over
		// the same input column stay distinguishable downstream.
		prefixed := make([]string, len(out.Columns))
		for i, c := range out.Columns {
			prefixed[i] = stage.Name + "__" + c
		}
		out.Columns = prefixed
		parts = append(parts, out)
	}
	if len(parts) == 0 {
		return nil, core.NewComputeError("feature_transform", errNoStages)
	}
	return tabular.HStack(parts...), nil
}
