package model

import (
	"errors"

	"heatcls/domain/core"
	"heatcls/domain/tabular"
)

var (
	errNotFitted     = errors.New("predict called before fit")
	errShapeMismatch = errors.New("feature count differs from fitted data")
)

// checkBinaryTarget rejects targets a binary classifier cannot learn
// from: empty vectors, length mismatches, and single-class targets.
func checkBinaryTarget(X *tabular.Matrix, y []float64) error {
	if len(y) == 0 {
		return core.ErrEmptyTarget
	}
	if X.RowCount() != len(y) {
		return core.NewComputeError("fit", errors.New("row count differs from target length"))
	}
	hasPos, hasNeg := false, false
	for _, v := range y {
		if v > 0 {
			hasPos = true
		} else {
			hasNeg = true
		}
	}
	if !hasPos || !hasNeg {
		return core.ErrDegenerateClass
	}
	return nil
}
