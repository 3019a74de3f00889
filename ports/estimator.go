package ports

import (
	"heatcls/domain/tabular"
)

// Transformer is the capability required of feature-transform stages:
// learn column statistics on Fit, rewrite the matrix on Transform.
type Transformer interface {
	Fit(X *tabular.Matrix) error
	Transform(X *tabular.Matrix) (*tabular.Matrix, error)
}

// Classifier is the capability required of the terminal pipeline stage.
// PredictProba returns one row per sample with two columns; column 1 is
// the positive-class probability (fixed binary convention).
type Classifier interface {
	Fit(X *tabular.Matrix, y []float64) error
	PredictProba(X *tabular.Matrix) ([][]float64, error)
}

// Scorer evaluates binary predictions. probaPos holds the positive-class
// probability per sample.
type Scorer interface {
	Name() string
	Score(yTrue, probaPos []float64) (float64, error)
}
