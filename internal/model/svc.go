package model

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"heatcls/domain/core"
	"heatcls/domain/tabular"
)

// LinearSVC is a linear support-vector classifier trained with
// subgradient descent on the hinge loss. Probabilities come from a
// sigmoid over the decision margin, matching the fixed two-column
// output convention of the pipeline.
type LinearSVC struct {
	LearningRate float64
	Epochs       int
	C            float64
	Seed         int64

	Weights []float64
	Bias    float64
}

func NewLinearSVC(learningRate float64, epochs int, c float64, seed int64) *LinearSVC {
	return &LinearSVC{
		LearningRate: learningRate,
		Epochs:       epochs,
		C:            c,
		Seed:         seed,
	}
}

func (m *LinearSVC) Fit(X *tabular.Matrix, y []float64) error {
	if err := checkBinaryTarget(X, y); err != nil {
		return err
	}

	nFeatures := X.ColumnCount()
	rng := rand.New(rand.NewSource(m.Seed))
	m.Weights = make([]float64, nFeatures)
	for i := range m.Weights {
		m.Weights[i] = rng.NormFloat64() * 0.01
	}
	m.Bias = 0

	// Hinge loss wants labels in {-1, +1}.
	signed := make([]float64, len(y))
	for i, v := range y {
		if v > 0 {
			signed[i] = 1
		} else {
			signed[i] = -1
		}
	}

	n := float64(len(y))
	for epoch := 0; epoch < m.Epochs; epoch++ {
		order := rng.Perm(len(signed))
		for _, i := range order {
			row := X.Rows[i]
			margin := signed[i] * (floats.Dot(m.Weights, row) + m.Bias)

			// Regularization shrinks every step; the hinge term only
			// moves the boundary for margin violations.
			for j := range m.Weights {
				m.Weights[j] -= m.LearningRate * m.Weights[j] / n
			}
			if margin < 1 {
				for j, v := range row {
					m.Weights[j] += m.LearningRate * m.C * signed[i] * v
				}
				m.Bias += m.LearningRate * m.C * signed[i]
			}
		}
	}
	return nil
}

func (m *LinearSVC) PredictProba(X *tabular.Matrix) ([][]float64, error) {
	if m.Weights == nil {
		return nil, core.NewComputeError("linear_svc", errNotFitted)
	}
	if X.ColumnCount() != len(m.Weights) {
		return nil, core.NewComputeError("linear_svc", errShapeMismatch)
	}
	out := make([][]float64, X.RowCount())
	for i, row := range X.Rows {
		p := sigmoid(floats.Dot(m.Weights, row) + m.Bias)
		out[i] = []float64{1 - p, p}
	}
	return out, nil
}
