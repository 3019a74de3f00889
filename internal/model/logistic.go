package model

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"heatcls/domain/core"
	"heatcls/domain/tabular"
)

// LogisticRegression is a binary classifier trained with full-batch
// gradient descent on the cross-entropy loss. Weight initialization is
// seeded so repeated fits with the same seed are bit-identical.
type LogisticRegression struct {
	LearningRate float64
	Epochs       int
	L2           float64
	Seed         int64

	Weights []float64
	Bias    float64
}

func NewLogisticRegression(learningRate float64, epochs int, l2 float64, seed int64) *LogisticRegression {
	return &LogisticRegression{
		LearningRate: learningRate,
		Epochs:       epochs,
		L2:           l2,
		Seed:         seed,
	}
}

func (m *LogisticRegression) Fit(X *tabular.Matrix, y []float64) error {
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

	n := float64(len(y))
	grad := make([]float64, nFeatures)

	for epoch := 0; epoch < m.Epochs; epoch++ {
		for i := range grad {
			grad[i] = 0
		}
		gradBias := 0.0

		for i, row := range X.Rows {
			p := sigmoid(floats.Dot(m.Weights, row) + m.Bias)
			d := p - y[i]
			for j, v := range row {
				grad[j] += d * v
			}
			gradBias += d
		}

		for j := range m.Weights {
			m.Weights[j] -= m.LearningRate * (grad[j]/n + m.L2*m.Weights[j])
		}
		m.Bias -= m.LearningRate * gradBias / n
	}
	return nil
}

func (m *LogisticRegression) PredictProba(X *tabular.Matrix) ([][]float64, error) {
	if m.Weights == nil {
		return nil, core.NewComputeError("logistic_regression", errNotFitted)
	}
	if X.ColumnCount() != len(m.Weights) {
		return nil, core.NewComputeError("logistic_regression", errShapeMismatch)
	}
	out := make([][]float64, X.RowCount())
	for i, row := range X.Rows {
		p := sigmoid(floats.Dot(m.Weights, row) + m.Bias)
		out[i] = []float64{1 - p, p}
	}
	return out, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
