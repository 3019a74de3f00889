package testkit

import (
	"fmt"
	"math/rand"

	"heatcls/domain/tabular"
)

// GeneratorConfig configures the synthetic binary-classification
// dataset generator used by tests and local smoke runs.
type GeneratorConfig struct {
	RowCount     int
	FeatureCount int
	// Separation shifts the positive-class feature means; 0 produces
	// pure noise, 2+ produces an easily separable problem.
	Separation float64
	Seed       int64
}

// DefaultGeneratorConfig returns the balanced 200-row, 10-feature
// setup most tests use.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RowCount:     200,
		FeatureCount: 10,
		Separation:   1.5,
		Seed:         42,
	}
}

// Generator produces seeded synthetic tabular data with a balanced
// binary target. The same config always yields the same frame.
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// FeatureNames returns the generated column names f0..fN-1.
func (g *Generator) FeatureNames() []string {
	names := make([]string, g.config.FeatureCount)
	for i := range names {
		names[i] = fmt.Sprintf("f%d", i)
	}
	return names
}

// GenerateFrame produces a raw frame with numeric feature columns and a
// trailing 0/1 "target" column, balanced 50/50.
func (g *Generator) GenerateFrame() *tabular.Frame {
	headers := append(g.FeatureNames(), "target")
	rows := make([]tabular.RawRow, g.config.RowCount)
	for i := range rows {
		label := i % 2 // alternate so any split stays balanced
		row := make(tabular.RawRow, len(headers))
		for j := 0; j < g.config.FeatureCount; j++ {
			v := g.rng.NormFloat64()
			if label == 1 {
				v += g.config.Separation
			}
			row[headers[j]] = fmt.Sprintf("%.6f", v)
		}
		row["target"] = fmt.Sprintf("%d", label)
		rows[i] = row
	}
	return &tabular.Frame{Headers: headers, Rows: rows}
}

// GenerateMatrix produces the same data pre-coerced into a feature
// matrix and target vector, skipping the preparer.
func (g *Generator) GenerateMatrix() (*tabular.Matrix, []float64) {
	X := tabular.NewMatrix(g.FeatureNames(), g.config.RowCount)
	y := make([]float64, g.config.RowCount)
	for i := 0; i < g.config.RowCount; i++ {
		label := i % 2
		for j := 0; j < g.config.FeatureCount; j++ {
			v := g.rng.NormFloat64()
			if label == 1 {
				v += g.config.Separation
			}
			X.Rows[i][j] = v
		}
		y[i] = float64(label)
	}
	return X, y
}
