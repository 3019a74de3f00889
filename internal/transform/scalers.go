package transform

import (
	"math"

	"github.com/montanaflynn/stats"

	"heatcls/domain/core"
	"heatcls/domain/tabular"
)

// StandardScaler standardizes each column to zero mean and unit
// variance. Columns with zero spread transform to zero.
type StandardScaler struct {
	WithMean bool
	WithStd  bool

	Means []float64
	Stds  []float64
}

func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{WithMean: withMean, WithStd: withStd}
}

func (s *StandardScaler) Fit(X *tabular.Matrix) error {
	cols := X.ColumnCount()
	s.Means = make([]float64, cols)
	s.Stds = make([]float64, cols)
	for j, name := range X.Columns {
		col, err := X.Column(name)
		if err != nil {
			return err
		}
		mean, err := stats.Mean(col)
		if err != nil {
			return core.NewComputeError("standard_scaler fit", err)
		}
		std, err := stats.StandardDeviation(col)
		if err != nil {
			return core.NewComputeError("standard_scaler fit", err)
		}
		s.Means[j] = mean
		s.Stds[j] = std
	}
	return nil
}

func (s *StandardScaler) Transform(X *tabular.Matrix) (*tabular.Matrix, error) {
	if s.Means == nil {
		return nil, core.NewComputeError("standard_scaler", errNotFitted)
	}
	if X.ColumnCount() != len(s.Means) {
		return nil, core.NewComputeError("standard_scaler", errShapeMismatch)
	}
	out := tabular.NewMatrix(X.Columns, X.RowCount())
	for i, row := range X.Rows {
		for j, v := range row {
			if s.WithMean {
				v -= s.Means[j]
			}
			if s.WithStd && s.Stds[j] != 0 {
				v /= s.Stds[j]
			}
			out.Rows[i][j] = v
		}
	}
	return out, nil
}

// MinMaxScaler rescales each column into [RangeMin, RangeMax].
type MinMaxScaler struct {
	RangeMin float64
	RangeMax float64

	Mins []float64
	Maxs []float64
}

func NewMinMaxScaler(rangeMin, rangeMax float64) *MinMaxScaler {
	return &MinMaxScaler{RangeMin: rangeMin, RangeMax: rangeMax}
}

func (s *MinMaxScaler) Fit(X *tabular.Matrix) error {
	cols := X.ColumnCount()
	s.Mins = make([]float64, cols)
	s.Maxs = make([]float64, cols)
	for j, name := range X.Columns {
		col, err := X.Column(name)
		if err != nil {
			return err
		}
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range col {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		s.Mins[j] = lo
		s.Maxs[j] = hi
	}
	return nil
}

func (s *MinMaxScaler) Transform(X *tabular.Matrix) (*tabular.Matrix, error) {
	if s.Mins == nil {
		return nil, core.NewComputeError("min_max_scaler", errNotFitted)
	}
	if X.ColumnCount() != len(s.Mins) {
		return nil, core.NewComputeError("min_max_scaler", errShapeMismatch)
	}
	span := s.RangeMax - s.RangeMin
	out := tabular.NewMatrix(X.Columns, X.RowCount())
	for i, row := range X.Rows {
		for j, v := range row {
			if s.Maxs[j] != s.Mins[j] {
				v = (v - s.Mins[j]) / (s.Maxs[j] - s.Mins[j])
			} else {
				v = 0
			}
			out.Rows[i][j] = s.RangeMin + v*span
		}
	}
	return out, nil
}

// RobustScaler centers on the median and scales by the interquartile
// range, so outliers do not dominate the learned statistics.
type RobustScaler struct {
	Medians []float64
	IQRs    []float64
}

func NewRobustScaler() *RobustScaler {
	return &RobustScaler{}
}

func (s *RobustScaler) Fit(X *tabular.Matrix) error {
	cols := X.ColumnCount()
	s.Medians = make([]float64, cols)
	s.IQRs = make([]float64, cols)
	for j, name := range X.Columns {
		col, err := X.Column(name)
		if err != nil {
			return err
		}
		median, err := stats.Median(col)
		if err != nil {
			return core.NewComputeError("robust_scaler fit", err)
		}
		q75, err := stats.Percentile(col, 75)
		if err != nil {
			return core.NewComputeError("robust_scaler fit", err)
		}
		q25, err := stats.Percentile(col, 25)
		if err != nil {
			return core.NewComputeError("robust_scaler fit", err)
		}
		s.Medians[j] = median
		s.IQRs[j] = q75 - q25
	}
	return nil
}

func (s *RobustScaler) Transform(X *tabular.Matrix) (*tabular.Matrix, error) {
	if s.Medians == nil {
		return nil, core.NewComputeError("robust_scaler", errNotFitted)
	}
	if X.ColumnCount() != len(s.Medians) {
		return nil, core.NewComputeError("robust_scaler", errShapeMismatch)
	}
	out := tabular.NewMatrix(X.Columns, X.RowCount())
	for i, row := range X.Rows {
		for j, v := range row {
			v -= s.Medians[j]
			if s.IQRs[j] != 0 {
				v /= s.IQRs[j]
			}
			out.Rows[i][j] = v
		}
	}
	return out, nil
}

// Passthrough forwards its columns unchanged. Useful as an identity
// stage when a column subset should reach the classifier untouched.
type Passthrough struct {
	ColumnNames []string
}

func NewPassthrough() *Passthrough {
	return &Passthrough{}
}

func (p *Passthrough) Fit(X *tabular.Matrix) error {
	p.ColumnNames = make([]string, len(X.Columns))
	copy(p.ColumnNames, X.Columns)
	return nil
}

func (p *Passthrough) Transform(X *tabular.Matrix) (*tabular.Matrix, error) {
	if X.ColumnCount() != len(p.ColumnNames) {
		return nil, core.NewComputeError("passthrough", errShapeMismatch)
	}
	out := tabular.NewMatrix(X.Columns, X.RowCount())
	for i, row := range X.Rows {
		copy(out.Rows[i], row)
	}
	return out, nil
}
