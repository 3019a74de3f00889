package dataset

import (
	"log"
	"math"
	"strconv"

	"github.com/montanaflynn/stats"

	"heatcls/domain/core"
	"heatcls/domain/tabular"
)

// Preparer cleans a raw frame and splits it into a feature matrix and
// target vector. Cleaning policy:
//   - numeric columns are kept, missing cells imputed with the column median
//   - non-numeric columns with more distinct values than the configured
//     limit are dropped (id-like columns carry no signal)
//   - remaining non-numeric columns are label-encoded in first-seen order
//   - rows with a missing target are dropped
type Preparer struct {
	UniqueValuesLimit int
	TargetVariable    string
}

func NewPreparer(uniqueValuesLimit int, targetVariable string) *Preparer {
	return &Preparer{
		UniqueValuesLimit: uniqueValuesLimit,
		TargetVariable:    targetVariable,
	}
}

// Prepare runs the cleaning policy and feature/target split.
func (p *Preparer) Prepare(frame *tabular.Frame) (*tabular.Matrix, []float64, error) {
	if !frame.HasColumn(p.TargetVariable) {
		return nil, nil, core.NewMissingColumnError(p.TargetVariable)
	}

	// Drop rows without a target value first so encodings and medians
	// only ever see usable rows.
	kept := make([]tabular.RawRow, 0, len(frame.Rows))
	for _, row := range frame.Rows {
		if row[p.TargetVariable] != "" {
			kept = append(kept, row)
		}
	}
	if dropped := len(frame.Rows) - len(kept); dropped > 0 {
		log.Printf("[Preparer] Dropped %d rows with missing target %q", dropped, p.TargetVariable)
	}
	if len(kept) == 0 {
		return nil, nil, core.ErrEmptyTarget
	}

	featureColumns := make([]string, 0, len(frame.Headers))
	columnValues := make([][]float64, 0, len(frame.Headers))
	for _, header := range frame.Headers {
		if header == p.TargetVariable {
			continue
		}
		values, keep := p.cleanColumn(header, kept)
		if !keep {
			continue
		}
		featureColumns = append(featureColumns, header)
		columnValues = append(columnValues, values)
	}

	target := encodeColumn(p.TargetVariable, kept)

	features := tabular.NewMatrix(featureColumns, len(kept))
	for j, values := range columnValues {
		for i, v := range values {
			features.Rows[i][j] = v
		}
	}

	log.Printf("[Preparer] Prepared %d rows, %d feature columns (target %q)",
		features.RowCount(), features.ColumnCount(), p.TargetVariable)
	return features, target, nil
}

// cleanColumn coerces one column to numeric values, or reports that the
// column should be dropped.
func (p *Preparer) cleanColumn(header string, rows []tabular.RawRow) ([]float64, bool) {
	numeric := true
	distinct := make(map[string]bool)
	for _, row := range rows {
		cell := row[header]
		if cell == "" {
			continue
		}
		distinct[cell] = true
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numeric = false
		}
	}

	if len(distinct) == 0 {
		log.Printf("[Preparer] Dropping empty column %q", header)
		return nil, false
	}
	if !numeric && len(distinct) > p.UniqueValuesLimit {
		log.Printf("[Preparer] Dropping high-cardinality column %q (%d distinct values, limit %d)",
			header, len(distinct), p.UniqueValuesLimit)
		return nil, false
	}

	var values []float64
	if numeric {
		values = make([]float64, len(rows))
		for i, row := range rows {
			cell := row[header]
			if cell == "" {
				values[i] = math.NaN()
				continue
			}
			v, _ := strconv.ParseFloat(cell, 64)
			values[i] = v
		}
	} else {
		values = encodeColumn(header, rows)
	}

	return imputeMedian(header, values), true
}

// encodeColumn label-encodes a column in first-seen order. Missing
// cells become NaN for downstream imputation.
func encodeColumn(header string, rows []tabular.RawRow) []float64 {
	codes := make(map[string]float64)
	values := make([]float64, len(rows))
	for i, row := range rows {
		cell := row[header]
		if cell == "" {
			values[i] = math.NaN()
			continue
		}
		if v, err := strconv.ParseFloat(cell, 64); err == nil {
			values[i] = v
			continue
		}
		code, ok := codes[cell]
		if !ok {
			code = float64(len(codes))
			codes[cell] = code
		}
		values[i] = code
	}
	return values
}

// imputeMedian replaces NaN cells with the median of the observed
// values.
func imputeMedian(header string, values []float64) []float64 {
	observed := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			observed = append(observed, v)
		}
	}
	if len(observed) == len(values) {
		return values
	}

	median, err := stats.Median(observed)
	if err != nil {
		median = 0
	}
	log.Printf("[Preparer] Imputing %d missing cells in %q with median %.6g",
		len(values)-len(observed), header, median)
	for i, v := range values {
		if math.IsNaN(v) {
			values[i] = median
		}
	}
	return values
}
