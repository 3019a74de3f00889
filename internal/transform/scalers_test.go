package transform

import (
	"math"
	"testing"

	"heatcls/domain/core"
	"heatcls/domain/tabular"
)

func matrixOf(columns []string, rows [][]float64) *tabular.Matrix {
	m := tabular.NewMatrix(columns, len(rows))
	for i, row := range rows {
		copy(m.Rows[i], row)
	}
	return m
}

func TestStandardScaler_CentersAndScales(t *testing.T) {
	X := matrixOf([]string{"a"}, [][]float64{{2}, {4}, {6}, {8}})

	scaler := NewStandardScaler(true, true)
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	out, err := scaler.Transform(X)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	var sum, sumSq float64
	for _, row := range out.Rows {
		sum += row[0]
		sumSq += row[0] * row[0]
	}
	n := float64(len(out.Rows))
	if mean := sum / n; math.Abs(mean) > 1e-9 {
		t.Errorf("Expected zero mean after scaling, got %f", mean)
	}
	if variance := sumSq / n; math.Abs(variance-1) > 1e-9 {
		t.Errorf("Expected unit variance after scaling, got %f", variance)
	}
}

func TestStandardScaler_WithoutMeanKeepsCenter(t *testing.T) {
	X := matrixOf([]string{"a"}, [][]float64{{10}, {20}, {30}})

	scaler := NewStandardScaler(false, false)
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	out, err := scaler.Transform(X)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	for i, row := range out.Rows {
		if row[0] != X.Rows[i][0] {
			t.Errorf("Row %d changed with both options off: %f != %f", i, row[0], X.Rows[i][0])
		}
	}
}

func TestStandardScaler_ConstantColumnTransformsToZero(t *testing.T) {
	X := matrixOf([]string{"a"}, [][]float64{{5}, {5}, {5}})

	scaler := NewStandardScaler(true, true)
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	out, err := scaler.Transform(X)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	for i, row := range out.Rows {
		if row[0] != 0 {
			t.Errorf("Row %d: expected 0 for constant column, got %f", i, row[0])
		}
	}
}

func TestStandardScaler_TransformBeforeFit(t *testing.T) {
	X := matrixOf([]string{"a"}, [][]float64{{1}})

	_, err := NewStandardScaler(true, true).Transform(X)
	if err == nil {
		t.Fatal("Expected error for unfitted scaler")
	}
	if !core.IsComputeError(err) {
		t.Errorf("Expected ComputeError, got %v", err)
	}
}

func TestMinMaxScaler_MapsIntoRange(t *testing.T) {
	X := matrixOf([]string{"a"}, [][]float64{{10}, {15}, {20}})

	scaler := NewMinMaxScaler(0, 1)
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	out, err := scaler.Transform(X)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	want := []float64{0, 0.5, 1}
	for i, row := range out.Rows {
		if math.Abs(row[0]-want[i]) > 1e-12 {
			t.Errorf("Row %d: expected %f, got %f", i, want[i], row[0])
		}
	}
}

func TestMinMaxScaler_CustomRange(t *testing.T) {
	X := matrixOf([]string{"a"}, [][]float64{{0}, {10}})

	scaler := NewMinMaxScaler(-1, 1)
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	out, err := scaler.Transform(X)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if out.Rows[0][0] != -1 || out.Rows[1][0] != 1 {
		t.Errorf("Expected [-1, 1], got [%f, %f]", out.Rows[0][0], out.Rows[1][0])
	}
}

func TestMinMaxScaler_ConstantColumnMapsToRangeMin(t *testing.T) {
	X := matrixOf([]string{"a"}, [][]float64{{7}, {7}})

	scaler := NewMinMaxScaler(0, 1)
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	out, err := scaler.Transform(X)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	for i, row := range out.Rows {
		if row[0] != 0 {
			t.Errorf("Row %d: expected range minimum for constant column, got %f", i, row[0])
		}
	}
}

func TestRobustScaler_CentersOnMedian(t *testing.T) {
	// Median 3, IQR computed over 1..5; the outlier barely moves either.
	X := matrixOf([]string{"a"}, [][]float64{{1}, {2}, {3}, {4}, {5}})

	scaler := NewRobustScaler()
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	out, err := scaler.Transform(X)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if out.Rows[2][0] != 0 {
		t.Errorf("Expected median row to map to 0, got %f", out.Rows[2][0])
	}
	if out.Rows[0][0] >= 0 || out.Rows[4][0] <= 0 {
		t.Errorf("Expected symmetric signs around the median, got %f and %f", out.Rows[0][0], out.Rows[4][0])
	}
}

func TestScalers_ShapeMismatchRejected(t *testing.T) {
	narrow := matrixOf([]string{"a"}, [][]float64{{1}, {2}})
	wide := matrixOf([]string{"a", "b"}, [][]float64{{1, 2}, {3, 4}})

	scaler := NewStandardScaler(true, true)
	if err := scaler.Fit(narrow); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if _, err := scaler.Transform(wide); err == nil {
		t.Fatal("Expected error for column count mismatch")
	}
}

func TestPassthrough_CopiesInput(t *testing.T) {
	X := matrixOf([]string{"a", "b"}, [][]float64{{1, 2}, {3, 4}})

	p := NewPassthrough()
	if err := p.Fit(X); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	out, err := p.Transform(X)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	out.Rows[0][0] = 99
	if X.Rows[0][0] == 99 {
		t.Error("Transform must copy rows, not alias the input")
	}
}
