package tabular

import (
	"heatcls/domain/core"
)

// Matrix is a numeric feature matrix with named, ordered columns.
// Rows is row-major: len(Rows[i]) == len(Columns).
type Matrix struct {
	Columns []string
	Rows    [][]float64
}

// NewMatrix allocates an empty matrix with the given column names and
// row capacity.
func NewMatrix(columns []string, rowCount int) *Matrix {
	rows := make([][]float64, rowCount)
	for i := range rows {
		rows[i] = make([]float64, len(columns))
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Matrix{Columns: cols, Rows: rows}
}

// RowCount returns the number of rows.
func (m *Matrix) RowCount() int {
	return len(m.Rows)
}

// ColumnCount returns the number of columns.
func (m *Matrix) ColumnCount() int {
	return len(m.Columns)
}

// ColumnIndex returns the position of the named column, or -1.
func (m *Matrix) ColumnIndex(name string) int {
	for i, c := range m.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the named column's values. Missing columns
// are a data error, surfaced at transform time rather than build time.
func (m *Matrix) Column(name string) ([]float64, error) {
	idx := m.ColumnIndex(name)
	if idx < 0 {
		return nil, core.NewMissingColumnError(name)
	}
	out := make([]float64, len(m.Rows))
	for i, row := range m.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Select returns a new matrix holding only the named columns, in the
// given order.
func (m *Matrix) Select(names []string) (*Matrix, error) {
	indices := make([]int, len(names))
	for i, name := range names {
		idx := m.ColumnIndex(name)
		if idx < 0 {
			return nil, core.NewMissingColumnError(name)
		}
		indices[i] = idx
	}
	out := NewMatrix(names, len(m.Rows))
	for i, row := range m.Rows {
		for j, idx := range indices {
			out.Rows[i][j] = row[idx]
		}
	}
	return out, nil
}

// TakeRows returns a new matrix holding the rows at the given indices,
// in the given order. Column names are shared semantics, copied storage.
func (m *Matrix) TakeRows(indices []int) *Matrix {
	out := NewMatrix(m.Columns, len(indices))
	for i, idx := range indices {
		copy(out.Rows[i], m.Rows[idx])
	}
	return out
}

// HStack concatenates matrices column-wise. All inputs must share the
// same row count.
func HStack(parts ...*Matrix) *Matrix {
	if len(parts) == 0 {
		return &Matrix{}
	}
	total := 0
	for _, p := range parts {
		total += p.ColumnCount()
	}
	columns := make([]string, 0, total)
	for _, p := range parts {
		columns = append(columns, p.Columns...)
	}
	out := NewMatrix(columns, parts[0].RowCount())
	for i := range out.Rows {
		offset := 0
		for _, p := range parts {
			copy(out.Rows[i][offset:], p.Rows[i])
			offset += p.ColumnCount()
		}
	}
	return out
}

// TakeValues returns the values of a target vector at the given indices.
func TakeValues(values []float64, indices []int) []float64 {
	out := make([]float64, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}
	return out
}
