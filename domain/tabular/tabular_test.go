package tabular

import (
	"testing"

	"heatcls/domain/core"
)

func TestFrame_Append(t *testing.T) {
	train := &Frame{
		Headers: []string{"a", "target"},
		Rows:    []RawRow{{"a": "1", "target": "0"}, {"a": "2", "target": "1"}},
	}
	test := &Frame{
		Headers: []string{"a", "target"},
		Rows:    []RawRow{{"a": "3", "target": "1"}},
	}

	union := train.Append(test)
	if union.RowCount() != 3 {
		t.Fatalf("Expected 3 rows in union, got %d", union.RowCount())
	}
	if union.Rows[2]["a"] != "3" {
		t.Errorf("Appended rows must come last, got %q", union.Rows[2]["a"])
	}
	if train.RowCount() != 2 || test.RowCount() != 1 {
		t.Error("Append must not mutate its inputs")
	}
}

func TestMatrix_ColumnAndSelect(t *testing.T) {
	m := NewMatrix([]string{"a", "b", "c"}, 2)
	m.Rows[0] = []float64{1, 2, 3}
	m.Rows[1] = []float64{4, 5, 6}

	b, err := m.Column("b")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if b[0] != 2 || b[1] != 5 {
		t.Errorf("Expected column b [2 5], got %v", b)
	}

	sub, err := m.Select([]string{"c", "a"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if sub.Columns[0] != "c" || sub.Columns[1] != "a" {
		t.Errorf("Select must preserve the requested order, got %v", sub.Columns)
	}
	if sub.Rows[0][0] != 3 || sub.Rows[0][1] != 1 {
		t.Errorf("Expected first row [3 1], got %v", sub.Rows[0])
	}
}

func TestMatrix_MissingColumnIsDataError(t *testing.T) {
	m := NewMatrix([]string{"a"}, 1)

	_, err := m.Column("ghost")
	if err == nil {
		t.Fatal("Expected error for missing column")
	}
	if !core.IsDataError(err) {
		t.Errorf("Expected DataError, got %v", err)
	}

	_, err = m.Select([]string{"a", "ghost"})
	if err == nil {
		t.Fatal("Expected error for missing column in selection")
	}
}

func TestMatrix_TakeRowsCopiesStorage(t *testing.T) {
	m := NewMatrix([]string{"a"}, 3)
	m.Rows[0][0], m.Rows[1][0], m.Rows[2][0] = 10, 20, 30

	sub := m.TakeRows([]int{2, 0})
	if sub.Rows[0][0] != 30 || sub.Rows[1][0] != 10 {
		t.Errorf("Expected rows [30 10], got %v", sub.Rows)
	}

	sub.Rows[0][0] = 99
	if m.Rows[2][0] != 30 {
		t.Error("TakeRows must copy row storage, not alias it")
	}
}

func TestHStack(t *testing.T) {
	left := NewMatrix([]string{"a"}, 2)
	left.Rows[0][0], left.Rows[1][0] = 1, 2
	right := NewMatrix([]string{"b", "c"}, 2)
	right.Rows[0] = []float64{3, 4}
	right.Rows[1] = []float64{5, 6}

	stacked := HStack(left, right)
	if got := stacked.Columns; len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("Expected columns [a b c], got %v", got)
	}
	if stacked.Rows[1][0] != 2 || stacked.Rows[1][2] != 6 {
		t.Errorf("Expected second row [2 5 6], got %v", stacked.Rows[1])
	}
}

func TestTakeValues(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	got := TakeValues(values, []int{3, 1})
	if got[0] != 40 || got[1] != 20 {
		t.Errorf("Expected [40 20], got %v", got)
	}
}
