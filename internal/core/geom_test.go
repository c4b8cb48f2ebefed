package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last cell", 29, 24, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
		{"negative", -1, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestSizeCenter(t *testing.T) {
	tests := []struct {
		size         Size
		row, column  int
		expectedCell int
	}{
		{Size{Rows: 24, Columns: 80}, 12, 40, 1920},
		{Size{Rows: 25, Columns: 81}, 12, 40, 2025},
		{Size{Rows: 1, Columns: 1}, 0, 0, 1},
		{Size{Rows: 0, Columns: 80}, 0, 40, 0},
	}

	for _, tc := range tests {
		row, column := tc.size.Center()
		if row != tc.row || column != tc.column {
			t.Errorf("%+v.Center() = (%d, %d), expected (%d, %d)", tc.size, row, column, tc.row, tc.column)
		}
		if got := tc.size.Cells(); got != tc.expectedCell {
			t.Errorf("%+v.Cells() = %d, expected %d", tc.size, got, tc.expectedCell)
		}
	}
}

func TestOffsetAdd(t *testing.T) {
	o := Offset{X: 3, Y: -2}

	if got := o.Add(1, 0); got != (Offset{X: 4, Y: -2}) {
		t.Errorf("Add(1, 0) = %+v", got)
	}
	if got := o.Add(0, -1); got != (Offset{X: 3, Y: -3}) {
		t.Errorf("Add(0, -1) = %+v", got)
	}
	if o != (Offset{X: 3, Y: -2}) {
		t.Error("Add must not mutate the receiver")
	}
}
