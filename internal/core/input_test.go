package core

import "testing"

func TestActionApply(t *testing.T) {
	start := Offset{X: 5, Y: -7}

	tests := []struct {
		action   Action
		expected Offset
		quit     bool
	}{
		{ActionUp, Offset{X: 5, Y: -6}, false},
		{ActionDown, Offset{X: 5, Y: -8}, false},
		{ActionLeft, Offset{X: 4, Y: -7}, false},
		{ActionRight, Offset{X: 6, Y: -7}, false},
		{ActionQuit, start, true},
		{ActionNone, start, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			got, quit := tc.action.Apply(start)
			if got != tc.expected {
				t.Errorf("Apply() offset = %+v, expected %+v", got, tc.expected)
			}
			if quit != tc.quit {
				t.Errorf("Apply() quit = %v, expected %v", quit, tc.quit)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionQuit.String() != "Quit" {
		t.Errorf("ActionQuit.String() = %q", ActionQuit.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

func TestColorANSIIndex(t *testing.T) {
	tests := []struct {
		color Color
		index int
		name  string
	}{
		{ColorBlack, 0, "black"},
		{ColorGreen, 2, "green"},
		{ColorCyan, 6, "cyan"},
	}

	for _, tc := range tests {
		if got := tc.color.ANSIIndex(); got != tc.index {
			t.Errorf("%s.ANSIIndex() = %d, expected %d", tc.name, got, tc.index)
		}
		if tc.color.String() != tc.name {
			t.Errorf("String() = %q, expected %q", tc.color.String(), tc.name)
		}
	}
}
