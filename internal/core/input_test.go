package core

import "testing"

func TestActionDelta(t *testing.T) {
	tests := []struct {
		action Action
		dx, dy int
		ok     bool
	}{
		{ActionUp, 0, -1, true},
		{ActionDown, 0, 1, true},
		{ActionLeft, -1, 0, true},
		{ActionRight, 1, 0, true},
		{ActionNone, 0, 0, false},
		{ActionRestart, 0, 0, false},
		{ActionQuit, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dx, dy, ok := tc.action.Delta()
			if dx != tc.dx || dy != tc.dy || ok != tc.ok {
				t.Errorf("Delta() = (%d, %d, %v), expected (%d, %d, %v)", dx, dy, ok, tc.dx, tc.dy, tc.ok)
			}
			if tc.action.IsDirection() != tc.ok {
				t.Errorf("IsDirection() = %v, expected %v", tc.action.IsDirection(), tc.ok)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
