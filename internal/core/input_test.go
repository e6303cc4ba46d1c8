package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionConfirm) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionConfirm)
	f.Set(ActionPause)
	if !f.Has(ActionConfirm) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionConfirm) {
		t.Error("Clear should drop actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRestart) {
		t.Error("Zero frame should report no actions")
	}
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestInputFrameTapsKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.Tap(4)
	f.Tap(0)
	f.Tap(4)

	if len(f.Taps) != 3 || f.Taps[0] != 4 || f.Taps[1] != 0 || f.Taps[2] != 4 {
		t.Fatalf("Taps = %v, expected [4 0 4]", f.Taps)
	}

	f.Clear()
	if len(f.Taps) != 0 {
		t.Errorf("Clear should drop taps, got %v", f.Taps)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Tap(7)

	clone := f.Clone()
	f.Clear()
	f.Tap(1)

	if !clone.Has(ActionConfirm) {
		t.Error("Clone should keep actions after original is cleared")
	}
	if len(clone.Taps) != 1 || clone.Taps[0] != 7 {
		t.Errorf("Clone taps = %v, expected [7]", clone.Taps)
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
