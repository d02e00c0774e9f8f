package core

import (
	"testing"
	"time"
)

func TestInputFrameCounts(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionRight)
	f.Set(ActionConfirm)
	f.Click(3, 4)

	if f.Count(ActionRight) != 2 {
		t.Errorf("Count(Right) = %d, expected 2", f.Count(ActionRight))
	}
	if !f.Has(ActionConfirm) || f.Has(ActionLeft) {
		t.Error("Has() reports wrong actions")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Pointer{X: 3, Y: 4}) {
		t.Errorf("Clicks = %v, expected [{3 4}]", f.Clicks)
	}

	f.Clear()
	if f.Has(ActionRight) || len(f.Clicks) != 0 {
		t.Error("Clear() should drop all actions and clicks")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestTickInterval(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickInterval(); got != 20*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 20ms", got)
	}
	if got := (RuntimeConfig{}).TickInterval(); got != time.Second/60 {
		t.Errorf("TickInterval() with zero rate = %v, expected 1/60s", got)
	}
}
