package common

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesTriggers(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(30 * time.Millisecond)
	for i := 0; i < 5; i++ {
		d.Trigger(func() { fired.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("Expected one coalesced firing, got %d", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)
	d.Trigger(func() { fired.Add(1) })
	d.Stop()
	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("Expected no firing after Stop, got %d", got)
	}
}

func TestDebouncerLatestCallbackWins(t *testing.T) {
	var got atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)
	d.Trigger(func() { got.Store(1) })
	d.Trigger(func() { got.Store(2) })
	time.Sleep(80 * time.Millisecond)
	if got.Load() != 2 {
		t.Errorf("Expected the latest callback to run, got %d", got.Load())
	}
}
