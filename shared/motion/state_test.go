package motion

import (
	"math"
	"testing"
)

func TestDeltaSeedsOnFirstCall(t *testing.T) {
	s := NewState()
	if got := s.Delta(500); got != 1 {
		t.Fatalf("first delta = %v, want 1", got)
	}
	if !s.Seeded || s.Start != 500 || s.Time != 500 {
		t.Fatalf("state not seeded: %+v", s)
	}
}

func TestDeltaRatio(t *testing.T) {
	s := NewState()
	s.Delta(1000)
	got := s.Delta(1016)
	want := 1000.0 / 1016.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("delta = %v, want %v", got, want)
	}
	if s.Start != 1016 {
		t.Fatalf("start = %v, want 1016", s.Start)
	}
	if s.LastDelta != got {
		t.Fatalf("LastDelta = %v, want %v", s.LastDelta, got)
	}
}

func TestDeltaZeroTimestamp(t *testing.T) {
	s := NewState()
	if got := s.Delta(0); got != 1 {
		t.Fatalf("delta at t=0 = %v, want 1", got)
	}
	if got := s.Delta(0); math.IsNaN(got) || got != 1 {
		t.Fatalf("repeated t=0 delta = %v, want 1", got)
	}
}

func TestDeltaElapsed(t *testing.T) {
	s := NewState()
	s.Mode = DeltaElapsed
	if got := s.Delta(100); got != 0 {
		t.Fatalf("first elapsed delta = %v, want 0", got)
	}
	got := s.Delta(100 + 2*FrameMillis)
	if math.Abs(got-2) > 1e-9 {
		t.Fatalf("elapsed delta = %v, want 2", got)
	}
}

func TestDefaultTimescale(t *testing.T) {
	if s := NewState(); math.Abs(s.TimescaleFactor-10.0/3.0) > 1e-12 {
		t.Fatalf("timescale = %v", s.TimescaleFactor)
	}
}
