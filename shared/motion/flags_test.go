package motion

import "testing"

func TestPressReleaseRoundTrip(t *testing.T) {
	starts := []Flags{
		{},
		{Left: true},
		{Up: true, Right: true},
		{Left: true, Up: true, Right: true, Down: true},
	}
	codes := []KeyCode{KeyLeft, KeyUp, KeyRight, KeyDown}

	for _, start := range starts {
		for _, code := range codes {
			f := start
			if f.flag(code) {
				// Already held: release alone must clear and press must restore.
				f.Release(code)
				f.Press(code)
			} else {
				f.Press(code)
				f.Release(code)
			}
			if f != start {
				t.Errorf("start %+v code %v: got %+v", start, code, f)
			}
		}
	}
}

func TestUnmappedCodesIgnored(t *testing.T) {
	f := Flags{Up: true}
	for _, code := range []KeyCode{0, 13, 32, 36, 41, 65, -1} {
		if f.Press(code) {
			t.Errorf("Press(%d) reported mapped", code)
		}
		if f.Release(code) {
			t.Errorf("Release(%d) reported mapped", code)
		}
	}
	if f != (Flags{Up: true}) {
		t.Fatalf("flags changed: %+v", f)
	}
}

func TestDiagonal(t *testing.T) {
	tests := []struct {
		f    Flags
		want bool
	}{
		{Flags{}, false},
		{Flags{Left: true}, false},
		{Flags{Left: true, Right: true}, false},
		{Flags{Up: true, Down: true}, false},
		{Flags{Left: true, Up: true}, true},
		{Flags{Left: true, Down: true}, true},
		{Flags{Right: true, Up: true}, true},
		{Flags{Right: true, Down: true}, true},
	}
	for _, tt := range tests {
		if got := tt.f.Diagonal(); got != tt.want {
			t.Errorf("%+v.Diagonal() = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestKeyCodeString(t *testing.T) {
	if KeyLeft.String() != "left" || KeyDown.String() != "down" || KeyCode(99).String() != "unmapped" {
		t.Fatal("unexpected key names")
	}
}

func (f Flags) flag(code KeyCode) bool {
	switch code {
	case KeyLeft:
		return f.Left
	case KeyUp:
		return f.Up
	case KeyRight:
		return f.Right
	case KeyDown:
		return f.Down
	}
	return false
}
