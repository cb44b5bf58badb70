package motion

// Flags holds the four held-direction markers of the moveable.
type Flags struct {
	Left  bool
	Up    bool
	Right bool
	Down  bool
}

// Press marks the direction for code as held.
// Unmapped codes leave the flags untouched and return false.
func (f *Flags) Press(code KeyCode) bool {
	return f.set(code, true)
}

// Release clears the direction for code.
// Unmapped codes leave the flags untouched and return false.
func (f *Flags) Release(code KeyCode) bool {
	return f.set(code, false)
}

func (f *Flags) set(code KeyCode, held bool) bool {
	switch code {
	case KeyLeft:
		f.Left = held
	case KeyUp:
		f.Up = held
	case KeyRight:
		f.Right = held
	case KeyDown:
		f.Down = held
	default:
		return false
	}
	return true
}

// Diagonal reports whether a horizontal and a vertical direction are held together.
func (f Flags) Diagonal() bool {
	return (f.Left || f.Right) && (f.Up || f.Down)
}

// Any reports whether any direction is held.
func (f Flags) Any() bool {
	return f.Left || f.Up || f.Right || f.Down
}
