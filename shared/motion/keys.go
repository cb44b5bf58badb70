package motion

// KeyCode is a numeric key code in the legacy DOM keyCode space.
type KeyCode int

const (
	KeyLeft  KeyCode = 37
	KeyUp    KeyCode = 38
	KeyRight KeyCode = 39
	KeyDown  KeyCode = 40
)

// String returns a short direction name, or "unmapped".
func (k KeyCode) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	default:
		return "unmapped"
	}
}
