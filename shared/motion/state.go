package motion

// DefaultTimescale is the speed multiplier applied to the base speed.
const DefaultTimescale = 3.0 + 1.0/3.0

// FrameMillis is the nominal duration of one 60 Hz frame.
const FrameMillis = 1000.0 / 60.0

// DeltaMode selects how Delta turns two timestamps into a scale factor.
type DeltaMode int

const (
	// DeltaRatio divides the previous timestamp by the current one.
	// The result stays close to 1 and drifts with time since start.
	DeltaRatio DeltaMode = iota
	// DeltaElapsed measures the time between frames in 60 Hz frame units.
	DeltaElapsed
)

// State carries timing between frames for one moveable.
type State struct {
	Start           float64 // previous frame timestamp (ms)
	Time            float64 // current frame timestamp (ms)
	Seeded          bool
	TimescaleFactor float64
	Mode            DeltaMode
	LastDelta       float64
}

// NewState returns an unseeded state using the default timescale and ratio deltas.
func NewState() State {
	return State{TimescaleFactor: DefaultTimescale, Mode: DeltaRatio}
}

// Delta advances the state to timestamp t and returns the frame scale factor.
// The first call seeds both timestamps to t.
func (s *State) Delta(t float64) float64 {
	if !s.Seeded {
		s.Start = t
		s.Time = t
		s.Seeded = true
	}
	s.Time = t

	var delta float64
	switch s.Mode {
	case DeltaElapsed:
		delta = (s.Time - s.Start) / FrameMillis
		if delta < 0 {
			delta = 0
		}
	default:
		if s.Time == 0 {
			delta = 1
		} else {
			delta = s.Start / s.Time
		}
	}

	s.Start = t
	s.LastDelta = delta
	return delta
}
