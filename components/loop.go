package components

import "github.com/yohamta/donburi"

// LoopData tracks the lifetime of the frame loop.
type LoopData struct {
	Frame   uint64
	Stopped bool
	Err     error
}

var Loop = donburi.NewComponentType[LoopData]()
