package tags

import "github.com/yohamta/donburi"

var (
	Moveable = donburi.NewTag().SetName("Moveable")
)

// Resolv tags
const (
	ResolvMoveable = "moveable"
)
