package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the rendered rectangle of an entity.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the viewport. It is a single cell whose size is the viewport size.
var Space = donburi.NewComponentType[resolv.Space]()
