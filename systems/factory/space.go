package factory

import (
	"github.com/automoto/moveable/archetypes"
	"github.com/automoto/moveable/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateViewport creates the viewport entity sized width×height pixels.
func CreateViewport(ecs *ecs.ECS, width, height int) *donburi.Entry {
	viewport := archetypes.Viewport.Spawn(ecs)
	components.Space.Set(viewport, NewSpace(width, height))
	return viewport
}

// NewSpace returns a resolv space made of one cell covering width×height
// pixels, so the cell size is the viewport size. Sizes below 1 are raised to 1.
func NewSpace(width, height int) *resolv.Space {
	width, height = max(width, 1), max(height, 1)
	return resolv.NewSpace(width, height, width, height)
}

// SpaceSize returns the pixel size covered by space.
func SpaceSize(space *resolv.Space) (width, height float64) {
	return float64(space.Width() * space.CellWidth), float64(space.Height() * space.CellHeight)
}
