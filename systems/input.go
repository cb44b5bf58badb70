package systems

import (
	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource is the raw device state sampled once per tick.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	CursorPosition() (x, y int)
}

type ebitenInput struct{}

func (ebitenInput) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }
func (ebitenInput) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}
func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

// EbitenInput reads keyboard and mouse straight from ebiten.
var EbitenInput InputSource = ebitenInput{}

var mouseButtonMasks = []struct {
	button ebiten.MouseButton
	mask   int
}{
	{ebiten.MouseButtonLeft, cfg.MouseButtonPrimary},
	{ebiten.MouseButtonRight, cfg.MouseButtonSecondary},
	{ebiten.MouseButtonMiddle, cfg.MouseButtonMiddle},
}

// NewUpdateInput returns a system that polls src into the Input component.
// Must run BEFORE the tracker and integrator in the system order.
func NewUpdateInput(src InputSource) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if src.IsKeyPressed(key) {
					input.Current[actionID] = true
				}
			}
		}

		prevButtons := input.Mouse.Buttons
		buttons := 0
		for _, m := range mouseButtonMasks {
			if src.IsMouseButtonPressed(m.button) {
				buttons |= m.mask
			}
		}
		x, y := src.CursorPosition()
		input.Mouse = components.MouseData{
			X:           x,
			Y:           y,
			Buttons:     buttons,
			JustPressed: buttons&^prevButtons != 0,
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
