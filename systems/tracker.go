package systems

import (
	"log"

	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/automoto/moveable/shared/motion"
	"github.com/yohamta/donburi/ecs"
)

var directionActions = []cfg.ActionID{
	cfg.ActionMoveLeft,
	cfg.ActionMoveUp,
	cfg.ActionMoveRight,
	cfg.ActionMoveDown,
}

// UpdateTracker turns key and mouse edges into moveable state changes.
// Must run AFTER the input system and BEFORE UpdateMotion.
func UpdateTracker(e *ecs.ECS) {
	input := getOrCreateInput(e)

	for _, id := range directionActions {
		code := cfg.Input.Bindings[id].Code
		state := GetAction(input, id)
		if state.JustPressed {
			OnKeyDown(e, code)
		}
		if state.JustReleased {
			OnKeyUp(e, code)
		}
	}

	if input.Mouse.JustPressed {
		OnMouseDown(e, input.Mouse)
	}
}

// OnKeyDown marks the direction for code as held. Unmapped codes are ignored.
func OnKeyDown(e *ecs.ECS, code motion.KeyCode) {
	if cfg.Debug.LogInput {
		log.Printf("keydown code=%d (%s)", code, code)
	}
	m, ok := moveable(e)
	if !ok {
		return
	}
	m.Flags.Press(code)
}

// OnKeyUp clears the direction for code. Unmapped codes are ignored.
func OnKeyUp(e *ecs.ECS, code motion.KeyCode) {
	if cfg.Debug.LogInput {
		log.Printf("keyup code=%d (%s)", code, code)
	}
	m, ok := moveable(e)
	if !ok {
		return
	}
	m.Flags.Release(code)
}

// OnMouseDown jumps the moveable to the cursor when only the placement
// button is held. The integrator is not involved.
func OnMouseDown(e *ecs.ECS, mouse components.MouseData) {
	if cfg.Debug.LogInput {
		log.Printf("mousedown x=%d y=%d buttons=%d", mouse.X, mouse.Y, mouse.Buttons)
	}
	if mouse.Buttons != cfg.Input.PlaceButtons {
		return
	}

	entry, ok := components.Moveable.First(e.World)
	if !ok {
		Fail(e, ErrNoMoveable)
		return
	}
	obj := components.Object.Get(entry)
	vw, vh, ok := viewportSize(e)
	if !ok {
		return
	}

	p := motion.Place(float64(mouse.X), float64(mouse.Y), obj.W, obj.H, vw, vh)
	obj.X, obj.Y = p.X, p.Y
	obj.Update()

	StartPulse(entry)
}

// moveable returns the moveable's data, failing the loop when it is missing.
func moveable(e *ecs.ECS) (*components.MoveableData, bool) {
	entry, ok := components.Moveable.First(e.World)
	if !ok {
		Fail(e, ErrNoMoveable)
		return nil, false
	}
	return components.Moveable.Get(entry), true
}
