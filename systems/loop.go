package systems

import (
	"errors"

	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoMoveable = errors.New("moveable entity not found")
	ErrNoViewport = errors.New("viewport not found")
)

func getOrCreateLoop(e *ecs.ECS) *components.LoopData {
	entry, ok := components.Loop.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Loop))
	}
	return components.Loop.Get(entry)
}

// UpdateLoop counts frames and stops the loop on the quit action.
func UpdateLoop(e *ecs.ECS) {
	loop := getOrCreateLoop(e)
	loop.Frame++

	if GetAction(getOrCreateInput(e), cfg.ActionQuit).JustPressed {
		loop.Stopped = true
	}
}

// Stop cancels the frame loop. The scene reports termination on its next update.
func Stop(e *ecs.ECS) {
	getOrCreateLoop(e).Stopped = true
}

// Fail records a fatal error. Only the first error is kept.
func Fail(e *ecs.ECS, err error) {
	loop := getOrCreateLoop(e)
	if loop.Err == nil {
		loop.Err = err
	}
}

// LoopDone reports whether the loop has stopped, and the error that stopped it.
func LoopDone(e *ecs.ECS) (bool, error) {
	loop := getOrCreateLoop(e)
	if loop.Err != nil {
		return true, loop.Err
	}
	return loop.Stopped, nil
}

// WithLoopRunning wraps a system so it is skipped once the loop has ended.
func WithLoopRunning(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if done, _ := LoopDone(e); done {
			return
		}
		system(e)
	}
}
