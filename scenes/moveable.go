package scenes

import (
	"context"
	"sync"

	cfg "github.com/automoto/moveable/config"
	"github.com/automoto/moveable/systems"
	"github.com/automoto/moveable/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options are the host hooks a MoveableScene runs against.
type Options struct {
	Input  systems.InputSource
	Clock  systems.Clock
	Window systems.Window
	Saved  *systems.SavedSettings
	// KeepWindowSize ignores the saved resolution preset, e.g. when the
	// size was given on the command line.
	KeepWindowSize bool
}

// MoveableScene hosts the single moveable element.
type MoveableScene struct {
	ctx  context.Context
	opts Options
	ecs  *ecs.ECS
	once sync.Once
}

// NewMoveableScene creates the scene. Cancelling ctx ends the frame loop.
func NewMoveableScene(ctx context.Context, opts Options) *MoveableScene {
	if opts.Input == nil {
		opts.Input = systems.EbitenInput
	}
	if opts.Clock == nil {
		opts.Clock = systems.SinceStart()
	}
	if opts.Window == nil {
		opts.Window = systems.EbitenWindow
	}
	return &MoveableScene{ctx: ctx, opts: opts}
}

// Update runs one frame. It returns ebiten.Termination after a stop
// request, or the error that ended the loop.
func (s *MoveableScene) Update() error {
	s.once.Do(s.configure)

	if err := s.ctx.Err(); err != nil {
		systems.Stop(s.ecs)
	}
	if done, err := systems.LoopDone(s.ecs); done {
		if err != nil {
			return err
		}
		return ebiten.Termination
	}

	s.ecs.Update()

	if done, err := systems.LoopDone(s.ecs); done && err != nil {
		return err
	}
	return nil
}

func (s *MoveableScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Resize tracks the outside size reported by Layout.
func (s *MoveableScene) Resize(width, height int) {
	s.once.Do(s.configure)
	systems.SetViewport(s.ecs, width, height)
}

// ECS exposes the world for tests and tooling.
func (s *MoveableScene) ECS() *ecs.ECS {
	s.once.Do(s.configure)
	return s.ecs
}

func (s *MoveableScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	s.ecs.AddSystem(systems.NewUpdateInput(s.opts.Input))
	s.ecs.AddSystem(systems.UpdateLoop)
	s.ecs.AddSystem(systems.NewUpdateSettings(s.opts.Window))

	s.ecs.AddSystem(systems.WithLoopRunning(systems.UpdateTracker))
	s.ecs.AddSystem(systems.WithLoopRunning(systems.NewUpdateMotion(s.opts.Clock)))
	s.ecs.AddSystem(systems.WithLoopRunning(systems.UpdatePulse))

	s.ecs.AddRenderer(cfg.Default, systems.DrawBounds)
	s.ecs.AddRenderer(cfg.Default, systems.DrawMoveable)
	s.ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateLoop(s.ecs)
	factory.CreateSettings(s.ecs)
	factory.CreateViewport(s.ecs, cfg.C.Width, cfg.C.Height)
	factory.CreateMoveable(s.ecs, cfg.Moveable.StartX, cfg.Moveable.StartY)

	systems.ApplySavedSettings(s.ecs, s.opts.Window, s.opts.Saved, s.opts.KeepWindowSize)
}
