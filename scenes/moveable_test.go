package scenes

import (
	"context"
	"errors"
	"testing"

	"github.com/automoto/moveable/components"
	"github.com/hajimehoshi/ebiten/v2"
)

type keyInput struct {
	pressed map[ebiten.Key]bool
}

func (k *keyInput) IsKeyPressed(key ebiten.Key) bool             { return k.pressed[key] }
func (k *keyInput) IsMouseButtonPressed(ebiten.MouseButton) bool { return false }
func (k *keyInput) CursorPosition() (int, int)                   { return 0, 0 }

type nopWindow struct{}

func (nopWindow) SetFullscreen(bool)     {}
func (nopWindow) SetWindowSize(int, int) {}

func newTestScene(ctx context.Context, in *keyInput) *MoveableScene {
	ms := 0.0
	return NewMoveableScene(ctx, Options{
		Input:  in,
		Window: nopWindow{},
		Clock: func() float64 {
			ms += 16
			return ms
		},
	})
}

func TestSceneMovesRight(t *testing.T) {
	in := &keyInput{pressed: map[ebiten.Key]bool{ebiten.KeyArrowRight: true}}
	s := newTestScene(context.Background(), in)

	for i := 0; i < 10; i++ {
		if err := s.Update(); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	entry, ok := components.Moveable.First(s.ECS().World)
	if !ok {
		t.Fatal("no moveable")
	}
	obj := components.Object.Get(entry)
	if obj.X <= 0 || obj.Y != 0 {
		t.Fatalf("position = (%v, %v), want x > 0 and y = 0", obj.X, obj.Y)
	}
}

func TestSceneResizeClamps(t *testing.T) {
	s := newTestScene(context.Background(), &keyInput{pressed: map[ebiten.Key]bool{}})
	entry, _ := components.Moveable.First(s.ECS().World)
	obj := components.Object.Get(entry)
	obj.X, obj.Y = 700, 500

	s.Resize(200, 100)

	if obj.X != 150 || obj.Y != 50 {
		t.Fatalf("position = (%v, %v), want (150, 50)", obj.X, obj.Y)
	}
}

func TestSceneContextCancelTerminates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newTestScene(ctx, &keyInput{pressed: map[ebiten.Key]bool{}})

	if err := s.Update(); err != nil {
		t.Fatalf("first update: %v", err)
	}
	cancel()
	if err := s.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("err = %v, want ebiten.Termination", err)
	}
}

func TestSceneEscapeTerminates(t *testing.T) {
	in := &keyInput{pressed: map[ebiten.Key]bool{ebiten.KeyEscape: true}}
	s := newTestScene(context.Background(), in)

	if err := s.Update(); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if err := s.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("err = %v, want ebiten.Termination", err)
	}
}
