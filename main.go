package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/moveable/config"
	"github.com/automoto/moveable/fonts"
	"github.com/automoto/moveable/scenes"
	"github.com/automoto/moveable/shared/motion"
	"github.com/automoto/moveable/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame(ctx context.Context, opts scenes.Options) *Game {
	return &Game{
		scene: scenes.NewMoveableScene(ctx, opts),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout makes the logical screen track the window, so the viewport the
// moveable is clamped to is whatever is visible.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Resize(width, height)
	return width, height
}

// launchFlags records which command-line options were given explicitly.
type launchFlags struct {
	sizeSet bool // -width or -height
}

// parseFlags applies args onto the global config.
func parseFlags(fs *flag.FlagSet, args []string) (launchFlags, error) {
	fs.IntVar(&config.C.Width, "width", config.C.Width, "initial window width")
	fs.IntVar(&config.C.Height, "height", config.C.Height, "initial window height")
	fs.Float64Var(&config.Moveable.Width, "size", config.Moveable.Width, "moveable edge length in pixels")
	elapsed := fs.Bool("elapsed", false, "scale motion by elapsed frame time instead of the timestamp ratio")
	fs.BoolVar(&config.Debug.LogInput, "log-input", config.Debug.LogInput, "log key and mouse events")
	fs.BoolVar(&config.Debug.DrawBounds, "bounds", config.Debug.DrawBounds, "outline the valid-bounds area")
	if err := fs.Parse(args); err != nil {
		return launchFlags{}, err
	}

	config.Moveable.Height = config.Moveable.Width
	if *elapsed {
		config.Motion.DeltaMode = motion.DeltaElapsed
	}

	var lf launchFlags
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "width" || f.Name == "height" {
			lf.sizeSet = true
		}
	})
	return lf, nil
}

func main() {
	lf, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if err := fonts.LoadDefault(config.HUD.FontSize); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}
	opts := scenes.Options{Saved: saved, KeepWindowSize: lf.sizeSet}

	log.Println("input handlers attached")
	if err := ebiten.RunGame(NewGame(ctx, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
