package main

import (
	"flag"
	"io"
	"testing"

	"github.com/automoto/moveable/config"
	"github.com/automoto/moveable/shared/motion"
)

func withDefaultConfig(t *testing.T) {
	t.Helper()
	c, m, mo, d := *config.C, config.Moveable, config.Motion, config.Debug
	t.Cleanup(func() {
		*config.C, config.Moveable, config.Motion, config.Debug = c, m, mo, d
	})
}

func TestParseFlagsSizeSet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no flags", nil, false},
		{"width", []string{"-width", "1024"}, true},
		{"height", []string{"-height", "700"}, true},
		{"other flags only", []string{"-bounds", "-log-input"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withDefaultConfig(t)
			fs := flag.NewFlagSet("moveable", flag.ContinueOnError)
			fs.SetOutput(io.Discard)

			lf, err := parseFlags(fs, tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if lf.sizeSet != tt.want {
				t.Fatalf("sizeSet = %v, want %v", lf.sizeSet, tt.want)
			}
		})
	}
}

func TestParseFlagsApplyConfig(t *testing.T) {
	withDefaultConfig(t)
	fs := flag.NewFlagSet("moveable", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if _, err := parseFlags(fs, []string{"-width", "1024", "-size", "30", "-elapsed"}); err != nil {
		t.Fatal(err)
	}
	if config.C.Width != 1024 {
		t.Fatalf("width = %d, want 1024", config.C.Width)
	}
	if config.Moveable.Width != 30 || config.Moveable.Height != 30 {
		t.Fatalf("moveable = %vx%v, want 30x30", config.Moveable.Width, config.Moveable.Height)
	}
	if config.Motion.DeltaMode != motion.DeltaElapsed {
		t.Fatalf("delta mode = %v, want elapsed", config.Motion.DeltaMode)
	}
}
