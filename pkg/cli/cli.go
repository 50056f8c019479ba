// Package cli is the spherize command line: it loads a texture, runs the
// planet pipeline and saves the result.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/Fepozopo/spherize/pkg/planet"
	"github.com/Fepozopo/spherize/pkg/stdimg"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	lookupEnv      lookupFunc
	dotenv         string
}

// Run executes the command line in args (without the program name) and
// returns the process exit code.
func Run(args []string) int {
	a := &app{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		lookupEnv: os.LookupEnv,
		dotenv:    ".env",
	}
	return a.run(args)
}

func (a *app) run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Fprintln(a.stdout, Version)
			return exitOK
		case "stages":
			a.listStages()
			return exitOK
		case "stage":
			return a.runStage(args[1:])
		case "update":
			if err := CheckForUpdates(a.stdout, a.stdin); err != nil {
				fmt.Fprintln(a.stderr, err)
				return exitFailure
			}
			return exitOK
		}
	}

	s, rest, err := loadSettings(args, a.lookupEnv, a.dotenv, a.stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return exitUsage
	}
	if len(rest) < 1 || len(rest) > 2 {
		fmt.Fprintln(a.stderr, "usage: spherize [flags] <input> [output]")
		return exitUsage
	}
	input := rest[0]
	output := DefaultOutputPath(input)
	if len(rest) == 2 {
		output = rest[1]
	}

	log := newLogger(a.stderr, s.Debug)
	p := planet.New(s.Planet, planet.WithLogger(log), planet.WithLoader(FileLoader{}))
	res, err := p.RunFile(input, func(ev planet.Event) {
		fmt.Fprintln(a.stderr, ev.Message)
	})
	if err != nil {
		return exitFailure
	}
	log.Debug().Float64("brightness_loss", res.BrightnessLoss).Msg("pipeline finished")

	img := res.Image
	if s.MaxSize > 0 {
		img = stdimg.ResizeToFit(img, s.MaxSize)
	}
	written, err := SaveImage(output, img)
	if err != nil {
		log.Error().Err(err).Str("path", output).Msg("save failed")
		return exitFailure
	}
	log.Info().Str("path", written).Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).Msg("saved")
	fmt.Fprintln(a.stdout, written)
	return exitOK
}

func (a *app) listStages() {
	for _, c := range stdimg.Commands {
		fmt.Fprintf(a.stdout, "%-28s %s\n", c.Usage, c.Description)
	}
}

// runStage applies one registered stage: stage <name> <input> <output> [args...]
func (a *app) runStage(args []string) int {
	if len(args) < 3 {
		fmt.Fprintln(a.stderr, "usage: spherize stage <name> <input> <output> [args...]")
		return exitUsage
	}
	name, input, output := strings.ToLower(args[0]), args[1], args[2]
	spec, ok := stdimg.LookupCommand(name)
	if !ok {
		fmt.Fprintf(a.stderr, "unknown stage %q, see 'spherize stages'\n", name)
		return exitUsage
	}
	img, _, err := LoadImage(input)
	if err != nil {
		fmt.Fprintf(a.stderr, "failed to read image %s: %v\n", input, err)
		return exitFailure
	}
	var out image.Image
	if out, err = stdimg.ApplyCommandStdlib(img, spec.Name, args[3:]); err != nil {
		fmt.Fprintf(a.stderr, "%s: %v\nusage: %s\n", spec.Name, err, spec.Usage)
		return exitFailure
	}
	written, err := SaveImage(output, out)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return exitFailure
	}
	fmt.Fprintln(a.stdout, written)
	return exitOK
}
