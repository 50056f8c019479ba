package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Fepozopo/spherize/pkg/planet"
	"github.com/Fepozopo/spherize/pkg/stdimg"
)

// Environment keys. Flags win over the environment, which wins over .env.
const (
	envSpherize   = "SPHERIZE_SPHERIZE"
	envShadow     = "SPHERIZE_SHADOW"
	envBrightness = "SPHERIZE_BRIGHTNESS"
	envK1         = "SPHERIZE_K1"
	envK2         = "SPHERIZE_K2"
	envMaxSize    = "SPHERIZE_MAX_SIZE"
	envDebug      = "SPHERIZE_DEBUG"
)

// Settings is everything the main command needs.
type Settings struct {
	Planet  planet.Config
	MaxSize int
	Debug   bool
}

func defaultSettings() Settings {
	return Settings{Planet: planet.DefaultConfig()}
}

type lookupFunc func(key string) (string, bool)

// withDotEnv layers the key/value pairs of a .env file under lookup.
// A missing file is not an error.
func withDotEnv(lookup lookupFunc, path string) (lookupFunc, error) {
	if path == "" {
		return lookup, nil
	}
	vals, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return lookup, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	}, nil
}

func applyEnv(s *Settings, lookup lookupFunc) error {
	bools := []struct {
		key string
		dst *bool
	}{
		{envSpherize, &s.Planet.ApplySpherization},
		{envShadow, &s.Planet.ApplyShadow},
		{envDebug, &s.Debug},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = parsed
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{envBrightness, &s.Planet.Brightness},
		{envK1, &s.Planet.K1},
		{envK2, &s.Planet.K2},
	}
	for _, f := range floats {
		v, ok := lookup(f.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = parsed
	}
	if v, ok := lookup(envMaxSize); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", envMaxSize, err)
		}
		s.MaxSize = n
	}
	return nil
}

// pointFlag parses "x,y" into a *stdimg.Point.
type pointFlag struct{ p **stdimg.Point }

func (f pointFlag) String() string {
	if f.p == nil || *f.p == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g", (*f.p).X, (*f.p).Y)
}

func (f pointFlag) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return err
	}
	*f.p = &stdimg.Point{X: x, Y: y}
	return nil
}

type radiusFlag struct{ p **float64 }

func (f radiusFlag) String() string {
	if f.p == nil || *f.p == nil {
		return ""
	}
	return strconv.FormatFloat(**f.p, 'g', -1, 64)
}

func (f radiusFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f.p = &v
	return nil
}

// parseFlags overrides s with command-line flags and returns the positional args.
func parseFlags(s *Settings, args []string, stderr io.Writer) ([]string, error) {
	flags := flag.NewFlagSet("spherize", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: spherize [flags] <input> [output]")
		fmt.Fprintln(stderr, "       spherize stage <name> <input> <output> [args...]")
		fmt.Fprintln(stderr, "       spherize stages | version | update")
		fmt.Fprintln(stderr, "flags:")
		flags.PrintDefaults()
	}
	flags.BoolVar(&s.Planet.ApplySpherization, "spherize", s.Planet.ApplySpherization, "apply radial distortion")
	flags.BoolVar(&s.Planet.ApplyShadow, "shadow", s.Planet.ApplyShadow, "apply the left-to-right shadow gradient")
	flags.Float64Var(&s.Planet.Brightness, "brightness", s.Planet.Brightness, "brightness factor (> 0, 1 disables)")
	flags.Float64Var(&s.Planet.K1, "k1", s.Planet.K1, "linear distortion coefficient")
	flags.Float64Var(&s.Planet.K2, "k2", s.Planet.K2, "quadratic distortion coefficient")
	flags.Var(pointFlag{&s.Planet.Center}, "center", "circle center `x,y` in pixels (default: image center)")
	flags.Var(radiusFlag{&s.Planet.Radius}, "radius", "circle radius in pixels (default: fit the image)")
	flags.IntVar(&s.MaxSize, "max-size", s.MaxSize, "downscale the result so no side exceeds this (0 keeps size)")
	flags.BoolVar(&s.Debug, "debug", s.Debug, "debug logging")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	return flags.Args(), nil
}

// loadSettings resolves defaults, .env, environment and flags in that order.
func loadSettings(args []string, lookup lookupFunc, dotenv string, stderr io.Writer) (Settings, []string, error) {
	s := defaultSettings()
	lookup, err := withDotEnv(lookup, dotenv)
	if err != nil {
		return s, nil, err
	}
	if err := applyEnv(&s, lookup); err != nil {
		return s, nil, err
	}
	rest, err := parseFlags(&s, args, stderr)
	if err != nil {
		return s, nil, err
	}
	return s, rest, nil
}
