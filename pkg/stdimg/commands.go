// Package stdimg: authoritative registry of single-stage commands.
//
// This file mirrors the stages implemented in ApplyCommandStdlib in
// pkg/stdimg/engine.go. Keep this list up-to-date when you add or
// modify a stage so callers (CLI, help text) read a single source of truth.

package stdimg

// ArgSpec describes a single argument for a command. Fields are textual
// and intended for help/validation UI rather than machine-enforced typing.
type ArgSpec struct {
	Name        string // human name
	Type        string // "float", "int", "enum"
	Required    bool
	Default     string // textual default (for help only)
	Description string
}

// CommandSpec defines a single command and its expected arguments.
type CommandSpec struct {
	Name        string
	Args        []ArgSpec
	Usage       string // short usage string
	Description string // brief description
}

// Commands is the list of stages that can be run on their own.
// Keep this synchronized with ApplyCommandStdlib in pkg/stdimg/engine.go.
var Commands = []CommandSpec{
	{
		Name:        "distort",
		Args:        []ArgSpec{{"k1", "float", false, "0.8", "linear radial term"}, {"k2", "float", false, "4.0", "quadratic radial term"}},
		Usage:       "distort [k1] [k2]",
		Description: "Radial lens distortion by inverse mapping; keeps the black border.",
	},
	{
		Name:        "spherize",
		Args:        []ArgSpec{{"k1", "float", false, "0.8", "linear radial term"}, {"k2", "float", false, "4.0", "quadratic radial term"}},
		Usage:       "spherize [k1] [k2]",
		Description: "Radial lens distortion followed by black border trim.",
	},
	{
		Name:        "circle",
		Args:        []ArgSpec{{"x", "float", false, "w/2", "center x"}, {"y", "float", false, "h/2", "center y"}, {"radius", "float", false, "auto", "radius in pixels"}},
		Usage:       "circle [x y] [radius]",
		Description: "Mask to a disc and trim the transparent border.",
	},
	{
		Name:        "trim",
		Args:        []ArgSpec{{"mode", "enum", false, "transparent", "transparent|black"}},
		Usage:       "trim [transparent|black]",
		Description: "Remove empty rows and columns from the four edges.",
	},
	{
		Name:        "shadow",
		Args:        []ArgSpec{},
		Usage:       "shadow",
		Description: "Darken left to right with a linear HSV value gradient.",
	},
	{
		Name:        "brightness",
		Args:        []ArgSpec{{"factor", "float", true, "1.2", "multiplier > 0"}},
		Usage:       "brightness <factor>",
		Description: "Scale RGB uniformly, saturating at 255.",
	},
	{
		Name:        "resize",
		Args:        []ArgSpec{{"maxSide", "int", true, "", "longest side in pixels"}},
		Usage:       "resize <maxSide>",
		Description: "Downscale to fit maxSide using Catmull-Rom.",
	},
}

// LookupCommand returns the spec registered under name.
func LookupCommand(name string) (CommandSpec, bool) {
	for _, c := range Commands {
		if c.Name == name {
			return c, true
		}
	}
	return CommandSpec{}, false
}
