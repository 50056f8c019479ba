package stdimg

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// ApplyCommandStdlib runs a single stage on an image and returns a new image.
// Argument strings follow the usage in Commands.
func ApplyCommandStdlib(img image.Image, commandName string, args []string) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("source image is nil")
	}
	src := ToNRGBA(img)
	switch commandName {
	case "distort", "spherize":
		if len(args) > 2 {
			return nil, fmt.Errorf("%s takes at most 2 args: k1 k2", commandName)
		}
		k1 := DefaultK1
		k2 := DefaultK2
		if len(args) >= 1 && args[0] != "" {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid k1: %w", err)
			}
			k1 = v
		}
		if len(args) >= 2 && args[1] != "" {
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid k2: %w", err)
			}
			k2 = v
		}
		if commandName == "distort" {
			return Distort(src, k1, k2), nil
		}
		return result(Spherize(src, k1, k2))

	case "circle":
		// circle | circle radius | circle x y | circle x y radius
		var center *Point
		var radius *float64
		parsed := make([]float64, len(args))
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid circle arg %q: %w", a, err)
			}
			parsed[i] = v
		}
		switch len(parsed) {
		case 0:
		case 1:
			radius = &parsed[0]
		case 2:
			center = &Point{X: parsed[0], Y: parsed[1]}
		case 3:
			center = &Point{X: parsed[0], Y: parsed[1]}
			radius = &parsed[2]
		default:
			return nil, fmt.Errorf("circle takes at most 3 args: x y radius")
		}
		b := src.Bounds()
		return result(MaskCircle(src, DefaultCircle(b.Dx(), b.Dy(), center, radius)))

	case "trim":
		mode := "transparent"
		if len(args) >= 1 && args[0] != "" {
			mode = strings.ToLower(args[0])
		}
		switch mode {
		case "transparent":
			return result(TrimEdges(src, Transparent))
		case "black":
			return result(TrimEdges(src, Black))
		default:
			return nil, fmt.Errorf("unknown trim mode %q (want transparent or black)", mode)
		}

	case "shadow":
		if len(args) != 0 {
			return nil, fmt.Errorf("shadow takes no args")
		}
		out, _ := AddShadow(src)
		return out, nil

	case "brightness":
		if len(args) != 1 {
			return nil, fmt.Errorf("brightness requires 1 arg: factor")
		}
		factor, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid factor: %w", err)
		}
		if factor <= 0 {
			return nil, fmt.Errorf("brightness factor must be > 0, got %v", factor)
		}
		return AdjustBrightness(src, factor), nil

	case "resize":
		if len(args) != 1 {
			return nil, fmt.Errorf("resize requires 1 arg: maxSide")
		}
		side, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid maxSide: %w", err)
		}
		return ResizeToFit(src, side), nil

	default:
		return nil, fmt.Errorf("unsupported command in stdlib engine: %s", commandName)
	}
}

// result keeps a failed stage from surfacing as a typed nil image.Image.
func result(img *image.NRGBA, err error) (image.Image, error) {
	if err != nil {
		return nil, err
	}
	return img, nil
}
