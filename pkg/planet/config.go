package planet

import (
	"math"

	"github.com/Fepozopo/spherize/pkg/stdimg"
)

// Config selects the optional stages and their parameters. Center and Radius
// are in the coordinates of the image that reaches the masking stage; nil
// means the default circle for that image.
type Config struct {
	ApplySpherization bool
	ApplyShadow       bool
	Brightness        float64
	K1, K2            float64
	Center            *stdimg.Point
	Radius            *float64
}

// DefaultConfig returns the stock planet look.
func DefaultConfig() Config {
	return Config{
		ApplySpherization: true,
		ApplyShadow:       true,
		Brightness:        1.2,
		K1:                stdimg.DefaultK1,
		K2:                stdimg.DefaultK2,
	}
}

// Validate returns a *Error of KindInvalidConfiguration for values no run
// could accept.
func (c Config) Validate() error {
	if !finite(c.Brightness) || c.Brightness <= 0 {
		return invalidf("brightness must be > 0, got %v", c.Brightness)
	}
	if !finite(c.K1) || !finite(c.K2) {
		return invalidf("distortion coefficients must be finite, got k1=%v k2=%v", c.K1, c.K2)
	}
	if c.Radius != nil && (!finite(*c.Radius) || *c.Radius < 0) {
		return invalidf("radius must be >= 0, got %v", *c.Radius)
	}
	if c.Center != nil {
		x, y := c.Center.X, c.Center.Y
		if !finite(x) || !finite(y) || x < 0 || y < 0 {
			return invalidf("center must be inside the image, got (%v,%v)", x, y)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
