package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	Density  float64
	Speed    float64
	ShowGrid bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    60,
		Height:   60,
		Scale:    10,
		TPS:      60,
		Seed:     42,
		Density:  0.5,
		Speed:    0.5,
		ShowGrid: true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "logical field width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "logical field height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized boards")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for randomized boards")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "playback slider position (0.1 fast to 1.0 slow)")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "show cell boundary lines")
}

const (
	minSpeed = 0.1
	maxSpeed = 1.0
)

// StepInterval converts a slider position into the auto-play step
// interval. The mapping is quadratic so the fast end of the slider has
// finer resolution.
func StepInterval(speed float64) time.Duration {
	if speed < minSpeed {
		speed = minSpeed
	}
	if speed > maxSpeed {
		speed = maxSpeed
	}
	return time.Duration(speed * speed * float64(time.Second))
}
