package app

import "flag"

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Width      int
	Height     int
	CellSize   int
	TPS        int
	Seed       int64
	Density    float64
	MaxBackups int
	PurgeAge   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      800,
		Height:     600,
		CellSize:   10,
		TPS:        60,
		Seed:       42,
		Density:    0.07,
		MaxBackups: 64,
		PurgeAge:   30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "board height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability of the initial soup")
	fs.IntVar(&c.MaxBackups, "backups", c.MaxBackups, "undo history depth, 0 disables undo")
	fs.IntVar(&c.PurgeAge, "purge-age", c.PurgeAge, "survivor age removed by the purge action")
}
