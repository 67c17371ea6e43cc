package life

// Config controls the engine dimensions and undo history depth.
type Config struct {
	Rows int
	Cols int

	// MaxBackups bounds the undo ledger. Zero disables undo entirely.
	MaxBackups int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:       60,
		Cols:       80,
		MaxBackups: 64,
	}
}
