package core

// RuntimeConfig holds per-session presentation settings.
type RuntimeConfig struct {
	ScreenW int // Terminal width in characters
	ScreenH int // Terminal height in characters
	FPS     int // Frame rate of the presentation loop
}

// DefaultRuntimeConfig returns the settings used before the terminal
// reports its size.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 30,
		FPS:     60,
	}
}
