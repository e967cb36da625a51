package core

// RuntimeConfig contains the platform facts handed to the simulation.
type RuntimeConfig struct {
	ScreenW     int     // Viewport width in cells
	ScreenH     int     // Viewport height in cells
	ScaleFactor float64 // Logical units per cell
	TickRate    int     // Simulation ticks per second (default 60)
	Seed        int64   // RNG seed for the retarget draw
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		ScaleFactor: 1,
		TickRate:    60,
		Seed:        0, // 0 means use current time in platform layer
	}
}

// Resolution returns the viewport size in logical units.
func (c RuntimeConfig) Resolution() Vec2 {
	scale := c.ScaleFactor
	if scale <= 0 {
		scale = 1
	}
	return Vec2{X: float64(c.ScreenW) * scale, Y: float64(c.ScreenH) * scale}
}

// Dt returns the fixed frame delta in seconds for the configured tick rate.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
