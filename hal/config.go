package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the input/update rate (ticks per second).
	TPS int
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "Calc"
	}
	if c.Width <= 0 {
		c.Width = 235
	}
	if c.Height <= 0 {
		c.Height = 235
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}
