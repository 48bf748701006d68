package config

// Screen layout configuration
const (
	// Window dimensions in pixels
	ScreenWidth  = 960
	ScreenHeight = 540

	// Height of the arena floor strip at the bottom of the combat screen
	FloorHeight = 120

	// GroundY is the y coordinate fighters stand on
	GroundY = ScreenHeight - FloorHeight

	// Fixed simulation rate; Update is called this many times per second
	TPS = 60
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return ScreenWidth, ScreenHeight
}
