package constants

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the render pacing interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputPollInterval is the idle wait between key polls
	InputPollInterval = 10 * time.Millisecond

	// GameUpdateInterval caps the update loop tick rate
	GameUpdateInterval = 10 * time.Millisecond

	// CoordinatorPollInterval is how often the coordinator checks for shutdown
	CoordinatorPollInterval = 16 * time.Millisecond

	// FPSSampleWindow is the FPS sampling window
	FPSSampleWindow = time.Second
)

// Console Geometry
const (
	// ScreenWidth is the fixed console width in cells
	ScreenWidth = 80

	// ScreenHeight is the fixed console height in cells
	ScreenHeight = 25
)

// Input
const (
	// KeyQueueSize bounds keys read from the terminal but not yet consumed
	KeyQueueSize = 256
)
