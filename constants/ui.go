package constants

// HUD layout, row 0
const (
	FrameCounterX = 0
	PositionTextX = 12
	FPSTextX      = 35
	HUDRow        = 0
)

// Player defaults
const (
	PlayerGlyph  = '@'
	PlayerStartX = 0
	PlayerStartY = 0
)
