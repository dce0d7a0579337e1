package config

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Shader time advanced per frame. Not wall-clock: playback speed follows
	// the display refresh rate.
	TimeStep = 0.001

	// Headless snapshot defaults
	SnapshotFrames = 1
	SnapshotFile   = "flower.png"

	// Panel dimensions
	PanelWidth   = 260
	PanelMargin  = 10
	PanelPadding = 8
	HeaderHeight = 22
	RowHeight    = 30
	ChannelRow   = 16
	TrackHeight  = 6
	KnobRadius   = 6
	SwatchSize   = 14

	// Panel colors
	PanelAlpha  = 200
	AccentHue   = 205
	AccentSat   = 0.55
	AccentValue = 0.85
)
