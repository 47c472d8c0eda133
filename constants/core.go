package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame cap interval (~60 FPS); ticks arriving sooner are discarded
	FrameUpdateInterval = time.Second / 60

	// MaxTickDelta is the largest simulated step in seconds, applied after stalls (suspend, resize storms)
	MaxTickDelta = 0.1

	// InputHoldWindow is how long a key counts as held after its last press or repeat
	InputHoldWindow = 180 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Spectator Feed
const (
	// SpectatePublishInterval rate-limits snapshot frames sent to viewers (~20 Hz)
	SpectatePublishInterval = 50 * time.Millisecond

	// SpectateSendBuffer is the per-viewer frame backlog before frames are dropped
	SpectateSendBuffer = 32

	// SpectateWriteWait bounds a single websocket write
	SpectateWriteWait = 2 * time.Second
)

// Presentation
const (
	// DriverTickInterval is the terminal driver's callback rate; the frame cap thins it
	DriverTickInterval = time.Second / 120

	// TunnelRingSpacing is the world distance between drawn tunnel rings
	TunnelRingSpacing = 0.4

	// TunnelRingCount is the number of rings drawn ahead of the camera
	TunnelRingCount = 16
)
