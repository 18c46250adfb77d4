package fractalgarden

import "math"

const (
	MinFernPoints       = 5000       // non-zero fern requests below this are raised to it
	MaxFernPoints       = 10_000_000 // config-level ceiling
	CrossSectionSamples = 10         // points emitted around each shell centerline point
	TreeFanout          = 4
	MaxTreeDepth        = 10 // 349525 branches
	WeightTolerance     = 1e-9
	TwoPi               = 2 * math.Pi
	// rendering defaults
	ImageWidth  = 800
	ImageHeight = 800
	GIFFrames   = 36
	GIFDelay    = 8 // 100ths of a second per frame
	FramePad    = 24
	epsAlign    = 1e-12
)
