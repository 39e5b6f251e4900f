package config

import "errors"

// Sentinel errors for configuration validation.
var (
	ErrInvalidMaxGraphNodes = errors.New("invalid max graph nodes: must be positive")
	ErrInvalidMaxGraphEdges = errors.New("invalid max graph edges: must be positive")

	ErrInvalidSliceDuration = errors.New("invalid default slice duration: must be positive")
	ErrInvalidOverlapRatio  = errors.New("invalid default overlap ratio: must be in [0, 1)")

	ErrInvalidFilterWindow = errors.New("invalid default filter window: must be >= 1")
	ErrInvalidFilterOrder  = errors.New("invalid default filter order: must be >= 1")

	ErrInvalidFFTSizeFactor = errors.New("invalid default fft size factor: must be >= 1")
	ErrInvalidFreqRange     = errors.New("invalid default freq range: must satisfy 0 <= fmin < fmax")

	ErrInvalidWaterfallHistorySize = errors.New("invalid default waterfall history size: must be >= 2")
)
