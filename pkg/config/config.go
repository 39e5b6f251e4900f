package config

// Config holds the engine's tunable defaults and resource ceilings.
// All configuration options are centralized here for easy management and
// validation.
type Config struct {
	// Graph size ceilings. The time-frequency workflow itself is a fixed
	// five-node graph, but the underlying graph manager is general purpose,
	// so these guard against an accidentally runaway graph.
	MaxGraphNodes int
	MaxGraphEdges int

	// Filter node defaults.
	DefaultFilterEnabled    bool
	DefaultFilterType       int
	DefaultFilterWindow     int
	DefaultFilterCutoffFreq float64
	DefaultFilterOrder      int

	// Slicer node defaults.
	DefaultSliceDuration float64
	DefaultOverlapRatio  float64
	DefaultCurrentSlice  int

	// Spectrum node defaults.
	DefaultFreqRangeMin  float64
	DefaultFreqRangeMax  float64
	DefaultFFTSizeFactor int

	// Waterfall node defaults.
	DefaultWaterfallHistorySize int
}

// Default returns a Config carrying the same per-node defaults spec'd for
// each node type, plus generous graph size ceilings.
func Default() *Config {
	return &Config{
		MaxGraphNodes: 1000,
		MaxGraphEdges: 5000,

		DefaultFilterEnabled:    false,
		DefaultFilterType:       1, // MeanDownsample
		DefaultFilterWindow:     5,
		DefaultFilterCutoffFreq: 0.01,
		DefaultFilterOrder:      4,

		DefaultSliceDuration: 86400,
		DefaultOverlapRatio:  0.5,
		DefaultCurrentSlice:  1,

		DefaultFreqRangeMin:  0,
		DefaultFreqRangeMax:  0.001,
		DefaultFFTSizeFactor: 8,

		DefaultWaterfallHistorySize: 20,
	}
}

// Validate checks whether the configuration values fall within the ranges
// the corresponding node types require.
func (c *Config) Validate() error {
	if c.MaxGraphNodes <= 0 {
		return ErrInvalidMaxGraphNodes
	}
	if c.MaxGraphEdges <= 0 {
		return ErrInvalidMaxGraphEdges
	}
	if c.DefaultSliceDuration <= 0 {
		return ErrInvalidSliceDuration
	}
	if c.DefaultOverlapRatio < 0 || c.DefaultOverlapRatio >= 1 {
		return ErrInvalidOverlapRatio
	}
	if c.DefaultFilterWindow < 1 {
		return ErrInvalidFilterWindow
	}
	if c.DefaultFilterOrder < 1 {
		return ErrInvalidFilterOrder
	}
	if c.DefaultFFTSizeFactor < 1 {
		return ErrInvalidFFTSizeFactor
	}
	if !(c.DefaultFreqRangeMin >= 0 && c.DefaultFreqRangeMin < c.DefaultFreqRangeMax) {
		return ErrInvalidFreqRange
	}
	if c.DefaultWaterfallHistorySize < 2 {
		return ErrInvalidWaterfallHistorySize
	}
	return nil
}

// Clone creates a copy of the configuration; Config has no reference fields,
// so this is a plain value copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
