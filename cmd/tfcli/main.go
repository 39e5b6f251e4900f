// Command tfcli runs a single pass of the time-frequency workflow over a CSV
// file and prints a JSON summary of the resulting slice, spectrum, and
// waterfall state to stdout.
//
// Usage:
//
//	tfcli -file path [flags]
//
// Flags:
//
//	-file string
//	    Path to the input CSV (timestamp,value rows, required)
//	-slice-duration float
//	    Slice window duration in seconds (default 86400)
//	-overlap float
//	    Fractional overlap between consecutive slices, in [0,1) (default 0.5)
//	-slice int
//	    1-based index of the slice to report (default 1)
//	-filter int
//	    Filter type: 0 disabled, 1 mean-downsample, 2 lowpass (default 0)
//	-window int
//	    Mean-downsample block width in samples (default 5)
//	-cutoff float
//	    Lowpass cutoff frequency in Hz (default 0.01)
//	-freq-min float
//	    Spectrum band lower bound in Hz (default 0)
//	-freq-max float
//	    Spectrum band upper bound in Hz (default 0.001)
//	-history-size int
//	    Waterfall row capacity (default 20)
//
// Example:
//
//	tfcli -file signal.csv -slice-duration 3600 -freq-min 0.005 -freq-max 0.02
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/spectrawave/tfgraph/pkg/config"
	"github.com/spectrawave/tfgraph/pkg/tfnodes"
	"github.com/spectrawave/tfgraph/pkg/workflow"
)

type summary struct {
	SamplingRateHz    float64   `json:"sampling_rate_hz"`
	NumSlices         int       `json:"num_slices"`
	CurrentSlice      int       `json:"current_slice"`
	SliceIndexStart   int       `json:"slice_index_start"`
	SliceIndexEnd     int       `json:"slice_index_end"`
	SliceTimeRange    string    `json:"slice_time_range"`
	SliceStartTimes   []string  `json:"slice_start_times"`
	SpectrumFreqHz    []float64 `json:"spectrum_freq_hz"`
	SpectrumMagnitude []float64 `json:"spectrum_magnitude"`
	FreqRangeMin      float64   `json:"freq_range_min_hz"`
	FreqRangeMax      float64   `json:"freq_range_max_hz"`
	WaterfallRows     int       `json:"waterfall_rows"`
}

func main() {
	file := flag.String("file", "", "Path to the input CSV (required)")
	sliceDuration := flag.Float64("slice-duration", 86400, "Slice window duration in seconds")
	overlap := flag.Float64("overlap", 0.5, "Fractional overlap between consecutive slices")
	currentSlice := flag.Int("slice", 1, "1-based index of the slice to report")
	filterType := flag.Int("filter", 0, "Filter type: 0 disabled, 1 mean-downsample, 2 lowpass")
	window := flag.Int("window", 5, "Mean-downsample block width in samples")
	cutoff := flag.Float64("cutoff", 0.01, "Lowpass cutoff frequency in Hz")
	freqMin := flag.Float64("freq-min", 0, "Spectrum band lower bound in Hz")
	freqMax := flag.Float64("freq-max", 0.001, "Spectrum band upper bound in Hz")
	historySize := flag.Int("history-size", 20, "Waterfall row capacity")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "tfcli: -file is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*file, *sliceDuration, *overlap, *currentSlice, *filterType, *window, *cutoff, *freqMin, *freqMax, *historySize); err != nil {
		fmt.Fprintf(os.Stderr, "tfcli: %v\n", err)
		os.Exit(1)
	}
}

func run(file string, sliceDuration, overlap float64, currentSlice, filterType, window int, cutoff, freqMin, freqMax float64, historySize int) error {
	ctx := context.Background()

	tf, err := workflow.New(config.Default())
	if err != nil {
		return fmt.Errorf("constructing workflow: %w", err)
	}

	if err := tf.LoadData(ctx, file); err != nil {
		return fmt.Errorf("loading %s: %w", file, err)
	}
	if err := tf.SetSliceParameters(ctx, sliceDuration, overlap); err != nil {
		return fmt.Errorf("setting slice parameters: %w", err)
	}

	enableFilter := filterType != 0
	if enableFilter {
		var param float64
		switch filterType {
		case tfnodes.FilterTypeMeanDownsample:
			param = float64(window)
		case tfnodes.FilterTypeLowPass:
			param = cutoff
		default:
			return fmt.Errorf("unknown -filter value %d", filterType)
		}
		if err := tf.SetFilterParameters(ctx, true, filterType, param); err != nil {
			return fmt.Errorf("setting filter parameters: %w", err)
		}
	}

	if err := tf.SetFrequencyRange(ctx, freqMin, freqMax); err != nil {
		return fmt.Errorf("setting frequency range: %w", err)
	}
	if err := tf.SetWaterfallHistorySize(ctx, historySize); err != nil {
		return fmt.Errorf("setting waterfall history size: %w", err)
	}
	if err := tf.SetCurrentSlice(ctx, currentSlice); err != nil {
		return fmt.Errorf("setting current slice: %w", err)
	}

	fs, err := tf.GetSamplingRate(ctx)
	if err != nil {
		return fmt.Errorf("reading sampling rate: %w", err)
	}
	slice, err := tf.GetSliceData(ctx)
	if err != nil {
		return fmt.Errorf("reading slice data: %w", err)
	}
	spec, err := tf.GetSpectrumData(ctx)
	if err != nil {
		return fmt.Errorf("reading spectrum data: %w", err)
	}
	wf, err := tf.GetWaterfallData(ctx)
	if err != nil {
		return fmt.Errorf("reading waterfall data: %w", err)
	}

	out := summary{
		SamplingRateHz:    fs,
		NumSlices:         slice.NumSlices,
		CurrentSlice:      slice.CurrentSlice,
		SliceIndexStart:   slice.SliceIndexStart,
		SliceIndexEnd:     slice.SliceIndexEnd,
		SliceTimeRange:    slice.SliceTimeRange,
		SliceStartTimes:   slice.SliceStartTimes,
		SpectrumFreqHz:    spec.FPlot,
		SpectrumMagnitude: spec.P1Plot,
		FreqRangeMin:      spec.FreqMin,
		FreqRangeMax:      spec.FreqMax,
		WaterfallRows:     wf.Size,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
