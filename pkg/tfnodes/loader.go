package tfnodes

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spectrawave/tfgraph/pkg/dsp"
	"github.com/spectrawave/tfgraph/pkg/node"
	"github.com/spectrawave/tfgraph/pkg/types"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// DataLoader reads a two-column CSV (timestamp, numeric value), sorts it
// jointly by ascending time, and derives a sampling rate from the median
// inter-sample gap.
type DataLoader struct {
	node.Base
}

// NewDataLoader constructs a DataLoader in its fresh, dirty state.
func NewDataLoader(name string) *DataLoader {
	n := &DataLoader{Base: node.NewBase(name)}
	n.Init(n)
	return n
}

// Execute implements node.Executable.
func (n *DataLoader) Execute() error {
	filenameVal, ok := n.GetParameter("filename")
	if !ok {
		return types.MissingParameterError(n.Name(), "filename")
	}
	filename, ok := filenameVal.Text()
	if !ok || filename == "" {
		return types.MissingParameterError(n.Name(), "filename")
	}

	f, err := os.Open(filename)
	if err != nil {
		return types.FileNotFoundError(filename, err)
	}
	defer f.Close()

	times, values, err := parseCSV(filename, f)
	if err != nil {
		return err
	}

	sortByTime(times, values)

	diffs := make([]float64, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		diffs = append(diffs, times[i].Sub(times[i-1]).Seconds())
	}
	var fs float64
	if len(diffs) > 0 {
		if med := dsp.Median(diffs); med > 0 {
			fs = 1 / med
		}
	}

	n.SetOutput("time", types.TimeValue(times))
	n.SetOutput("value", types.RealValue(values))
	n.SetOutput("fs", types.ScalarValue(fs))
	n.MarkClean()
	return nil
}

// parseCSV reads comma-separated (timestamp, value) rows, tolerating an
// optional header row (any row whose timestamp column fails to parse as a
// timestamp is skipped once, at the very start of the file, and treated as
// a header rather than a parse error).
func parseCSV(path string, r io.Reader) ([]time.Time, []float64, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var times []time.Time
	var values []float64
	line := 0
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, nil, types.ParseErrorAt(path, line, err)
		}
		if len(record) < 2 {
			continue
		}
		ts, tErr := time.Parse(timestampLayout, strings.TrimSpace(record[0]))
		if tErr != nil {
			if first {
				first = false
				continue
			}
			return nil, nil, types.ParseErrorAt(path, line, tErr)
		}
		first = false
		v, vErr := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if vErr != nil {
			return nil, nil, types.ParseErrorAt(path, line, vErr)
		}
		times = append(times, ts)
		values = append(values, v)
	}
	return times, values, nil
}

// sortByTime sorts times and values jointly by ascending time, preserving
// the pairing between the two slices. Duplicate timestamps are retained.
func sortByTime(times []time.Time, values []float64) {
	idx := make([]int, len(times))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return times[idx[i]].Before(times[idx[j]])
	})
	sortedTimes := make([]time.Time, len(times))
	sortedValues := make([]float64, len(values))
	for newPos, oldPos := range idx {
		sortedTimes[newPos] = times[oldPos]
		sortedValues[newPos] = values[oldPos]
	}
	copy(times, sortedTimes)
	copy(values, sortedValues)
}
