package tfnodes

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/spectrawave/tfgraph/pkg/node"
	"github.com/spectrawave/tfgraph/pkg/types"
)

// Waterfall holds a fixed-capacity FIFO of past spectra and the timestamp
// each was captured at, for a rolling spectrogram display.
//
// Unlike the other four node types, Waterfall's outputs are not a pure
// function of its current inputs: the history itself is accumulated across
// successive executions, one appended row per execute. That accumulated
// state lives in fields beside node.Base, not in Base's output map, since
// Reset (called on every cascade-dirty) must not discard it.
type Waterfall struct {
	node.Base

	historySize  int
	cols         int
	rows         [][]float64
	times        []time.Time
	everExecuted bool
}

// NewWaterfall constructs a Waterfall with its default history size of 20.
func NewWaterfall(name string) *Waterfall {
	n := &Waterfall{Base: node.NewBase(name), historySize: 20}
	n.Init(n)
	n.SetParameter("history_size", types.ScalarValue(20))
	return n
}

// Execute implements node.Executable.
func (n *Waterfall) Execute() error {
	spectrumVal, ok := n.Input("spectrum")
	if !ok {
		return types.MissingInputError(n.Name(), "spectrum")
	}
	timePointVal, ok := n.Input("time_point")
	if !ok {
		return types.MissingInputError(n.Name(), "time_point")
	}
	spectrum, ok := spectrumVal.Real()
	if !ok {
		return types.ValidationError(n.Name(), "spectrum input must be a Real vector")
	}
	timePoints, ok := timePointVal.Time()
	if !ok || len(timePoints) == 0 {
		return types.ValidationError(n.Name(), "time_point input must carry a timestamp")
	}
	timePoint := timePoints[0]

	if sizeVal, ok := n.GetParameter("history_size"); ok {
		if size, ok := sizeVal.Scalar(); ok {
			if int(size) < 2 {
				return types.ValidationError(n.Name(), "history_size must be >= 2")
			}
			n.historySize = int(size)
		}
	}

	if n.cols != 0 && len(spectrum) != n.cols {
		return types.ValidationError(n.Name(), "spectrum column width must match previous appends")
	}
	n.cols = len(spectrum)

	if !n.everExecuted {
		n.everExecuted = true
		n.appendRow(make([]float64, n.cols), timePoint)
	}
	n.appendRow(append([]float64(nil), spectrum...), timePoint)
	n.trimToCapacity()

	n.populateOutputs()
	n.MarkClean()
	return nil
}

func (n *Waterfall) appendRow(row []float64, t time.Time) {
	n.rows = append(n.rows, row)
	n.times = append(n.times, t)
}

func (n *Waterfall) trimToCapacity() {
	if len(n.rows) <= n.historySize {
		return
	}
	drop := len(n.rows) - n.historySize
	n.rows = n.rows[drop:]
	n.times = n.times[drop:]
}

// populateOutputs rebuilds the history/log_history outputs from the
// accumulated rows, routing the conversion through a gonum matrix so the
// elementwise log transform is expressed as a matrix operation rather than
// a hand-rolled double loop.
func (n *Waterfall) populateOutputs() {
	rowCount := len(n.rows)
	history := make([][]float64, rowCount)
	for i, row := range n.rows {
		history[i] = append([]float64(nil), row...)
	}
	times := append([]time.Time(nil), n.times...)

	var logHistory [][]float64
	if rowCount > 0 && n.cols > 0 {
		dense := mat.NewDense(rowCount, n.cols, nil)
		for i, row := range n.rows {
			dense.SetRow(i, row)
		}
		logDense := mat.NewDense(rowCount, n.cols, nil)
		logDense.Apply(func(_, _ int, v float64) float64 {
			return math.Log10(v)
		}, dense)
		logHistory = make([][]float64, rowCount)
		for i := 0; i < rowCount; i++ {
			logHistory[i] = append([]float64(nil), logDense.RawRowView(i)...)
		}
	}

	n.SetOutput("history", types.HistoryValue(types.HistoryData{Spectra: history, Times: times}))
	n.SetOutput("times", types.TimeValue(times))
	n.SetOutput("size", types.ScalarValue(float64(rowCount)))
	n.SetOutput("log_history", types.HistoryValue(types.HistoryData{Spectra: logHistory, Times: times}))
}

// ClearHistory empties the accumulated history and marks the node dirty, so
// the next execute starts fresh (including the first-execution zero row).
func (n *Waterfall) ClearHistory() {
	n.rows = nil
	n.times = nil
	n.cols = 0
	n.everExecuted = false
	n.Reset()
}

// SetHistorySize updates the retained row cap. k must be >= 2. If the
// current buffer already exceeds k, it is truncated from the head
// immediately rather than waiting for the next execute.
func (n *Waterfall) SetHistorySize(k int) error {
	if k < 2 {
		return types.ValidationError(n.Name(), "history_size must be >= 2")
	}
	n.historySize = k
	n.trimToCapacity()
	n.SetParameter("history_size", types.ScalarValue(float64(k)))
	n.populateOutputs()
	n.MarkClean()
	return nil
}
