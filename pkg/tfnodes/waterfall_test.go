package tfnodes_test

import (
	"testing"
	"time"

	"github.com/spectrawave/tfgraph/pkg/tfnodes"
	"github.com/spectrawave/tfgraph/pkg/types"
)

func appendSpectrum(t *testing.T, w *tfnodes.Waterfall, row []float64, at time.Time) {
	t.Helper()
	w.SetInput("spectrum", types.RealValue(row))
	w.SetInput("time_point", types.TimeValue([]time.Time{at}))
	if _, err := w.GetOutput("history"); err != nil {
		t.Fatalf("GetOutput(history): %v", err)
	}
}

func TestWaterfallFirstExecutionInsertsZeroRowQuirk(t *testing.T) {
	w := tfnodes.NewWaterfall("waterfall")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	appendSpectrum(t, w, []float64{1, 2, 3}, base)

	out, _ := w.GetOutput("history")
	history, _ := out.History()
	if len(history.Spectra) != 2 {
		t.Fatalf("expected 2 rows after first execute (zero row + real row), got %d", len(history.Spectra))
	}
	for _, v := range history.Spectra[0] {
		if v != 0 {
			t.Fatalf("expected the first row to be the zero-row quirk, got %v", history.Spectra[0])
		}
	}
	if history.Spectra[1][0] != 1 || history.Spectra[1][1] != 2 || history.Spectra[1][2] != 3 {
		t.Fatalf("expected second row to be the appended spectrum, got %v", history.Spectra[1])
	}
}

func TestWaterfallRespectsHistorySize(t *testing.T) {
	w := tfnodes.NewWaterfall("waterfall")
	w.SetParameter("history_size", types.ScalarValue(5))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		appendSpectrum(t, w, []float64{float64(i)}, base.Add(time.Duration(i)*time.Second))
	}

	out, _ := w.GetOutput("history")
	history, _ := out.History()
	if len(history.Spectra) != 5 {
		t.Fatalf("expected history capped at 5 rows, got %d", len(history.Spectra))
	}
	// windows 6..10 (0-indexed values 5..9) should be the surviving rows.
	for i, row := range history.Spectra {
		want := float64(5 + i)
		if row[0] != want {
			t.Fatalf("row %d: got %v, want %v", i, row[0], want)
		}
	}
}

func TestWaterfallRejectsColumnWidthChange(t *testing.T) {
	w := tfnodes.NewWaterfall("waterfall")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	appendSpectrum(t, w, []float64{1, 2, 3}, base)

	w.SetInput("spectrum", types.RealValue([]float64{1, 2}))
	w.SetInput("time_point", types.TimeValue([]time.Time{base.Add(time.Second)}))
	if _, err := w.GetOutput("history"); err == nil {
		t.Fatal("expected ValidationError for a column width change")
	}
}

func TestWaterfallClearHistoryResetsAndReseedsZeroRow(t *testing.T) {
	w := tfnodes.NewWaterfall("waterfall")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	appendSpectrum(t, w, []float64{1, 2}, base)

	w.ClearHistory()
	appendSpectrum(t, w, []float64{9, 9}, base.Add(time.Second))

	out, _ := w.GetOutput("history")
	history, _ := out.History()
	if len(history.Spectra) != 2 {
		t.Fatalf("expected the zero-row quirk to reappear after ClearHistory, got %d rows", len(history.Spectra))
	}
	if history.Spectra[0][0] != 0 {
		t.Fatalf("expected a fresh zero row, got %v", history.Spectra[0])
	}
}

func TestWaterfallSetHistorySizeTruncatesFromHead(t *testing.T) {
	w := tfnodes.NewWaterfall("waterfall")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		appendSpectrum(t, w, []float64{float64(i)}, base.Add(time.Duration(i)*time.Second))
	}
	if err := w.SetHistorySize(2); err != nil {
		t.Fatalf("SetHistorySize: %v", err)
	}

	out, ok := w.Output("history")
	if !ok {
		t.Fatal("expected history output to be populated immediately by SetHistorySize")
	}
	history, _ := out.History()
	if len(history.Spectra) != 2 {
		t.Fatalf("expected immediate truncation to 2 rows, got %d", len(history.Spectra))
	}
	if w.IsDirty() {
		t.Fatal("expected node to remain clean after a truncate-only history size change")
	}
}

func TestWaterfallSetHistorySizeRejectsBelowTwo(t *testing.T) {
	w := tfnodes.NewWaterfall("waterfall")
	if err := w.SetHistorySize(1); err == nil {
		t.Fatal("expected error for history_size < 2")
	}
}
