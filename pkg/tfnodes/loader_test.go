package tfnodes_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spectrawave/tfgraph/pkg/tfnodes"
	"github.com/spectrawave/tfgraph/pkg/types"
)

func writeCSV(t *testing.T, rows string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "signal.csv")
	if err := os.WriteFile(path, []byte(rows), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDataLoaderMissingFilenameParameter(t *testing.T) {
	n := tfnodes.NewDataLoader("loader")
	if _, err := n.GetOutput("time"); err == nil {
		t.Fatal("expected MissingParameter error")
	}
}

func TestDataLoaderRejectsMissingFile(t *testing.T) {
	n := tfnodes.NewDataLoader("loader")
	n.SetParameter("filename", types.TextValue("/no/such/file.csv"))
	if _, err := n.GetOutput("time"); err == nil {
		t.Fatal("expected FileNotFound error")
	}
}

func TestDataLoaderSortsByTimeAndComputesRate(t *testing.T) {
	path := writeCSV(t, "2024-01-01 00:00:02.000,3\n2024-01-01 00:00:00.000,1\n2024-01-01 00:00:01.000,2\n")
	n := tfnodes.NewDataLoader("loader")
	n.SetParameter("filename", types.TextValue(path))

	timeOut, err := n.GetOutput("time")
	if err != nil {
		t.Fatalf("GetOutput(time): %v", err)
	}
	valueOut, _ := n.GetOutput("value")
	fsOut, _ := n.GetOutput("fs")

	times, _ := timeOut.Time()
	values, _ := valueOut.Real()
	fs, _ := fsOut.Scalar()

	if len(times) != 3 || len(values) != 3 {
		t.Fatalf("expected 3 rows, got %d times, %d values", len(times), len(values))
	}
	if values[0] != 1 || values[1] != 2 || values[2] != 3 {
		t.Fatalf("expected values sorted by time to be [1,2,3], got %v", values)
	}
	if fs < 0.99 || fs > 1.01 {
		t.Fatalf("expected fs ~= 1.0, got %v", fs)
	}
}

func TestDataLoaderMemoizesUntilParameterChanges(t *testing.T) {
	path := writeCSV(t, "2024-01-01 00:00:00.000,1\n2024-01-01 00:00:01.000,2\n")
	n := tfnodes.NewDataLoader("loader")
	n.SetParameter("filename", types.TextValue(path))

	if _, err := n.GetOutput("time"); err != nil {
		t.Fatalf("GetOutput(time): %v", err)
	}
	if n.IsDirty() {
		t.Fatal("expected node to be clean after a successful execute")
	}

	n.SetParameter("filename", types.TextValue(path))
	if !n.IsDirty() {
		t.Fatal("expected a parameter change to mark the node dirty again")
	}
}
