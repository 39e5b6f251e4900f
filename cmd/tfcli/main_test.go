package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunProducesSummaryForSyntheticSignal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signal.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	fs := 1.0
	n := 1000
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(float64(i) / fs * float64(time.Second)))
		v := math.Sin(2 * math.Pi * 0.01 * float64(i) / fs)
		fmt.Fprintf(f, "%s,%f\n", ts.Format("2006-01-02 15:04:05.000"), v)
	}
	f.Close()

	if err := run(path, 100, 0, 1, 0, 5, 0.01, 0.005, 0.02, 20); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunRejectsUnknownFilterType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signal.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		ts := base.Add(time.Duration(i) * time.Second)
		fmt.Fprintf(f, "%s,%f\n", ts.Format("2006-01-02 15:04:05.000"), math.Sin(float64(i)))
	}
	f.Close()

	if err := run(path, 10, 0, 1, 99, 5, 0.01, 0, 0.001, 20); err == nil {
		t.Fatal("expected an error for an unknown -filter value")
	}
}
