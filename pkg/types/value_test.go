package types_test

import (
	"errors"
	"testing"
	"time"

	"github.com/spectrawave/tfgraph/pkg/types"
)

func TestAccessorsRejectWrongKind(t *testing.T) {
	v := types.ScalarValue(3.5)

	if _, ok := v.Real(); ok {
		t.Fatal("expected Real() to fail on a scalar value")
	}
	if _, ok := v.Time(); ok {
		t.Fatal("expected Time() to fail on a scalar value")
	}
	if _, ok := v.Text(); ok {
		t.Fatal("expected Text() to fail on a scalar value")
	}
	if _, ok := v.Bool(); ok {
		t.Fatal("expected Bool() to fail on a scalar value")
	}
	if _, ok := v.Spectrum(); ok {
		t.Fatal("expected Spectrum() to fail on a scalar value")
	}
	if _, ok := v.History(); ok {
		t.Fatal("expected History() to fail on a scalar value")
	}

	got, ok := v.Scalar()
	if !ok || got != 3.5 {
		t.Fatalf("expected Scalar() = (3.5, true), got (%v, %v)", got, ok)
	}
}

func TestEachConstructorRoundTripsItsOwnKind(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		v    types.PortValue
		kind types.Kind
	}{
		{"time", types.TimeValue([]time.Time{now}), types.KindTime},
		{"real", types.RealValue([]float64{1, 2, 3}), types.KindReal},
		{"scalar", types.ScalarValue(1.0), types.KindScalar},
		{"spectrum", types.SpectrumValue(types.SpectrumData{Freqs: []float64{0.01}, Mags: []float64{1}}), types.KindSpectrum},
		{"history", types.HistoryValue(types.HistoryData{Spectra: [][]float64{{1, 2}}}), types.KindHistory},
		{"bool", types.BoolValue(true), types.KindBool},
		{"text", types.TextValue("hello"), types.KindText},
	}

	for _, tc := range cases {
		if got := tc.v.Kind(); got != tc.kind {
			t.Errorf("%s: expected Kind() = %v, got %v", tc.name, tc.kind, got)
		}
	}
}

func TestSameKind(t *testing.T) {
	if !types.SameKind(types.RealValue([]float64{1}), types.RealValue([]float64{2})) {
		t.Fatal("expected two real values to share a kind")
	}
	if types.SameKind(types.RealValue([]float64{1}), types.ScalarValue(1)) {
		t.Fatal("expected a real value and a scalar value to differ in kind")
	}
}

func TestErrorConstructorsWrapTheirSentinel(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"missing parameter", types.MissingParameterError("loader", "filename"), types.ErrMissingParameter},
		{"missing input", types.MissingInputError("filter", "value"), types.ErrMissingInput},
		{"validation", types.ValidationError("slicer", "step_points must be >= 1"), types.ErrValidation},
		{"missing output", types.MissingOutputError("spectrum", "f_plot"), types.ErrMissingOutput},
		{"duplicate name", types.DuplicateNameError("loader"), types.ErrDuplicateName},
		{"unknown node", types.UnknownNodeError("ghost"), types.ErrUnknownNode},
		{"port occupied", types.PortOccupiedError("filter", "value"), types.ErrPortOccupied},
		{"cycle introduced", types.CycleIntroducedError("a", "b"), types.ErrCycleIntroduced},
		{"cycle detected", types.CycleDetectedError(), types.ErrCycleDetected},
	}

	for _, tc := range cases {
		if !errors.Is(tc.err, tc.want) {
			t.Errorf("%s: expected errors.Is(%v, %v) to hold", tc.name, tc.err, tc.want)
		}
	}
}
