package telemetry_test

import (
	"testing"

	"github.com/Gunvolt24/myform/pkg/telemetry"
)

func TestClampRatio(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := telemetry.ClampRatio(tt.in); got != tt.want {
			t.Fatalf("ClampRatio(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTracer_NoopByDefault(t *testing.T) {
	if telemetry.Tracer() == nil {
		t.Fatal("Tracer must never be nil")
	}
}
