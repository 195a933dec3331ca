package tooltip

import (
	"math"
	"testing"
)

func TestFixedRounding(t *testing.T) {
	tests := []struct {
		value  float64
		places int32
		want   string
	}{
		{12.3456, 3, "12.346"},
		{-7.891, 3, "-7.891"},
		{12.34, 1, "12.3"},
		{3.456, 1, "3.5"},
		{10.005, 2, "10.01"},
		{-2.25, 1, "-2.3"},
		{0.05, 1, "0.1"},
		{7, 2, "7.00"},
		{1234567.891, 1, "1234567.9"},
		{-0.0001, 3, "-0.000"},
		{-0.04, 1, "-0.0"},
		{math.Copysign(0, -1), 2, "0.00"},
		{math.NaN(), 1, "NaN"},
		{math.Inf(1), 2, "Infinity"},
		{math.Inf(-1), 3, "-Infinity"},
	}
	for _, tt := range tests {
		if got := fixed(tt.value, tt.places); got != tt.want {
			t.Errorf("fixed(%v, %d) = %q, want %q", tt.value, tt.places, got, tt.want)
		}
	}
}

func TestUnitSuffixes(t *testing.T) {
	if got := Kilograms(2); got != "2.0 kg" {
		t.Fatalf("Kilograms = %q", got)
	}
	if got := Hours(0.75); got != "0.8 hours" {
		t.Fatalf("Hours = %q", got)
	}
	if got := Distance(1.5); got != "1.50 units" {
		t.Fatalf("Distance = %q", got)
	}
	if got := Coordinate(-180); got != "-180.000" {
		t.Fatalf("Coordinate = %q", got)
	}
}
