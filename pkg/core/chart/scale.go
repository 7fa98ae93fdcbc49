// Package chart turns metric series into drawable SVG scenes: linear
// scales, Catmull-Rom smoothed paths with zero-crossing splits, grouped
// bar layout and column hit-testing for tooltips.
package chart

import (
	"math"

	"econ_explorer/pkg/models"
)

// ScaleValue maps v linearly from [lo, hi] onto [0, extent]. With invert
// set, larger values map toward 0 so they render higher on screen.
//
// A degenerate domain (lo == hi, e.g. a single-category or all-zero
// series) maps every value to the midpoint of the target interval. The
// midpoint is the correct answer, not a guard: without it such series
// produce NaN coordinates.
func ScaleValue(v, lo, hi, extent float64, invert bool) float64 {
	if lo == hi {
		return extent / 2
	}
	scaled := extent * (v - lo) / (hi - lo)
	if invert {
		return extent - scaled
	}
	return scaled
}

// Domain computes the [lo, hi] value range of the given series, always
// extended to include 0 so the axis origin stays in view. Non-finite
// points are ignored. An empty input yields [0, 0], which ScaleValue
// resolves to the midpoint.
func Domain(series []models.ChartSeries) (lo, hi float64) {
	for _, s := range series {
		for _, p := range s.Points {
			if math.IsInf(p.Y, 0) || math.IsNaN(p.Y) {
				continue
			}
			if p.Y < lo {
				lo = p.Y
			}
			if p.Y > hi {
				hi = p.Y
			}
		}
	}
	return lo, hi
}

// DomainX computes the [lo, hi] x-range across the series, extended to
// include 0 like Domain.
func DomainX(series []models.ChartSeries) (lo, hi float64) {
	for _, s := range series {
		for _, p := range s.Points {
			if p.X < lo {
				lo = p.X
			}
			if p.X > hi {
				hi = p.X
			}
		}
	}
	return lo, hi
}
