package chart

import (
	"math"

	"econ_explorer/pkg/models"
)

// barPadFraction is the share of each band reserved as side padding
// before the band's remaining width is split across the series.
const barPadFraction = 0.2

// Bar is one rectangle in a grouped bar chart, already in pixel space.
type Bar struct {
	Kind   models.SeriesKind `json:"kind"`
	Label  string            `json:"label"`
	Color  string            `json:"color"`
	X      float64           `json:"x"`
	Y      float64           `json:"y"`
	Width  float64           `json:"width"`
	Height float64           `json:"height"`
	Value  float64           `json:"value"`
}

// LayoutBars partitions the plot width into one equal-width band per
// distinct x-value and packs each series' bar side by side inside the
// band, minus the pad fraction. A bar spans from the zero-line to the
// value's scaled position; negative values grow downward from the line.
func LayoutBars(series []models.ChartSeries, xs []float64, plotWidth float64, scaleY func(float64) float64) []Bar {
	if len(xs) == 0 || len(series) == 0 {
		return nil
	}

	bandWidth := plotWidth / float64(len(xs))
	pad := bandWidth * barPadFraction
	barWidth := (bandWidth - 2*pad) / float64(len(series))
	zeroY := scaleY(0)

	var bars []Bar
	for bi, x := range xs {
		bandLeft := float64(bi) * bandWidth
		for si, s := range series {
			p, ok := pointAt(s, x)
			if !ok || math.IsInf(p.Y, 0) || math.IsNaN(p.Y) {
				continue
			}
			valY := scaleY(p.Y)
			top := math.Min(valY, zeroY)
			bars = append(bars, Bar{
				Kind:   s.Kind,
				Label:  s.Label,
				Color:  s.Color,
				X:      bandLeft + pad + float64(si)*barWidth,
				Y:      top,
				Width:  barWidth,
				Height: math.Abs(valY - zeroY),
				Value:  p.Y,
			})
		}
	}
	return bars
}

// ResolveBand maps a pointer's pixel x to a band index, band-keyed rather
// than point-centered: band i owns [i*bandWidth, (i+1)*bandWidth).
func ResolveBand(pointerX float64, bandCount int, plotWidth float64) (int, bool) {
	if bandCount == 0 || plotWidth <= 0 || pointerX < 0 || pointerX > plotWidth {
		return 0, false
	}
	idx := int(pointerX / (plotWidth / float64(bandCount)))
	if idx >= bandCount {
		idx = bandCount - 1
	}
	return idx, true
}

func pointAt(s models.ChartSeries, x float64) (models.ChartPoint, bool) {
	for _, p := range s.Points {
		if p.X == x {
			return p, true
		}
	}
	return models.ChartPoint{}, false
}
