package chart

import (
	"math"
	"sort"

	"econ_explorer/pkg/models"
)

// Column pairs a data-space x with its scaled pixel position.
type Column struct {
	X      float64 `json:"x"`
	PixelX float64 `json:"pixel_x"`
}

// TooltipValue is one series' reading at a resolved column.
type TooltipValue struct {
	Kind   models.SeriesKind `json:"kind"`
	Label  string            `json:"label"`
	Color  string            `json:"color"`
	Value  float64           `json:"value"`
	PixelY float64           `json:"pixel_y"`
}

// Tooltip is the shared box shown for one column: every series value at
// that x, vertically anchored at the mean of the matched pixel ys.
type Tooltip struct {
	X      float64        `json:"x"`
	PixelX float64        `json:"pixel_x"`
	PixelY float64        `json:"pixel_y"`
	Values []TooltipValue `json:"values"`
}

// DistinctXs returns the deduplicated x-values across all series, sorted
// ascending. These are the tooltip columns.
func DistinctXs(series []models.ChartSeries) []float64 {
	seen := map[float64]bool{}
	var xs []float64
	for _, s := range series {
		for _, p := range s.Points {
			if !seen[p.X] {
				seen[p.X] = true
				xs = append(xs, p.X)
			}
		}
	}
	sort.Float64s(xs)
	return xs
}

// ResolveColumn maps a pointer's pixel x to a column by region
// containment: each column owns an invisible full-height band centered on
// its scaled position, extending halfway to each neighbor (a lone column
// owns the whole plot width). Returns false when the pointer falls
// outside every band.
func ResolveColumn(pointerX float64, columns []Column, plotWidth float64) (Column, bool) {
	for i, col := range columns {
		left := 0.0
		right := plotWidth
		if i > 0 {
			left = (columns[i-1].PixelX + col.PixelX) / 2
		}
		if i < len(columns)-1 {
			right = (col.PixelX + columns[i+1].PixelX) / 2
		}
		if pointerX >= left && pointerX <= right {
			return col, true
		}
	}
	return Column{}, false
}

// TooltipAt gathers every series' point at the resolved column. Series
// with no point at that x, and non-finite readings, are skipped. The
// tooltip's pixel y is the arithmetic mean of the matched points' scaled
// ys — a box anchor, not a data value.
func TooltipAt(col Column, series []models.ChartSeries, scaleY func(float64) float64) Tooltip {
	tip := Tooltip{X: col.X, PixelX: col.PixelX}
	var ySum float64
	for _, s := range series {
		for _, p := range s.Points {
			if p.X != col.X {
				continue
			}
			if math.IsInf(p.Y, 0) || math.IsNaN(p.Y) {
				break
			}
			py := scaleY(p.Y)
			tip.Values = append(tip.Values, TooltipValue{
				Kind:   s.Kind,
				Label:  s.Label,
				Color:  s.Color,
				Value:  p.Y,
				PixelY: py,
			})
			ySum += py
			break
		}
	}
	if len(tip.Values) > 0 {
		tip.PixelY = ySum / float64(len(tip.Values))
	}
	return tip
}
