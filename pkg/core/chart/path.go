package chart

import (
	"fmt"
	"strings"

	"econ_explorer/pkg/models"
)

// tension controls how strongly a point's neighbors pull its tangent in
// the Catmull-Rom construction.
const tension = 0.5

// BuildSmoothPath renders already-scaled pixel points as an SVG path: a
// Catmull-Rom-style spline expressed as cubic Bézier segments. For each
// segment p1→p2 the control points come from the neighbors p0 and p3
// (clamped to p1/p2 at the ends) via tangent = (next - prev) * tension.
//
// Fewer than 2 points produce an empty path; exactly 2 a straight line.
// The spline passes through every input point, so the path's endpoints
// equal the first and last inputs exactly.
func BuildSmoothPath(points []models.ChartPoint) string {
	if len(points) < 2 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("M %.2f %.2f", points[0].X, points[0].Y))

	if len(points) == 2 {
		sb.WriteString(fmt.Sprintf(" L %.2f %.2f", points[1].X, points[1].Y))
		return sb.String()
	}

	for i := 0; i < len(points)-1; i++ {
		p1 := points[i]
		p2 := points[i+1]
		p0 := p1
		if i > 0 {
			p0 = points[i-1]
		}
		p3 := p2
		if i+2 < len(points) {
			p3 = points[i+2]
		}

		c1 := models.ChartPoint{
			X: p1.X + (p2.X-p0.X)*tension/2,
			Y: p1.Y + (p2.Y-p0.Y)*tension/2,
		}
		c2 := models.ChartPoint{
			X: p2.X - (p3.X-p1.X)*tension/2,
			Y: p2.Y - (p3.Y-p1.Y)*tension/2,
		}

		sb.WriteString(fmt.Sprintf(" C %.2f %.2f, %.2f %.2f, %.2f %.2f",
			c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y))
	}

	return sb.String()
}

// SplitAtZeroCrossing partitions data-space points (NOT yet scaled to
// pixels) into a non-negative half (y >= 0) and a non-positive half
// (y <= 0), preserving order within each. At the first strict sign change
// between consecutive points the crossing x is interpolated:
//
//	x0 = p1.x - p1.y * (p2.x - p1.x) / (p2.y - p1.y)
//
// and (x0, 0) is inserted into both halves at the seam — appended to the
// half being exited, prepended to the half being entered — so both render
// as continuous paths meeting at the axis.
//
// Only the first sign change seeds the seam; these production series are
// expected to cross at most once.
func SplitAtZeroCrossing(points []models.ChartPoint) (nonNegative, negative []models.ChartPoint) {
	for _, p := range points {
		if p.Y >= 0 {
			nonNegative = append(nonNegative, p)
		}
		if p.Y <= 0 {
			negative = append(negative, p)
		}
	}

	for i := 0; i < len(points)-1; i++ {
		p1 := points[i]
		p2 := points[i+1]
		crossesDown := p1.Y >= 0 && p2.Y < 0
		crossesUp := p1.Y < 0 && p2.Y >= 0
		if !crossesDown && !crossesUp {
			continue
		}

		x0 := p1.X - p1.Y*(p2.X-p1.X)/(p2.Y-p1.Y)
		seam := models.ChartPoint{X: x0, Y: 0}
		if crossesDown {
			nonNegative = insertAfterX(nonNegative, seam, p1.X)
			negative = insertBeforeX(negative, seam, p2.X)
		} else {
			negative = insertAfterX(negative, seam, p1.X)
			nonNegative = insertBeforeX(nonNegative, seam, p2.X)
		}
		break
	}

	return nonNegative, negative
}

// insertAfterX places seam immediately after the element with x == afterX.
func insertAfterX(list []models.ChartPoint, seam models.ChartPoint, afterX float64) []models.ChartPoint {
	for i, p := range list {
		if p.X == afterX {
			out := make([]models.ChartPoint, 0, len(list)+1)
			out = append(out, list[:i+1]...)
			out = append(out, seam)
			out = append(out, list[i+1:]...)
			return out
		}
	}
	return append(list, seam)
}

// insertBeforeX places seam immediately before the element with x == beforeX.
func insertBeforeX(list []models.ChartPoint, seam models.ChartPoint, beforeX float64) []models.ChartPoint {
	for i, p := range list {
		if p.X == beforeX {
			out := make([]models.ChartPoint, 0, len(list)+1)
			out = append(out, list[:i]...)
			out = append(out, seam)
			out = append(out, list[i:]...)
			return out
		}
	}
	return append([]models.ChartPoint{seam}, list...)
}
