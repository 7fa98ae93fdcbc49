package chart

import (
	"fmt"
	"math"
	"strings"

	"econ_explorer/pkg/models"
)

// LossColor draws the negative half of a sign-crossing series.
const LossColor = "#e53935"

// Config holds rendering parameters for SVG scenes.
type Config struct {
	Width        int    // SVG width in pixels (default: 800)
	Height       int    // SVG height in pixels (default: 400)
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	BgColor      string
	GridColor    string
	TextColor    string
	FontSize     int
	Title        string
}

// DefaultConfig returns sensible defaults for chart rendering.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       400,
		MarginTop:    40,
		MarginRight:  30,
		MarginBottom: 40,
		MarginLeft:   60,
		BgColor:      "#ffffff",
		GridColor:    "#e8e8e8",
		TextColor:    "#333333",
		FontSize:     11,
	}
}

// plotArea returns the usable drawing area dimensions.
func (c Config) plotArea() (x, y, w, h int) {
	return c.MarginLeft, c.MarginTop,
		c.Width - c.MarginLeft - c.MarginRight,
		c.Height - c.MarginTop - c.MarginBottom
}

// Scene is a rendered chart plus the hit-testing metadata the API layer
// needs to answer pointer queries without re-deriving the scales.
type Scene struct {
	SVG      string   `json:"svg"`
	Columns  []Column `json:"columns"`
	PlotLeft float64  `json:"plot_left"`
	PlotTop  float64  `json:"plot_top"`
	Width    float64  `json:"plot_width"`
	Height   float64  `json:"plot_height"`
	YLo      float64  `json:"y_lo"`
	YHi      float64  `json:"y_hi"`
}

// ScaleY returns the scene's data→pixel y mapping (plot-relative).
func (s Scene) ScaleY(v float64) float64 {
	return ScaleValue(v, s.YLo, s.YHi, s.Height, true)
}

// dropNonFinite filters out points with no plottable y.
func dropNonFinite(s models.ChartSeries) models.ChartSeries {
	kept := make([]models.ChartPoint, 0, len(s.Points))
	for _, p := range s.Points {
		if math.IsInf(p.Y, 0) || math.IsNaN(p.Y) {
			continue
		}
		kept = append(kept, p)
	}
	s.Points = kept
	return s
}

// RenderCurves composes the scale, spline and hit-test layers into an SVG
// curve scene. Series whose kind crosses zero are split at the axis and
// drawn as two sub-paths, the negative half in LossColor.
func RenderCurves(series []models.ChartSeries, cfg Config) Scene {
	if cfg.Width == 0 {
		cfg = DefaultConfig()
	}
	px, py, pw, ph := cfg.plotArea()

	plottable := make([]models.ChartSeries, 0, len(series))
	for _, s := range series {
		plottable = append(plottable, dropNonFinite(s))
	}

	yLo, yHi := Domain(plottable)
	xLo, xHi := DomainX(plottable)
	scaleX := func(v float64) float64 { return ScaleValue(v, xLo, xHi, float64(pw), false) }
	scaleY := func(v float64) float64 { return ScaleValue(v, yLo, yHi, float64(ph), true) }

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor))
	if cfg.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="24" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
			cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title)))
	}
	writeGrid(&sb, cfg, px, py, pw, ph, yLo, yHi)
	writeZeroLine(&sb, cfg, px, py, pw, scaleY(0))

	sb.WriteString(fmt.Sprintf(`<g transform="translate(%d,%d)">`, px, py))
	for _, s := range plottable {
		if s.Kind.CrossesZero() {
			gains, losses := SplitAtZeroCrossing(s.Points)
			writeCurve(&sb, scalePoints(gains, scaleX, scaleY), s.Color)
			writeCurve(&sb, scalePoints(losses, scaleX, scaleY), LossColor)
		} else {
			writeCurve(&sb, scalePoints(s.Points, scaleX, scaleY), s.Color)
		}
	}
	sb.WriteString(`</g>`)
	writeLegend(&sb, cfg, plottable, px, py)
	sb.WriteString("</svg>")

	return Scene{
		SVG:      sb.String(),
		Columns:  columnsFor(plottable, scaleX),
		PlotLeft: float64(px),
		PlotTop:  float64(py),
		Width:    float64(pw),
		Height:   float64(ph),
		YLo:      yLo,
		YHi:      yHi,
	}
}

// RenderBars renders the same series as a grouped bar scene.
func RenderBars(series []models.ChartSeries, cfg Config) Scene {
	if cfg.Width == 0 {
		cfg = DefaultConfig()
	}
	px, py, pw, ph := cfg.plotArea()

	plottable := make([]models.ChartSeries, 0, len(series))
	for _, s := range series {
		plottable = append(plottable, dropNonFinite(s))
	}

	yLo, yHi := Domain(plottable)
	scaleY := func(v float64) float64 { return ScaleValue(v, yLo, yHi, float64(ph), true) }
	xs := DistinctXs(plottable)
	bars := LayoutBars(plottable, xs, float64(pw), scaleY)

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor))
	if cfg.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="24" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
			cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title)))
	}
	writeGrid(&sb, cfg, px, py, pw, ph, yLo, yHi)
	writeZeroLine(&sb, cfg, px, py, pw, scaleY(0))

	sb.WriteString(fmt.Sprintf(`<g transform="translate(%d,%d)">`, px, py))
	for _, b := range bars {
		color := b.Color
		if b.Value < 0 && b.Kind.CrossesZero() {
			color = LossColor
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`,
			b.X, b.Y, b.Width, b.Height, color))
	}
	sb.WriteString(`</g>`)
	writeLegend(&sb, cfg, plottable, px, py)
	sb.WriteString("</svg>")

	// Band centers double as tooltip columns.
	columns := make([]Column, 0, len(xs))
	if len(xs) > 0 {
		bandWidth := float64(pw) / float64(len(xs))
		for i, x := range xs {
			columns = append(columns, Column{X: x, PixelX: bandWidth * (float64(i) + 0.5)})
		}
	}

	return Scene{
		SVG:      sb.String(),
		Columns:  columns,
		PlotLeft: float64(px),
		PlotTop:  float64(py),
		Width:    float64(pw),
		Height:   float64(ph),
		YLo:      yLo,
		YHi:      yHi,
	}
}

func scalePoints(points []models.ChartPoint, scaleX, scaleY func(float64) float64) []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(points))
	for _, p := range points {
		out = append(out, models.ChartPoint{X: scaleX(p.X), Y: scaleY(p.Y)})
	}
	return out
}

func columnsFor(series []models.ChartSeries, scaleX func(float64) float64) []Column {
	xs := DistinctXs(series)
	cols := make([]Column, 0, len(xs))
	for _, x := range xs {
		cols = append(cols, Column{X: x, PixelX: scaleX(x)})
	}
	return cols
}

func writeCurve(sb *strings.Builder, points []models.ChartPoint, color string) {
	d := BuildSmoothPath(points)
	if d == "" {
		return
	}
	sb.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="2"/>`, d, color))
}

func writeGrid(sb *strings.Builder, cfg Config, px, py, pw, ph int, lo, hi float64) {
	gridLines := 5
	for i := 0; i <= gridLines; i++ {
		val := lo + (hi-lo)*float64(i)/float64(gridLines)
		y := py + ph - int(float64(ph)*float64(i)/float64(gridLines))
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-dasharray="3,3"/>`,
			px, y, px+pw, y, cfg.GridColor))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="%d" fill="%s" text-anchor="end">%.0f</text>`,
			px-5, y+4, cfg.FontSize, cfg.TextColor, val))
	}
}

func writeZeroLine(sb *strings.Builder, cfg Config, px, py, pw int, zeroY float64) {
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-width="1"/>`,
		px, float64(py)+zeroY, px+pw, float64(py)+zeroY, cfg.TextColor))
}

func writeLegend(sb *strings.Builder, cfg Config, series []models.ChartSeries, px, py int) {
	for si, s := range series {
		ly := py + 10 + si*16
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>`,
			px+10, ly, px+30, ly, s.Color))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="10" fill="%s">%s</text>`,
			px+35, ly+4, cfg.TextColor, escapeXML(s.Label)))
	}
}

func svgHeader(cfg Config) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
