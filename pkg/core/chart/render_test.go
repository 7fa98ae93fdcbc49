package chart

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"econ_explorer/pkg/models"
)

func parseSVG(t *testing.T, svg string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(svg))
	if err != nil {
		t.Fatalf("Rendered SVG did not parse: %v", err)
	}
	return doc
}

func profitSeries() models.ChartSeries {
	return models.ChartSeries{
		Kind:  models.KindTotalProfit,
		Label: "Total Profit",
		Color: "#4caf50",
		Points: []models.ChartPoint{
			{X: 0, Y: -100}, {X: 1, Y: -50}, {X: 2, Y: 25}, {X: 3, Y: 95},
		},
	}
}

func TestRenderCurvesSplitsSignCrossingSeries(t *testing.T) {
	scene := RenderCurves([]models.ChartSeries{profitSeries()}, DefaultConfig())
	doc := parseSVG(t, scene.SVG)

	paths := doc.Find("path")
	if paths.Length() != 2 {
		t.Fatalf("Expected 2 sub-paths for a sign-crossing series, got %d", paths.Length())
	}
	var strokes []string
	paths.Each(func(_ int, sel *goquery.Selection) {
		stroke, _ := sel.Attr("stroke")
		strokes = append(strokes, stroke)
	})
	if strokes[0] != "#4caf50" {
		t.Errorf("Non-negative half must keep the series color, got %s", strokes[0])
	}
	if strokes[1] != LossColor {
		t.Errorf("Negative half must render in the loss color, got %s", strokes[1])
	}
}

func TestRenderCurvesSingleContinuousPath(t *testing.T) {
	series := models.ChartSeries{
		Kind:  models.KindTotalCost,
		Label: "Total Cost",
		Color: "#ff9800",
		Points: []models.ChartPoint{
			{X: 0, Y: 100}, {X: 1, Y: 260}, {X: 2, Y: 420},
		},
	}
	scene := RenderCurves([]models.ChartSeries{series}, DefaultConfig())
	doc := parseSVG(t, scene.SVG)

	if got := doc.Find("path").Length(); got != 1 {
		t.Errorf("Non-crossing series must render as one path, got %d", got)
	}
}

func TestRenderCurvesDropsUndefinedPoints(t *testing.T) {
	series := models.ChartSeries{
		Kind:  models.KindMarginalCost,
		Label: "Marginal Cost",
		Color: "#9c27b0",
		Points: []models.ChartPoint{
			{X: 0, Y: models.Undefined}, {X: 1, Y: 16}, {X: 2, Y: 10.67}, {X: 3, Y: 8},
		},
	}
	scene := RenderCurves([]models.ChartSeries{series}, DefaultConfig())
	if strings.Contains(scene.SVG, "Inf") || strings.Contains(scene.SVG, "NaN") {
		t.Errorf("Sentinel values leaked into the SVG")
	}
	// Columns still cover the finite points.
	if len(scene.Columns) != 3 {
		t.Errorf("Expected 3 columns after dropping the undefined point, got %d", len(scene.Columns))
	}
}

func TestRenderCurvesSceneMetadata(t *testing.T) {
	cfg := DefaultConfig()
	scene := RenderCurves([]models.ChartSeries{profitSeries()}, cfg)

	px, py, pw, ph := cfg.plotArea()
	if scene.PlotLeft != float64(px) || scene.PlotTop != float64(py) {
		t.Errorf("Scene origin mismatch: %+v", scene)
	}
	if scene.Width != float64(pw) || scene.Height != float64(ph) {
		t.Errorf("Scene extent mismatch: %+v", scene)
	}
	// Columns are ascending and inside the plot.
	for i, c := range scene.Columns {
		if c.PixelX < 0 || c.PixelX > scene.Width {
			t.Errorf("Column %d outside plot: %+v", i, c)
		}
		if i > 0 && c.PixelX <= scene.Columns[i-1].PixelX {
			t.Errorf("Columns not ascending at %d", i)
		}
	}
}

func TestRenderBarsScene(t *testing.T) {
	series := []models.ChartSeries{
		profitSeries(),
		{
			Kind: models.KindTotalRevenue, Label: "Total Revenue", Color: "#2196f3",
			Points: []models.ChartPoint{{X: 0, Y: 0}, {X: 1, Y: 150}, {X: 2, Y: 375}, {X: 3, Y: 675}},
		},
	}
	scene := RenderBars(series, DefaultConfig())
	doc := parseSVG(t, scene.SVG)

	// Background rect + one rect per finite bar (2 series x 4 bands).
	rects := doc.Find("rect")
	if rects.Length() != 9 {
		t.Errorf("Expected 9 rects (1 background + 8 bars), got %d", rects.Length())
	}
	if len(scene.Columns) != 4 {
		t.Errorf("Expected 4 band columns, got %d", len(scene.Columns))
	}
	// Negative profit bars pick up the loss color.
	if !strings.Contains(scene.SVG, LossColor) {
		t.Errorf("Expected loss-colored bars for negative profit")
	}
}
