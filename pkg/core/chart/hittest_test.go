package chart

import (
	"testing"

	"econ_explorer/pkg/models"
)

func twoSeries() []models.ChartSeries {
	return []models.ChartSeries{
		{
			Kind: models.KindTotalRevenue, Label: "Total Revenue", Color: "#2196f3",
			Points: []models.ChartPoint{{X: 0, Y: 0}, {X: 1, Y: 150}, {X: 2, Y: 375}},
		},
		{
			Kind: models.KindTotalCost, Label: "Total Cost", Color: "#ff9800",
			Points: []models.ChartPoint{{X: 0, Y: 100}, {X: 1, Y: 260}, {X: 2, Y: 420}},
		},
	}
}

func TestDistinctXs(t *testing.T) {
	xs := DistinctXs(twoSeries())
	want := []float64{0, 1, 2}
	if len(xs) != len(want) {
		t.Fatalf("Expected %d columns, got %d", len(want), len(xs))
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("Column %d: expected %f, got %f", i, want[i], xs[i])
		}
	}
}

func TestResolveColumnRegionContainment(t *testing.T) {
	columns := []Column{{X: 0, PixelX: 0}, {X: 1, PixelX: 100}, {X: 2, PixelX: 200}}

	// Band edges sit halfway between neighbors: anything in (50, 150) is column 1.
	col, ok := ResolveColumn(60, columns, 200)
	if !ok || col.X != 1 {
		t.Errorf("Expected column x=1 at pointer 60, got %+v ok=%v", col, ok)
	}
	col, ok = ResolveColumn(149, columns, 200)
	if !ok || col.X != 1 {
		t.Errorf("Expected column x=1 at pointer 149, got %+v", col)
	}
	// First band starts at the plot's left edge.
	col, ok = ResolveColumn(10, columns, 200)
	if !ok || col.X != 0 {
		t.Errorf("Expected column x=0 at pointer 10, got %+v", col)
	}
	// Outside the plot.
	if _, ok := ResolveColumn(-5, columns, 200); ok {
		t.Errorf("Expected no column left of the plot")
	}
}

func TestResolveColumnSingleColumnOwnsPlot(t *testing.T) {
	columns := []Column{{X: 4, PixelX: 80}}
	col, ok := ResolveColumn(3, columns, 160)
	if !ok || col.X != 4 {
		t.Errorf("A lone column must own the full plot width, got %+v ok=%v", col, ok)
	}
}

func TestTooltipMeanY(t *testing.T) {
	identity := func(v float64) float64 { return v }
	tip := TooltipAt(Column{X: 1, PixelX: 100}, twoSeries(), identity)

	if len(tip.Values) != 2 {
		t.Fatalf("Expected both series at x=1, got %d", len(tip.Values))
	}
	// Mean of scaled ys: (150 + 260) / 2 = 205.
	if tip.PixelY != 205 {
		t.Errorf("Expected tooltip anchor 205, got %f", tip.PixelY)
	}
}

func TestTooltipSkipsMissingAndNonFinite(t *testing.T) {
	series := twoSeries()
	// A marginal-cost style series with a hole at x=1.
	series = append(series, models.ChartSeries{
		Kind: models.KindMarginalCost, Label: "Marginal Cost",
		Points: []models.ChartPoint{{X: 0, Y: models.Undefined}, {X: 2, Y: 8}},
	})

	identity := func(v float64) float64 { return v }
	tip := TooltipAt(Column{X: 1, PixelX: 100}, series, identity)
	if len(tip.Values) != 2 {
		t.Errorf("Series without a point at x=1 must be skipped, got %d values", len(tip.Values))
	}

	tip = TooltipAt(Column{X: 0, PixelX: 0}, series, identity)
	for _, v := range tip.Values {
		if models.IsUndefined(v.Value) {
			t.Errorf("Non-finite readings must not reach the tooltip: %+v", v)
		}
	}
}
