package chart

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"econ_explorer/pkg/models"
)

func TestBuildSmoothPathDegenerate(t *testing.T) {
	if got := BuildSmoothPath(nil); got != "" {
		t.Errorf("Expected empty path for no points, got %q", got)
	}
	if got := BuildSmoothPath([]models.ChartPoint{{X: 1, Y: 2}}); got != "" {
		t.Errorf("Expected empty path for a single point, got %q", got)
	}
}

func TestBuildSmoothPathTwoPointsStraightLine(t *testing.T) {
	got := BuildSmoothPath([]models.ChartPoint{{X: 0, Y: 0}, {X: 10, Y: 20}})
	if got != "M 0.00 0.00 L 10.00 20.00" {
		t.Errorf("Expected straight segment, got %q", got)
	}
}

func TestBuildSmoothPathEndpoints(t *testing.T) {
	points := []models.ChartPoint{{X: 0, Y: 5}, {X: 10, Y: 40}, {X: 20, Y: 15}, {X: 30, Y: 30}}
	d := BuildSmoothPath(points)

	if !strings.HasPrefix(d, "M 0.00 5.00") {
		t.Errorf("Path must start at the first input point: %q", d)
	}
	if !strings.HasSuffix(d, fmt.Sprintf("%.2f %.2f", 30.0, 30.0)) {
		t.Errorf("Path must end at the last input point: %q", d)
	}
	// One cubic segment per input gap.
	if got := strings.Count(d, " C "); got != 3 {
		t.Errorf("Expected 3 cubic segments, got %d in %q", got, d)
	}
}

func TestSplitAtZeroCrossingDownward(t *testing.T) {
	// (0,5) -> (1,-3): x0 = 0 - 5*(1-0)/(-3-5) = 0.625
	points := []models.ChartPoint{{X: 0, Y: 5}, {X: 1, Y: -3}}
	gains, losses := SplitAtZeroCrossing(points)

	if len(gains) != 2 || len(losses) != 2 {
		t.Fatalf("Expected 2 points per half, got %d/%d", len(gains), len(losses))
	}
	seam := models.ChartPoint{X: 0.625, Y: 0}
	if gains[len(gains)-1] != seam {
		t.Errorf("Non-negative half must end at the seam, got %+v", gains)
	}
	if losses[0] != seam {
		t.Errorf("Negative half must start at the seam, got %+v", losses)
	}
}

func TestSplitAtZeroCrossingUpward(t *testing.T) {
	// Losses first: (0,-4) -> (2,4) crosses at x = 1.
	points := []models.ChartPoint{{X: 0, Y: -4}, {X: 2, Y: 4}}
	gains, losses := SplitAtZeroCrossing(points)

	seam := models.ChartPoint{X: 1, Y: 0}
	if losses[len(losses)-1] != seam {
		t.Errorf("Negative half must end at the seam, got %+v", losses)
	}
	if gains[0] != seam {
		t.Errorf("Non-negative half must start at the seam, got %+v", gains)
	}
}

func TestSplitAtZeroCrossingNoCrossing(t *testing.T) {
	points := []models.ChartPoint{{X: 0, Y: 3}, {X: 1, Y: 7}, {X: 2, Y: 1}}
	gains, losses := SplitAtZeroCrossing(points)
	if len(gains) != 3 {
		t.Errorf("Expected all points in the non-negative half, got %d", len(gains))
	}
	if len(losses) != 0 {
		t.Errorf("Expected empty negative half, got %+v", losses)
	}
}

func TestSplitPreservesOrder(t *testing.T) {
	// Profit-like shape: negative at low labour, positive after.
	points := []models.ChartPoint{
		{X: 0, Y: -100}, {X: 1, Y: -50}, {X: 2, Y: 25}, {X: 3, Y: 95},
	}
	gains, losses := SplitAtZeroCrossing(points)

	for i := 1; i < len(gains); i++ {
		if gains[i].X < gains[i-1].X {
			t.Fatalf("Non-negative half out of order: %+v", gains)
		}
	}
	for i := 1; i < len(losses); i++ {
		if losses[i].X < losses[i-1].X {
			t.Fatalf("Negative half out of order: %+v", losses)
		}
	}
	// Crossing between x=1 (-50) and x=2 (25): x0 = 1 + 50*(1)/(75) = 5/3
	x0 := 1.0 - (-50.0)*(2.0-1.0)/(25.0-(-50.0))
	if math.Abs(losses[len(losses)-1].X-x0) > 1e-9 {
		t.Errorf("Expected seam x %.4f, got %+v", x0, losses)
	}
}
