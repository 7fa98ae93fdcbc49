// Package chart serves rendered SVG scenes and tooltip resolution.
package chart

import (
	"encoding/json"
	"fmt"
	"net/http"

	"econ_explorer/pkg/core/catalog"
	corechart "econ_explorer/pkg/core/chart"
	"econ_explorer/pkg/core/econ"
	"econ_explorer/pkg/models"
)

// seriesColors assigns each metric its display color.
var seriesColors = map[models.SeriesKind]string{
	models.KindTotalProduction:  "#2196f3",
	models.KindMarginalProduct:  "#00bcd4",
	models.KindTotalRevenue:     "#3f51b5",
	models.KindTotalCost:        "#ff9800",
	models.KindTotalProfit:      "#4caf50",
	models.KindMarginalCost:     "#9c27b0",
	models.KindAverageTotalCost: "#795548",
}

// metricKinds maps request metric names to series kinds.
var metricKinds = map[string]models.SeriesKind{
	"total_production":   models.KindTotalProduction,
	"marginal_product":   models.KindMarginalProduct,
	"total_revenue":      models.KindTotalRevenue,
	"total_cost":         models.KindTotalCost,
	"total_profit":       models.KindTotalProfit,
	"marginal_cost":      models.KindMarginalCost,
	"average_total_cost": models.KindAverageTotalCost,
}

type RenderRequest struct {
	CapitalName string   `json:"capital_name"`
	Price       float64  `json:"price"`
	Metrics     []string `json:"metrics"`
	Variant     string   `json:"variant"` // "curve" (default) or "bar"
	Title       string   `json:"title,omitempty"`
}

type TooltipRequest struct {
	RenderRequest
	PointerX float64 `json:"pointer_x"` // plot-relative pixel x
}

type TooltipResponse struct {
	Found   bool              `json:"found"`
	Tooltip corechart.Tooltip `json:"tooltip"`
}

// buildScene derives the table and renders the requested variant.
func buildScene(req RenderRequest) (corechart.Scene, []models.ChartSeries, error) {
	config, ok := catalog.Active().Get(req.CapitalName)
	if !ok {
		return corechart.Scene{}, nil, fmt.Errorf("capital configuration not found: %s", req.CapitalName)
	}
	if req.Price <= 0 {
		return corechart.Scene{}, nil, fmt.Errorf("price must be positive")
	}
	if len(req.Metrics) == 0 {
		return corechart.Scene{}, nil, fmt.Errorf("at least one metric is required")
	}

	records := econ.Derive(config, req.Price, econ.DefaultMaxLabour)
	series := make([]models.ChartSeries, 0, len(req.Metrics))
	for _, name := range req.Metrics {
		kind, ok := metricKinds[name]
		if !ok {
			return corechart.Scene{}, nil, fmt.Errorf("unknown metric: %s", name)
		}
		s := econ.Series(records, kind)
		s.Color = seriesColors[kind]
		series = append(series, s)
	}

	cfg := corechart.DefaultConfig()
	cfg.Title = req.Title

	if req.Variant == "bar" {
		return corechart.RenderBars(series, cfg), series, nil
	}
	return corechart.RenderCurves(series, cfg), series, nil
}

// HandleRender returns the SVG scene for the requested metrics.
func HandleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scene, _, err := buildScene(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(scene)
}

// HandleTooltip resolves a pointer position to the nearest data column
// and reports every series value there.
func HandleTooltip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req TooltipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scene, series, err := buildScene(req.RenderRequest)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	col, ok := corechart.ResolveColumn(req.PointerX, scene.Columns, scene.Width)
	resp := TooltipResponse{Found: ok}
	if ok {
		resp.Tooltip = corechart.TooltipAt(col, series, scene.ScaleY)
	}
	json.NewEncoder(w).Encode(resp)
}
