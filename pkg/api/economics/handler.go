// Package economics exposes the derivation engine over HTTP.
package economics

import (
	"encoding/json"
	"fmt"
	"net/http"

	"econ_explorer/pkg/core/catalog"
	"econ_explorer/pkg/core/econ"
	"econ_explorer/pkg/models"
)

type DeriveRequest struct {
	CapitalName string  `json:"capital_name"`
	Price       float64 `json:"price"`
	MaxLabour   *int    `json:"max_labour,omitempty"`
}

type DeriveResponse struct {
	Capital    models.CapitalConfiguration `json:"capital"`
	Records    []models.EconomicRecord     `json:"records"`
	MaxProfit  models.EconomicRecord       `json:"max_profit_record"`
	MinAvgCost models.EconomicRecord       `json:"min_average_cost_record"`
}

// HandleCatalog lists the available capital configurations.
func HandleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	json.NewEncoder(w).Encode(catalog.Active().All())
}

// HandleDerive recomputes the full metric table for one configuration.
func HandleDerive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req DeriveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Price <= 0 {
		http.Error(w, "price must be positive", http.StatusBadRequest)
		return
	}

	config, ok := catalog.Active().Get(req.CapitalName)
	if !ok {
		http.Error(w, fmt.Sprintf("capital configuration not found: %s", req.CapitalName), http.StatusNotFound)
		return
	}

	maxLabour := econ.DefaultMaxLabour
	if req.MaxLabour != nil && *req.MaxLabour >= 0 {
		maxLabour = *req.MaxLabour
	}

	records := econ.Derive(config, req.Price, maxLabour)
	resp := DeriveResponse{
		Capital:    config,
		Records:    records,
		MaxProfit:  econ.MaxProfitRecord(records),
		MinAvgCost: econ.MinAverageCostRecord(records),
	}
	json.NewEncoder(w).Encode(resp)
}
