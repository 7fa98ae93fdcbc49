// Package advisor serves the structured staffing recommendation.
package advisor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"econ_explorer/pkg/core/advisor"
	"econ_explorer/pkg/core/agent"
	"econ_explorer/pkg/core/catalog"
	"econ_explorer/pkg/core/econ"
)

var adv *advisor.Advisor

// InitHandler wires the advisor to the agent manager.
func InitHandler(mgr *agent.Manager) {
	adv = advisor.NewAdvisor(mgr)
}

type AdviseRequest struct {
	CapitalName string  `json:"capital_name"`
	Price       float64 `json:"price"`
}

// HandleAdvise asks the model for a staffing recommendation and returns
// it alongside the engine's own optimum.
func HandleAdvise(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req AdviseRequest
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

	records := econ.Derive(config, req.Price, econ.DefaultMaxLabour)
	advice, err := adv.Advise(r.Context(), config, records)
	if err != nil {
		fmt.Printf("[ADVISOR] Request failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(advice)
}
