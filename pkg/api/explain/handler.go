// Package explain serves the prose cost-explanation boundary.
package explain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"econ_explorer/pkg/core/agent"
	"econ_explorer/pkg/core/catalog"
	"econ_explorer/pkg/core/econ"
	coreexplain "econ_explorer/pkg/core/explain"
)

var explainer *coreexplain.Explainer

// InitHandler wires the shared explainer to the agent manager.
func InitHandler(mgr *agent.Manager) {
	explainer = coreexplain.NewExplainer(mgr)
}

type ExplainRequest struct {
	CapitalName string  `json:"capital_name"`
	Price       float64 `json:"price"`
}

type ExplainResponse struct {
	Text string `json:"text"`
}

// HandleExplain generates (or rejects, if one is already in flight) a
// prose explanation of the current cost table.
func HandleExplain(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req ExplainRequest
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
	text, err := explainer.Explain(r.Context(), config, records)
	if errors.Is(err, coreexplain.ErrExplanationPending) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(ExplainResponse{Text: text})
}

// HandleStatus reports the explainer's loading flag and last result.
func HandleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	json.NewEncoder(w).Encode(explainer.Status())
}
