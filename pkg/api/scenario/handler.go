// Package scenario exposes the saved-scenario comparison list.
package scenario

import (
	"encoding/json"
	"fmt"
	"net/http"

	"econ_explorer/pkg/core/catalog"
	"econ_explorer/pkg/core/econ"
	corescenario "econ_explorer/pkg/core/scenario"
)

var store *corescenario.Store

// InitHandler installs the process-lifetime store.
func InitHandler(s *corescenario.Store) {
	store = s
}

type SaveRequest struct {
	CapitalName string  `json:"capital_name"`
	Price       float64 `json:"price"`
}

// HandleList returns every saved scenario in order.
func HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	json.NewEncoder(w).Encode(store.All())
}

// HandleSave derives the current result for a capital and upserts its
// snapshot.
func HandleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req SaveRequest
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
	snapshot := econ.Snapshot(config, req.Price, records)
	store.Save(snapshot)
	fmt.Printf("[SCENARIO] Saved %s (optimal labour %d)\n", snapshot.CapitalName, snapshot.OptimalLabour)
	json.NewEncoder(w).Encode(snapshot)
}

// HandleClear empties the list.
func HandleClear(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	store.Clear()
	w.WriteHeader(http.StatusNoContent)
}
