// Package models defines the shared data types exchanged between the
// derivation engine, the chart renderer and the API layer.
package models

import (
	"encoding/json"
	"math"
)

// Undefined is the sentinel for rates that have no finite value at a given
// labour level (zero marginal output, or zero production). It is a value,
// not an error: chart series drop it, displays render it as "N/A".
var Undefined = math.Inf(1)

// IsUndefined reports whether v is the undefined-rate sentinel.
func IsUndefined(v float64) bool {
	return math.IsInf(v, 1)
}

// CapitalConfiguration is one fixed-capital setup: a named production
// function over discrete labour counts plus the capital's fixed cost.
// Configurations are immutable after startup and identified by Name.
type CapitalConfiguration struct {
	Name            string    `json:"name"`
	Icon            string    `json:"icon"`
	FixedCost       float64   `json:"fixed_cost"`
	ProductionTable []float64 `json:"production_table"` // indexed by labour 0..N
}

// ProductionAt returns output at the given labour count, clamping
// out-of-range indices to zero production.
func (c CapitalConfiguration) ProductionAt(labour int) float64 {
	if labour < 0 || labour >= len(c.ProductionTable) {
		return 0
	}
	return c.ProductionTable[labour]
}

// EconomicRecord holds every derived metric at a single labour level.
// Records are rebuilt as a fresh slice on every input change, never
// mutated in place.
type EconomicRecord struct {
	Labour           int     `json:"labour"`
	TotalProduction  float64 `json:"total_production"`
	MarginalProduct  float64 `json:"marginal_product"`
	TotalRevenue     float64 `json:"total_revenue"`
	VariableCost     float64 `json:"variable_cost"`
	FixedCost        float64 `json:"fixed_cost"`
	TotalCost        float64 `json:"total_cost"`
	TotalProfit      float64 `json:"total_profit"`
	MarginalCost     float64 `json:"marginal_cost"`      // Undefined when marginal product <= 0
	AverageTotalCost float64 `json:"average_total_cost"` // Undefined when production == 0
}

// MarshalJSON emits null for undefined rates; encoding/json rejects +Inf.
func (r EconomicRecord) MarshalJSON() ([]byte, error) {
	type alias EconomicRecord
	out := struct {
		alias
		MarginalCost     *float64 `json:"marginal_cost"`
		AverageTotalCost *float64 `json:"average_total_cost"`
	}{alias: alias(r)}
	if !IsUndefined(r.MarginalCost) {
		out.MarginalCost = &r.MarginalCost
	}
	if !IsUndefined(r.AverageTotalCost) {
		out.AverageTotalCost = &r.AverageTotalCost
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the Undefined sentinel from null rate fields.
func (r *EconomicRecord) UnmarshalJSON(data []byte) error {
	type alias EconomicRecord
	in := struct {
		*alias
		MarginalCost     *float64 `json:"marginal_cost"`
		AverageTotalCost *float64 `json:"average_total_cost"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.MarginalCost = Undefined
	r.AverageTotalCost = Undefined
	if in.MarginalCost != nil {
		r.MarginalCost = *in.MarginalCost
	}
	if in.AverageTotalCost != nil {
		r.AverageTotalCost = *in.AverageTotalCost
	}
	return nil
}

// SeriesKind tags a chart series with its economic meaning. The zero-crossing
// split is a typed property of the kind, not a string-label convention.
type SeriesKind int

const (
	KindTotalProduction SeriesKind = iota
	KindMarginalProduct
	KindTotalRevenue
	KindTotalCost
	KindTotalProfit
	KindMarginalCost
	KindAverageTotalCost
)

// CrossesZero reports whether series of this kind can change sign and must
// be split at the axis for dual-colour rendering.
func (k SeriesKind) CrossesZero() bool {
	return k == KindMarginalProduct || k == KindTotalProfit
}

// Label returns the display name used for legends and tooltips.
func (k SeriesKind) Label() string {
	switch k {
	case KindTotalProduction:
		return "Total Production"
	case KindMarginalProduct:
		return "Marginal Product of Labour"
	case KindTotalRevenue:
		return "Total Revenue"
	case KindTotalCost:
		return "Total Cost"
	case KindTotalProfit:
		return "Total Profit"
	case KindMarginalCost:
		return "Marginal Cost"
	case KindAverageTotalCost:
		return "Average Total Cost"
	default:
		return "Unknown Series"
	}
}

// ChartPoint is a single data-space sample.
type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartSeries is an ordered-by-x point sequence with a kind tag.
// Labels are unique within a chart.
type ChartSeries struct {
	Kind   SeriesKind   `json:"kind"`
	Label  string       `json:"label"`
	Color  string       `json:"color"`
	Points []ChartPoint `json:"points"`
}

// Scenario is a saved snapshot of a derivation result, keyed by capital name.
// Saving a scenario for a capital that already has one replaces it.
type Scenario struct {
	CapitalName           string  `json:"capital_name"`
	Icon                  string  `json:"icon"`
	MaxProfit             float64 `json:"max_profit"`
	OptimalLabour         int     `json:"optimal_labour"`
	PriceAtSave           float64 `json:"price_at_save"`
	MarginalCostAtMax     float64 `json:"marginal_cost_at_max"`
	AverageTotalCostAtMax float64 `json:"average_total_cost_at_max"`
}

// MarshalJSON emits null for undefined rate snapshots, mirroring EconomicRecord.
func (s Scenario) MarshalJSON() ([]byte, error) {
	type alias Scenario
	out := struct {
		alias
		MarginalCostAtMax     *float64 `json:"marginal_cost_at_max"`
		AverageTotalCostAtMax *float64 `json:"average_total_cost_at_max"`
	}{alias: alias(s)}
	if !IsUndefined(s.MarginalCostAtMax) {
		out.MarginalCostAtMax = &s.MarginalCostAtMax
	}
	if !IsUndefined(s.AverageTotalCostAtMax) {
		out.AverageTotalCostAtMax = &s.AverageTotalCostAtMax
	}
	return json.Marshal(out)
}
