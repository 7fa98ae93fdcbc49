// Package econ implements the deterministic production/cost/profit
// derivation engine. Everything here is a total pure function: invalid
// rates become the Undefined sentinel, never an error.
package econ

import (
	"econ_explorer/pkg/models"
)

// Labour cost constants: €20/hr wage over an 8-hour shift.
const (
	WageRatePerHour = 20.0
	ShiftHours      = 8.0
	LabourUnitCost  = WageRatePerHour * ShiftHours // €160 per labour unit
)

// DefaultMaxLabour bounds the derivation table.
const DefaultMaxLabour = 10

// Derive builds the full metric table for labour levels 0..maxLabour.
//
// Per record at labour i:
//
//	Q_i  = productionTable[i]            (0 when out of range)
//	MP_i = Q_i - Q_{i-1}                 (MP_0 = Q_0)
//	TR_i = Q_i × price
//	VC_i = i × 160
//	TC_i = fixedCost + VC_i
//	π_i  = TR_i - TC_i
//	MC_i = (VC_i - VC_{i-1}) / MP_i      (Undefined when MP_i <= 0)
//	ATC_i = TC_i / Q_i                   (Undefined when Q_i == 0)
func Derive(config models.CapitalConfiguration, price float64, maxLabour int) []models.EconomicRecord {
	records := make([]models.EconomicRecord, 0, maxLabour+1)

	for i := 0; i <= maxLabour; i++ {
		production := config.ProductionAt(i)

		marginalProduct := production
		if i > 0 {
			marginalProduct = production - config.ProductionAt(i-1)
		}

		variableCost := float64(i) * LabourUnitCost
		totalCost := config.FixedCost + variableCost
		totalRevenue := production * price

		// One extra worker always costs exactly one labour unit, so
		// ΔVC = 160 for every i > 0 (and for i == 0 MP covers the base).
		marginalCost := models.Undefined
		if marginalProduct > 0 {
			deltaVC := LabourUnitCost
			if i == 0 {
				deltaVC = 0
			}
			marginalCost = deltaVC / marginalProduct
		}

		averageTotalCost := models.Undefined
		if production > 0 {
			averageTotalCost = totalCost / production
		}

		records = append(records, models.EconomicRecord{
			Labour:           i,
			TotalProduction:  production,
			MarginalProduct:  marginalProduct,
			TotalRevenue:     totalRevenue,
			VariableCost:     variableCost,
			FixedCost:        config.FixedCost,
			TotalCost:        totalCost,
			TotalProfit:      totalRevenue - totalCost,
			MarginalCost:     marginalCost,
			AverageTotalCost: averageTotalCost,
		})
	}

	return records
}

// MaxProfitRecord returns the record with the greatest total profit.
// Ties break toward the lowest labour level: a single left-to-right scan
// keeps the first maximum.
func MaxProfitRecord(records []models.EconomicRecord) models.EconomicRecord {
	if len(records) == 0 {
		return models.EconomicRecord{MarginalCost: models.Undefined, AverageTotalCost: models.Undefined}
	}
	best := records[0]
	for _, r := range records[1:] {
		if r.TotalProfit > best.TotalProfit {
			best = r
		}
	}
	return best
}

// MinAverageCostRecord returns the record with the least finite average
// total cost among labour > 0. When no record qualifies (all production
// zero), it falls back to the first record rather than failing.
func MinAverageCostRecord(records []models.EconomicRecord) models.EconomicRecord {
	if len(records) == 0 {
		return models.EconomicRecord{MarginalCost: models.Undefined, AverageTotalCost: models.Undefined}
	}
	best := records[0]
	found := false
	for _, r := range records {
		if r.Labour == 0 || models.IsUndefined(r.AverageTotalCost) {
			continue
		}
		if !found || r.AverageTotalCost < best.AverageTotalCost {
			best = r
			found = true
		}
	}
	return best
}

// Series extracts one metric across the record table as a chart series,
// x = labour level. Non-finite values are kept here; the chart layer
// filters them before scaling.
func Series(records []models.EconomicRecord, kind models.SeriesKind) models.ChartSeries {
	points := make([]models.ChartPoint, 0, len(records))
	for _, r := range records {
		points = append(points, models.ChartPoint{X: float64(r.Labour), Y: metric(r, kind)})
	}
	return models.ChartSeries{Kind: kind, Label: kind.Label(), Points: points}
}

func metric(r models.EconomicRecord, kind models.SeriesKind) float64 {
	switch kind {
	case models.KindTotalProduction:
		return r.TotalProduction
	case models.KindMarginalProduct:
		return r.MarginalProduct
	case models.KindTotalRevenue:
		return r.TotalRevenue
	case models.KindTotalCost:
		return r.TotalCost
	case models.KindTotalProfit:
		return r.TotalProfit
	case models.KindMarginalCost:
		return r.MarginalCost
	case models.KindAverageTotalCost:
		return r.AverageTotalCost
	default:
		return 0
	}
}

// Snapshot condenses a derivation into a Scenario for the comparison list.
func Snapshot(config models.CapitalConfiguration, price float64, records []models.EconomicRecord) models.Scenario {
	best := MaxProfitRecord(records)
	return models.Scenario{
		CapitalName:           config.Name,
		Icon:                  config.Icon,
		MaxProfit:             best.TotalProfit,
		OptimalLabour:         best.Labour,
		PriceAtSave:           price,
		MarginalCostAtMax:     best.MarginalCost,
		AverageTotalCostAtMax: best.AverageTotalCost,
	}
}
