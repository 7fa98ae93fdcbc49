// Package advisor asks the configured LLM for a structured staffing
// recommendation and cross-checks it against the deterministic optimum.
// The engine's own numbers always win; the model only contributes the
// rationale text.
package advisor

import (
	"context"
	"fmt"

	"econ_explorer/pkg/core/agent"
	"econ_explorer/pkg/core/econ"
	"econ_explorer/pkg/core/explain"
	"econ_explorer/pkg/core/prompt"
	"econ_explorer/pkg/core/utils"
	"econ_explorer/pkg/models"
)

const fallbackSystemPrompt = `You are a staffing advisor for a small bakery. Respond with JSON only: {"recommended_labour": <integer>, "rationale": "<one sentence>"}. Recommend the labour level with the highest total profit in the provided table.`

// Advice is the validated recommendation returned to the UI.
type Advice struct {
	RecommendedLabour int    `json:"recommended_labour"`
	Rationale         string `json:"rationale"`
	// Agrees reports whether the model matched the engine's optimum.
	Agrees        bool `json:"agrees_with_engine"`
	EngineOptimum int  `json:"engine_optimum"`
}

type Advisor struct {
	mgr *agent.Manager
}

func NewAdvisor(mgr *agent.Manager) *Advisor {
	return &Advisor{mgr: mgr}
}

// Advise requests a recommendation for the derived table. Model output
// is parsed leniently (repair, then HJSON) and checked against
// MaxProfitRecord; a recommendation outside 0..maxLabour is rejected.
func (a *Advisor) Advise(ctx context.Context, config models.CapitalConfiguration, records []models.EconomicRecord) (Advice, error) {
	best := econ.MaxProfitRecord(records)

	systemPrompt := fallbackSystemPrompt
	userPrompt := explain.FormatCostTable(config, records)
	if pt, err := prompt.Get().GetPrompt("advisor.labour_advice"); err == nil {
		systemPrompt = pt.SystemPrompt
		if rendered, rerr := pt.Render(map[string]interface{}{
			"CapitalName": config.Name,
			"CostTable":   userPrompt,
		}); rerr == nil {
			userPrompt = rendered
		}
	}

	options := map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
	raw, err := a.mgr.ExecutePrompt(ctx, "advisor", userPrompt, systemPrompt, options)
	if err != nil {
		return Advice{}, fmt.Errorf("advisor generation failed: %w", err)
	}

	var advice Advice
	if err := utils.SmartParse(raw, &advice); err != nil {
		return Advice{}, fmt.Errorf("advisor returned unparseable output: %w", err)
	}
	if advice.RecommendedLabour < 0 || advice.RecommendedLabour >= len(records) {
		return Advice{}, fmt.Errorf("advisor recommended labour %d outside the table", advice.RecommendedLabour)
	}

	advice.EngineOptimum = best.Labour
	advice.Agrees = advice.RecommendedLabour == best.Labour
	return advice, nil
}
