// Package explain is the boundary to the external text-generation
// service: it turns the derived cost table into a prose explanation. The
// result is opaque display text, never parsed back into the model.
package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"econ_explorer/pkg/core/agent"
	"econ_explorer/pkg/core/prompt"
	"econ_explorer/pkg/core/utils"
	"econ_explorer/pkg/models"
)

// Apology is the fixed user-facing text when the service fails.
// Failures are recovered locally and never retried automatically.
const Apology = "Sorry — the cost explanation isn't available right now. The numbers above are still exact; please try again in a moment."

// ErrExplanationPending rejects a request while one is in flight.
// Overlapping generations for the same view would race on the result.
var ErrExplanationPending = errors.New("an explanation is already being generated")

// State is the observable lifecycle of one explanation task.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateDone    State = "done"
	StateFailed  State = "failed"
)

// Status is a snapshot of the explainer for the UI's loading flag.
type Status struct {
	State State  `json:"state"`
	JobID string `json:"job_id,omitempty"`
	Text  string `json:"text,omitempty"`
}

// fallbackSystemPrompt is used when the prompt library isn't loaded.
const fallbackSystemPrompt = "You are an economics tutor. Explain, in two short paragraphs of plain Markdown, why average total cost falls and then rises as labour increases, using the provided table. Mention the fixed cost being spread over more units and diminishing marginal returns. Do not invent numbers."

// FormatCostTable renders the (labour, production, ATC, MC) rows for
// labour > 0 as the textual table the prompt consumes. Undefined rates
// print as N/A.
func FormatCostTable(config models.CapitalConfiguration, records []models.EconomicRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Capital: %s (fixed cost €%.2f)\n", config.Name, config.FixedCost))
	sb.WriteString("Labour | Production | Average Total Cost | Marginal Cost\n")
	for _, r := range records {
		if r.Labour == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%d | %.0f | %s | %s\n",
			r.Labour, r.TotalProduction, formatRate(r.AverageTotalCost), formatRate(r.MarginalCost)))
	}
	return sb.String()
}

func formatRate(v float64) string {
	if models.IsUndefined(v) {
		return "N/A"
	}
	return fmt.Sprintf("€%.2f", v)
}

// Generator is the prompt-execution surface the explainer depends on.
// *agent.Manager satisfies it.
type Generator interface {
	ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error)
}

var _ Generator = (*agent.Manager)(nil)

// Explainer runs at most one generation at a time and keeps the latest
// result for display.
type Explainer struct {
	mgr Generator

	mu      sync.Mutex
	pending bool
	jobID   string
	state   State
	text    string
}

func NewExplainer(mgr Generator) *Explainer {
	return &Explainer{mgr: mgr, state: StateIdle}
}

// Status returns the current task snapshot.
func (e *Explainer) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{State: e.state, JobID: e.jobID, Text: e.text}
}

// Explain generates a prose explanation of the cost table. It blocks for
// the duration of the call; a concurrent second request is rejected with
// ErrExplanationPending rather than racing the first.
func (e *Explainer) Explain(ctx context.Context, config models.CapitalConfiguration, records []models.EconomicRecord) (string, error) {
	e.mu.Lock()
	if e.pending {
		e.mu.Unlock()
		return "", ErrExplanationPending
	}
	jobID := uuid.New().String()
	e.pending = true
	e.jobID = jobID
	e.state = StatePending
	e.mu.Unlock()

	text, err := e.generate(ctx, config, records)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = false
	if err != nil {
		fmt.Printf("[EXPLAIN] Generation failed (job %s): %v\n", jobID, err)
		e.state = StateFailed
		e.text = Apology
		return Apology, nil
	}
	e.state = StateDone
	e.text = text
	return text, nil
}

func (e *Explainer) generate(ctx context.Context, config models.CapitalConfiguration, records []models.EconomicRecord) (string, error) {
	table := FormatCostTable(config, records)

	systemPrompt := fallbackSystemPrompt
	userPrompt := table
	if pt, err := prompt.Get().GetPrompt("explain.cost_explanation"); err == nil {
		systemPrompt = pt.SystemPrompt
		rendered, rerr := pt.Render(map[string]interface{}{
			"CapitalName": config.Name,
			"FixedCost":   config.FixedCost,
			"CostTable":   table,
		})
		if rerr != nil {
			return "", rerr
		}
		userPrompt = rendered
	}

	raw, err := e.mgr.ExecutePrompt(ctx, "explain", userPrompt, systemPrompt, nil)
	if err != nil {
		return "", err
	}
	cleaned := utils.CleanMarkdown(raw)
	if cleaned == "" || !utils.ValidateMarkdown(cleaned) {
		return "", fmt.Errorf("provider returned unusable explanation text")
	}
	return cleaned, nil
}
