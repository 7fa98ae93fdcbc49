package explain

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"econ_explorer/pkg/models"
)

// Narrator is a dedicated Gemini client for explanation generation,
// bypassing the configurable agent manager. The verify_model tool uses
// it for its -narrate step.
type Narrator struct {
	modelName string
	client    *genai.Client
}

func NewNarrator(ctx context.Context) (*Narrator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	return &Narrator{
		modelName: "gemini-2.0-flash",
		client:    client,
	}, nil
}

// Close releases the underlying client.
func (n *Narrator) Close() error {
	return n.client.Close()
}

// Narrate produces a prose explanation for the given cost table.
func (n *Narrator) Narrate(ctx context.Context, config models.CapitalConfiguration, records []models.EconomicRecord) (string, error) {
	model := n.client.GenerativeModel(n.modelName)
	model.SetTemperature(0.4)

	fullPrompt := fmt.Sprintf("%s\n\n%s", fallbackSystemPrompt, FormatCostTable(config, records))
	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}
