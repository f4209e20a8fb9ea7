package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/agent.txt
	agentRaw string

	//go:embed template/extraction.txt
	extractionRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	// Agent is the order-processing system prompt for the decision model.
	Agent string
	// Extraction is the structured order-details extraction prompt. Its
	// JSON braces are escaped for FString templating.
	Extraction string
}

// LoadPromptSet returns the embedded prompts, trimmed. Safe to call
// concurrently.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Agent:      strings.TrimSpace(agentRaw),
		Extraction: strings.TrimSpace(extractionRaw),
	}
}
