// Package provider defines the contract between the ADR orchestrator and
// the individual LLM backends, plus the helpers every backend shares.
package provider

import "context"

// Sampling policy shared by every backend. These are deliberate constants,
// not user-configurable knobs.
const (
	Temperature = 0.7
	MaxTokens   = 2000
)

// DefaultTitle is used when the model output carries no top-level heading.
const DefaultTitle = "Architectural Decision Record"

// Draft is a normalized generation result. Markdown is the raw model
// output; HTML rendering happens once in the orchestrator.
type Draft struct {
	Title    string
	Markdown string
}

// Generator produces an ADR draft from a user prompt. Implementations
// build the provider-specific request, apply the template's system prompt
// and normalize the response.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt, model, templateID string) (*Draft, error)
}
