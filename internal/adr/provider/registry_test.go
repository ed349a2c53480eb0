package provider

import (
	"context"
	"errors"
	"testing"
)

type namedGenerator struct{ name string }

func (g *namedGenerator) Name() string { return g.name }
func (g *namedGenerator) Generate(_ context.Context, _, _, _ string) (*Draft, error) {
	return &Draft{Title: DefaultTitle, Markdown: "# " + g.name}, nil
}

func TestRegistryResolvesByPrefix(t *testing.T) {
	openai := &namedGenerator{name: "openai"}
	gemini := &namedGenerator{name: "gemini"}
	anthropic := &namedGenerator{name: "anthropic"}
	ollama := &namedGenerator{name: "ollama"}

	r := NewRegistry()
	r.Register(openai, "gpt", "o1", "o3")
	r.Register(gemini, "gemini")
	r.Register(anthropic, "claude")
	r.Register(ollama, "llama", "mistral", "gemma", "phi", "qwen", "deepseek")

	cases := map[string]string{
		"gpt-4o":                    "openai",
		"GPT-4o":                    "openai",
		"o1-mini":                   "openai",
		"gemini-1.5-pro":            "gemini",
		"claude-3-7-sonnet-2025021": "anthropic",
		"llama3":                    "ollama",
		"gemma2b":                   "ollama",
	}
	for model, want := range cases {
		gen, err := r.Resolve(model)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", model, err)
		}
		if gen.Name() != want {
			t.Fatalf("Resolve(%q)=%q want %q", model, gen.Name(), want)
		}
	}
}

func TestRegistryUnsupportedModel(t *testing.T) {
	r := NewRegistry()
	r.Register(&namedGenerator{name: "openai"}, "gpt")

	for _, model := range []string{"", "grok-2", "palm-2"} {
		if _, err := r.Resolve(model); !errors.Is(err, ErrUnsupportedModel) {
			t.Fatalf("Resolve(%q) err=%v want ErrUnsupportedModel", model, err)
		}
	}
}

func TestRegistryLongestPrefixWins(t *testing.T) {
	ge := &namedGenerator{name: "gemini"}
	ol := &namedGenerator{name: "ollama"}

	r := NewRegistry()
	r.Register(ge, "gem")
	r.Register(ol, "gemma")

	gen, err := r.Resolve("gemma2b")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if gen.Name() != "ollama" {
		t.Fatalf("got %q want ollama", gen.Name())
	}
}
