package provider

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnsupportedModel means no registered backend claims the model name.
// This is a caller mistake, not a server fault.
var ErrUnsupportedModel = errors.New("unsupported model")

// Registry maps model-name family prefixes to adapter instances. It is
// built once at wiring time; lookups afterward are read-only.
type Registry struct {
	entries []registryEntry
}

type registryEntry struct {
	prefix string
	gen    Generator
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(gen Generator, prefixes ...string) {
	for _, p := range prefixes {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		r.entries = append(r.entries, registryEntry{prefix: p, gen: gen})
	}
	// Longest prefix wins so e.g. "gemma" can coexist with "gemini".
	sort.SliceStable(r.entries, func(i, j int) bool {
		return len(r.entries[i].prefix) > len(r.entries[j].prefix)
	})
}

func (r *Registry) Resolve(model string) (Generator, error) {
	name := strings.ToLower(strings.TrimSpace(model))
	for _, e := range r.entries {
		if strings.HasPrefix(name, e.prefix) {
			return e.gen, nil
		}
	}
	return nil, ErrUnsupportedModel
}
