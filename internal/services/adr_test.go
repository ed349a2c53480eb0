package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/adrforge/adrforge-backend/internal/adr/provider"
	"github.com/adrforge/adrforge-backend/internal/data/repos"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
	"github.com/adrforge/adrforge-backend/internal/platform/apierr"
)

type stubGenerator struct {
	name     string
	draft    *provider.Draft
	err      error
	lastCall struct {
		prompt     string
		model      string
		templateID string
	}
	calls int
}

func (g *stubGenerator) Name() string { return g.name }

func (g *stubGenerator) Generate(_ context.Context, prompt, model, templateID string) (*provider.Draft, error) {
	g.calls++
	g.lastCall.prompt = prompt
	g.lastCall.model = model
	g.lastCall.templateID = templateID
	if g.err != nil {
		return nil, g.err
	}
	return g.draft, nil
}

func newService(t *testing.T, gen *stubGenerator) (AdrService, repos.AdrRepo) {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	repo := repos.NewMemoryAdrRepo(log)
	registry := provider.NewRegistry()
	registry.Register(gen, "gpt")
	return NewAdrService(log, repo, registry), repo
}

func TestGenerateStoresRenderedRecord(t *testing.T) {
	gen := &stubGenerator{
		name: "openai",
		draft: &provider.Draft{
			Title:    "Choose PostgreSQL",
			Markdown: "# ADR 1: Choose PostgreSQL\n## Status\nProposed",
		},
	}
	svc, repo := newService(t, gen)

	adr, err := svc.Generate(context.Background(), GenerateRequest{
		Prompt:     "We need to choose a database",
		Model:      "gpt-4o",
		TemplateID: "nygard",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if adr.ID != 1 || adr.Title != "Choose PostgreSQL" {
		t.Fatalf("adr: %+v", adr)
	}
	if !strings.Contains(adr.Content, "<h1") {
		t.Fatalf("content not rendered to HTML: %q", adr.Content)
	}
	if gen.lastCall.templateID != "nygard" {
		t.Fatalf("template id not forwarded: %q", gen.lastCall.templateID)
	}

	stored, err := repo.GetByID(context.Background(), adr.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Prompt != "We need to choose a database" || stored.Model != "gpt-4o" {
		t.Fatalf("stored: %+v", stored)
	}
	if stored.Content != adr.Content {
		t.Fatalf("stored content differs from response")
	}
}

func TestGenerateValidation(t *testing.T) {
	gen := &stubGenerator{name: "openai", draft: &provider.Draft{Title: "t", Markdown: "# t"}}
	svc, repo := newService(t, gen)

	cases := []GenerateRequest{
		{Prompt: "", Model: "gpt-4o"},
		{Prompt: "   ", Model: "gpt-4o"},
		{Prompt: "prompt", Model: ""},
	}
	for _, req := range cases {
		_, err := svc.Generate(context.Background(), req)
		ae := apierr.From(err)
		if ae.Status != http.StatusBadRequest || ae.Code != apierr.CodeInvalidRequest {
			t.Fatalf("req=%+v got status=%d code=%s", req, ae.Status, ae.Code)
		}
	}
	if gen.calls != 0 {
		t.Fatalf("provider called during validation failures")
	}
	if roots, _ := repo.ListRoots(context.Background()); len(roots) != 0 {
		t.Fatalf("store changed on validation failure")
	}
}

func TestGenerateUnsupportedModelLeavesStoreUnchanged(t *testing.T) {
	gen := &stubGenerator{name: "openai", draft: &provider.Draft{Title: "t", Markdown: "# t"}}
	svc, repo := newService(t, gen)

	_, err := svc.Generate(context.Background(), GenerateRequest{Prompt: "p", Model: "grok-2"})
	ae := apierr.From(err)
	if ae.Status != http.StatusBadRequest || ae.Code != apierr.CodeUnsupportedModel {
		t.Fatalf("status=%d code=%s", ae.Status, ae.Code)
	}
	if roots, _ := repo.ListRoots(context.Background()); len(roots) != 0 {
		t.Fatalf("store changed on unsupported model")
	}
}

func TestGenerateProviderConfigurationError(t *testing.T) {
	gen := &stubGenerator{
		name: "openai",
		err:  fmt.Errorf("OPENAI_API_KEY is not set: %w", provider.ErrNotConfigured),
	}
	svc, repo := newService(t, gen)

	_, err := svc.Generate(context.Background(), GenerateRequest{Prompt: "p", Model: "gpt-4o"})
	ae := apierr.From(err)
	if ae.Status != http.StatusInternalServerError || ae.Code != apierr.CodeProviderNotConfigured {
		t.Fatalf("status=%d code=%s", ae.Status, ae.Code)
	}
	if roots, _ := repo.ListRoots(context.Background()); len(roots) != 0 {
		t.Fatalf("store changed on configuration error")
	}
}

func TestGenerateProviderCallError(t *testing.T) {
	gen := &stubGenerator{
		name: "openai",
		err: &provider.HTTPError{
			Provider:   "OpenAI",
			StatusCode: http.StatusBadGateway,
			Body:       "upstream exploded",
		},
	}
	svc, repo := newService(t, gen)

	_, err := svc.Generate(context.Background(), GenerateRequest{Prompt: "p", Model: "gpt-4o"})
	ae := apierr.From(err)
	if ae.Status != http.StatusInternalServerError || ae.Code != apierr.CodeProviderError {
		t.Fatalf("status=%d code=%s", ae.Status, ae.Code)
	}
	if !strings.Contains(ae.Error(), "upstream exploded") {
		t.Fatalf("provider error text lost: %v", ae)
	}
	if roots, _ := repo.ListRoots(context.Background()); len(roots) != 0 {
		t.Fatalf("store changed on provider failure")
	}
}

func TestRefineLinksToOriginalAndEmbedsContext(t *testing.T) {
	gen := &stubGenerator{
		name: "openai",
		draft: &provider.Draft{
			Title:    "Choose PostgreSQL",
			Markdown: "# Choose PostgreSQL\nrevised",
		},
	}
	svc, repo := newService(t, gen)
	ctx := context.Background()

	root, err := svc.Generate(ctx, GenerateRequest{Prompt: "We need to choose a database", Model: "gpt-4o"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	refined, err := svc.Refine(ctx, FeedbackRequest{
		AdrID:    root.ID,
		Feedback: "Consider cost implications",
		Model:    "gpt-4o",
	})
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if refined.OriginalAdrID == nil || *refined.OriginalAdrID != root.ID {
		t.Fatalf("parent link: %+v", refined)
	}
	if refined.Feedback == nil || *refined.Feedback != "Consider cost implications" {
		t.Fatalf("feedback: %+v", refined.Feedback)
	}

	// The synthesized prompt embeds the original title, content and
	// feedback verbatim.
	for _, want := range []string{root.Title, root.Content, "Consider cost implications"} {
		if !strings.Contains(gen.lastCall.prompt, want) {
			t.Fatalf("refinement prompt missing %q", want)
		}
	}

	kids, err := svc.ListRefinements(ctx, root.ID)
	if err != nil {
		t.Fatalf("ListRefinements: %v", err)
	}
	if len(kids) != 1 || kids[0].ID != refined.ID {
		t.Fatalf("kids: %+v", kids)
	}

	roots, err := svc.ListRoots(ctx)
	if err != nil {
		t.Fatalf("ListRoots: %v", err)
	}
	if len(roots) != 1 || roots[0].ID != root.ID {
		t.Fatalf("roots should exclude refinements: %+v", roots)
	}

	stored, err := repo.GetByID(ctx, refined.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Prompt != gen.lastCall.prompt {
		t.Fatalf("stored prompt differs from provider prompt")
	}
}

func TestRefineUnknownOriginalIs404(t *testing.T) {
	gen := &stubGenerator{name: "openai", draft: &provider.Draft{Title: "t", Markdown: "# t"}}
	svc, _ := newService(t, gen)

	_, err := svc.Refine(context.Background(), FeedbackRequest{AdrID: 42, Feedback: "f", Model: "gpt-4o"})
	ae := apierr.From(err)
	if ae.Status != http.StatusNotFound || ae.Code != apierr.CodeNotFound {
		t.Fatalf("status=%d code=%s", ae.Status, ae.Code)
	}
	if gen.calls != 0 {
		t.Fatalf("provider called for missing original")
	}
}

func TestListRefinementsUnknownParentIsEmptyList(t *testing.T) {
	gen := &stubGenerator{name: "openai", draft: &provider.Draft{Title: "t", Markdown: "# t"}}
	svc, _ := newService(t, gen)

	kids, err := svc.ListRefinements(context.Background(), 999)
	if err != nil {
		t.Fatalf("ListRefinements: %v", err)
	}
	if len(kids) != 0 {
		t.Fatalf("len=%d want 0", len(kids))
	}
}
