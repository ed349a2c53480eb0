package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adrforge/adrforge-backend/internal/adr/markdown"
	"github.com/adrforge/adrforge-backend/internal/adr/provider"
	"github.com/adrforge/adrforge-backend/internal/data/repos"
	"github.com/adrforge/adrforge-backend/internal/domain"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
	"github.com/adrforge/adrforge-backend/internal/platform/apierr"
)

type GenerateRequest struct {
	Prompt     string
	Model      string
	TemplateID string
}

type FeedbackRequest struct {
	AdrID    int64
	Feedback string
	Model    string
}

type AdrService interface {
	Generate(ctx context.Context, req GenerateRequest) (*domain.Adr, error)
	Refine(ctx context.Context, req FeedbackRequest) (*domain.Adr, error)
	Get(ctx context.Context, id int64) (*domain.Adr, error)
	ListRoots(ctx context.Context) ([]*domain.Adr, error)
	ListRefinements(ctx context.Context, id int64) ([]*domain.Adr, error)
}

type adrService struct {
	log      *logger.Logger
	repo     repos.AdrRepo
	registry *provider.Registry
}

func NewAdrService(baseLog *logger.Logger, repo repos.AdrRepo, registry *provider.Registry) AdrService {
	return &adrService{
		log:      baseLog.With("service", "AdrService"),
		repo:     repo,
		registry: registry,
	}
}

func (s *adrService) Generate(ctx context.Context, req GenerateRequest) (*domain.Adr, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, apierr.Validation("prompt")
	}
	if strings.TrimSpace(req.Model) == "" {
		return nil, apierr.Validation("model")
	}

	draft, err := s.generate(ctx, req.Prompt, req.Model, req.TemplateID)
	if err != nil {
		return nil, err
	}

	html, err := markdown.ToHTML(draft.Markdown)
	if err != nil {
		return nil, apierr.From(fmt.Errorf("render markdown: %w", err))
	}

	adr, err := s.repo.Create(ctx, &domain.Adr{
		Title:   draft.Title,
		Content: html,
		Model:   req.Model,
		Prompt:  req.Prompt,
	})
	if err != nil {
		return nil, apierr.From(err)
	}

	s.log.Info("Generated ADR", "adr_id", adr.ID, "model", req.Model, "template_id", req.TemplateID)
	return adr, nil
}

func (s *adrService) Refine(ctx context.Context, req FeedbackRequest) (*domain.Adr, error) {
	if strings.TrimSpace(req.Feedback) == "" {
		return nil, apierr.Validation("feedback")
	}
	if strings.TrimSpace(req.Model) == "" {
		return nil, apierr.Validation("model")
	}

	original, err := s.repo.GetByID(ctx, req.AdrID)
	if err != nil {
		if errors.Is(err, repos.ErrAdrNotFound) {
			return nil, apierr.NotFound("adr")
		}
		return nil, apierr.From(err)
	}

	prompt := buildRefinementPrompt(original, req.Feedback)

	draft, err := s.generate(ctx, prompt, req.Model, "")
	if err != nil {
		return nil, err
	}

	html, err := markdown.ToHTML(draft.Markdown)
	if err != nil {
		return nil, apierr.From(fmt.Errorf("render markdown: %w", err))
	}

	feedback := req.Feedback
	adr, err := s.repo.CreateRefinement(ctx, &domain.Adr{
		Title:    draft.Title,
		Content:  html,
		Model:    req.Model,
		Prompt:   prompt,
		Feedback: &feedback,
	}, original.ID)
	if err != nil {
		return nil, apierr.From(err)
	}

	s.log.Info("Refined ADR", "adr_id", adr.ID, "original_adr_id", original.ID, "model", req.Model)
	return adr, nil
}

// generate resolves the adapter for model and runs one provider call. No
// retries; a failed call surfaces immediately.
func (s *adrService) generate(ctx context.Context, prompt, model, templateID string) (*provider.Draft, error) {
	gen, err := s.registry.Resolve(model)
	if err != nil {
		return nil, apierr.UnsupportedModel(model)
	}

	draft, err := gen.Generate(ctx, prompt, model, templateID)
	if err != nil {
		s.log.Error("Provider call failed", "provider", gen.Name(), "model", model, "error", err)
		if errors.Is(err, provider.ErrNotConfigured) {
			return nil, apierr.ProviderNotConfigured(err)
		}
		return nil, apierr.Provider(err)
	}
	return draft, nil
}

func (s *adrService) Get(ctx context.Context, id int64) (*domain.Adr, error) {
	adr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repos.ErrAdrNotFound) {
			return nil, apierr.NotFound("adr")
		}
		return nil, apierr.From(err)
	}
	return adr, nil
}

func (s *adrService) ListRoots(ctx context.Context) ([]*domain.Adr, error) {
	out, err := s.repo.ListRoots(ctx)
	if err != nil {
		return nil, apierr.From(err)
	}
	return out, nil
}

func (s *adrService) ListRefinements(ctx context.Context, id int64) ([]*domain.Adr, error) {
	out, err := s.repo.ListRefinementsOf(ctx, id)
	if err != nil {
		return nil, apierr.From(err)
	}
	return out, nil
}

// buildRefinementPrompt embeds the stored original verbatim so the model
// revises rather than starts over.
func buildRefinementPrompt(original *domain.Adr, feedback string) string {
	var b strings.Builder
	b.WriteString("You previously generated the following Architectural Decision Record.\n\n")
	b.WriteString("Title: ")
	b.WriteString(original.Title)
	b.WriteString("\n\n")
	b.WriteString(original.Content)
	b.WriteString("\n\nThe user has reviewed it and provided this feedback:\n\n")
	b.WriteString(feedback)
	b.WriteString("\n\nRevise the ADR to address the feedback while keeping its overall structure. ")
	b.WriteString("Return the complete revised ADR in markdown, starting with a top-level heading for the title.")
	return b.String()
}
