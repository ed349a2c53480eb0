package repos

import (
	"context"
	"errors"

	"github.com/adrforge/adrforge-backend/internal/domain"
)

var ErrAdrNotFound = errors.New("adr not found")

// AdrRepo is the record store behind the orchestrator. Ids are assigned by
// the store, records are never mutated or deleted after creation.
type AdrRepo interface {
	// Create persists adr as a root record and returns it with its
	// assigned id and creation time.
	Create(ctx context.Context, adr *domain.Adr) (*domain.Adr, error)

	// CreateRefinement persists adr linked to originalID. The feedback
	// field must already be set by the caller.
	CreateRefinement(ctx context.Context, adr *domain.Adr, originalID int64) (*domain.Adr, error)

	GetByID(ctx context.Context, id int64) (*domain.Adr, error)

	// ListRoots returns records with no parent, in insertion order.
	ListRoots(ctx context.Context) ([]*domain.Adr, error)

	// ListRefinementsOf returns the children of id, newest first. An
	// unknown id yields an empty list, not an error.
	ListRefinementsOf(ctx context.Context, id int64) ([]*domain.Adr, error)
}
