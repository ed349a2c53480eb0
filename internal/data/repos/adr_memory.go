package repos

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adrforge/adrforge-backend/internal/domain"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
)

// memoryAdrRepo keeps records in process memory. It stands in for a
// durable store: restarting the process loses all history. Generate and
// feedback requests run on separate goroutines, so id assignment and
// insertion happen under one lock.
type memoryAdrRepo struct {
	mu     sync.Mutex
	adrs   map[int64]*domain.Adr
	order  []int64
	nextID int64
	log    *logger.Logger
}

func NewMemoryAdrRepo(baseLog *logger.Logger) AdrRepo {
	return &memoryAdrRepo{
		adrs:   make(map[int64]*domain.Adr),
		nextID: 1,
		log:    baseLog.With("repo", "MemoryAdrRepo"),
	}
}

func (r *memoryAdrRepo) Create(ctx context.Context, adr *domain.Adr) (*domain.Adr, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *adr
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.OriginalAdrID = nil
	stored.Feedback = nil

	r.nextID++
	r.adrs[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	out := stored
	return &out, nil
}

func (r *memoryAdrRepo) CreateRefinement(ctx context.Context, adr *domain.Adr, originalID int64) (*domain.Adr, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *adr
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.OriginalAdrID = &originalID

	r.nextID++
	r.adrs[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	out := stored
	return &out, nil
}

func (r *memoryAdrRepo) GetByID(ctx context.Context, id int64) (*domain.Adr, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	adr, ok := r.adrs[id]
	if !ok {
		return nil, ErrAdrNotFound
	}
	out := *adr
	return &out, nil
}

func (r *memoryAdrRepo) ListRoots(ctx context.Context) ([]*domain.Adr, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Adr, 0)
	for _, id := range r.order {
		adr := r.adrs[id]
		if adr.OriginalAdrID != nil {
			continue
		}
		cp := *adr
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryAdrRepo) ListRefinementsOf(ctx context.Context, id int64) ([]*domain.Adr, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Adr, 0)
	for _, orderID := range r.order {
		adr := r.adrs[orderID]
		if adr.OriginalAdrID == nil || *adr.OriginalAdrID != id {
			continue
		}
		cp := *adr
		out = append(out, &cp)
	}
	// Newest first; ids break ties since assignment is monotonic.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
