package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adrforge/adrforge-backend/internal/domain"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
)

// gormAdrRepo is the persistent implementation backed by the adrs table.
type gormAdrRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGormAdrRepo(db *gorm.DB, baseLog *logger.Logger) AdrRepo {
	return &gormAdrRepo{db: db, log: baseLog.With("repo", "GormAdrRepo")}
}

func (r *gormAdrRepo) Create(ctx context.Context, adr *domain.Adr) (*domain.Adr, error) {
	record := *adr
	record.ID = 0
	record.OriginalAdrID = nil
	record.Feedback = nil

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *gormAdrRepo) CreateRefinement(ctx context.Context, adr *domain.Adr, originalID int64) (*domain.Adr, error) {
	record := *adr
	record.ID = 0
	record.OriginalAdrID = &originalID

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *gormAdrRepo) GetByID(ctx context.Context, id int64) (*domain.Adr, error) {
	var adr domain.Adr
	err := r.db.WithContext(ctx).First(&adr, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &adr, nil
}

func (r *gormAdrRepo) ListRoots(ctx context.Context) ([]*domain.Adr, error) {
	var out []*domain.Adr
	if err := r.db.WithContext(ctx).
		Where("original_adr_id IS NULL").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []*domain.Adr{}
	}
	return out, nil
}

func (r *gormAdrRepo) ListRefinementsOf(ctx context.Context, id int64) ([]*domain.Adr, error) {
	var out []*domain.Adr
	if err := r.db.WithContext(ctx).
		Where("original_adr_id = ?", id).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []*domain.Adr{}
	}
	return out, nil
}
