package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"happy/internal/models/db_models"
)

type OrphanageRepository interface {
	CreateOrphanage(ctx context.Context, orphanage *db_models.Orphanage) (int64, error)

	GetByIDWithImages(ctx context.Context, id int64) (*db_models.Orphanage, error)
	ListWithImages(ctx context.Context) ([]db_models.Orphanage, error)
}

type orphanageRepository struct {
	db *gorm.DB
}

func NewOrphanageRepository(db *gorm.DB) OrphanageRepository {
	return &orphanageRepository{db: db}
}

// CreateOrphanage inserts the orphanage and its images in one transaction.
func (r *orphanageRepository) CreateOrphanage(ctx context.Context, orphanage *db_models.Orphanage) (int64, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(orphanage).Error
	})
	if err != nil {
		return 0, err
	}
	return orphanage.ID, nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers return nil + nil error when no row is found.
// ────────────────────────────────────────────────────────────────

func (r *orphanageRepository) GetByIDWithImages(ctx context.Context, id int64) (*db_models.Orphanage, error) {
	var orphanage db_models.Orphanage
	err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		First(&orphanage, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &orphanage, nil
}

func (r *orphanageRepository) ListWithImages(ctx context.Context) ([]db_models.Orphanage, error) {
	orphanages := []db_models.Orphanage{}
	err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		Order("id").
		Find(&orphanages).Error
	if err != nil {
		return nil, err
	}
	return orphanages, nil
}

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
