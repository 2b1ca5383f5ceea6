// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	"github.com/finai/backend/internal/integration/persistence/model"
)

// financeRepository implements the adapter.FinanceRepository interface.
type financeRepository struct {
	db *gorm.DB
}

// NewFinanceRepository creates a new finance snapshot repository instance.
func NewFinanceRepository(db *gorm.DB) adapter.FinanceRepository {
	return &financeRepository{
		db: db,
	}
}

// Create inserts a snapshot.
func (r *financeRepository) Create(ctx context.Context, snapshot *entity.FinanceSnapshot) error {
	return r.db.WithContext(ctx).Create(model.FinanceFromEntity(snapshot)).Error
}

// FindByUserID retrieves the latest snapshots of a user, oldest first.
func (r *financeRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.FinanceSnapshot, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var financeModels []model.FinanceModel
	if err := query.Find(&financeModels).Error; err != nil {
		return nil, err
	}

	// Reverse into chronological order.
	snapshots := make([]*entity.FinanceSnapshot, len(financeModels))
	for i := range financeModels {
		snapshots[len(financeModels)-1-i] = financeModels[i].ToEntity()
	}
	return snapshots, nil
}
