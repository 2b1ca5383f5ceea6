// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/internal/integration/persistence/model"
)

// alertRepository implements the adapter.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository instance.
func NewAlertRepository(db *gorm.DB) adapter.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateMany inserts all alerts in one transaction.
func (r *alertRepository) CreateMany(ctx context.Context, alerts []*entity.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model.AlertsFromEntities(alerts)).Error
	})
}

// FindByUserID retrieves a user's alerts, newest first.
func (r *alertRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter adapter.AlertFilter) ([]*entity.Alert, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var alertModels []model.AlertModel
	if err := query.Find(&alertModels).Error; err != nil {
		return nil, err
	}

	alerts := make([]*entity.Alert, len(alertModels))
	for i := range alertModels {
		alerts[i] = alertModels[i].ToEntity()
	}
	return alerts, nil
}

// FindByIDAndUser retrieves an alert only if it belongs to the given user.
func (r *alertRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Alert, error) {
	var alertModel model.AlertModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&alertModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAlertNotFound
		}
		return nil, result.Error
	}
	return alertModel.ToEntity(), nil
}

// UpdateStatus persists the alert's status.
func (r *alertRepository) UpdateStatus(ctx context.Context, alert *entity.Alert) error {
	result := r.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ? AND user_id = ?", alert.ID, alert.UserID).
		Update("status", string(alert.Status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAlertNotFound
	}
	return nil
}
