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

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts the user together with its snapshot and alerts in one transaction.
func (r *userRepository) Create(ctx context.Context, change adapter.ProfileChange) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.UserFromEntity(change.User)).Error; err != nil {
			return err
		}
		return writeProfileChildren(tx, change)
	})
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindAll retrieves every stored user, oldest first.
func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&userModels)
	if result.Error != nil {
		return nil, result.Error
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = userModels[i].ToEntity()
	}
	return users, nil
}

// Update saves the user together with its snapshot and alerts in one transaction.
func (r *userRepository) Update(ctx context.Context, change adapter.ProfileChange) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(model.UserFromEntity(change.User))
		if result.Error != nil {
			return result.Error
		}
		return writeProfileChildren(tx, change)
	})
}

// Exists checks whether a user with the given ID exists.
func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func writeProfileChildren(tx *gorm.DB, change adapter.ProfileChange) error {
	if change.Snapshot != nil {
		if err := tx.Create(model.FinanceFromEntity(change.Snapshot)).Error; err != nil {
			return err
		}
	}
	if len(change.Alerts) > 0 {
		if err := tx.Create(model.AlertsFromEntities(change.Alerts)).Error; err != nil {
			return err
		}
	}
	return nil
}
