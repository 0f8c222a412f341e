package repository

import (
	"context"
	"errors"

	"fitlog/internal/models"

	"gorm.io/gorm"
)

// UsersRoutineRepository defines read operations for routine bindings.
type UsersRoutineRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.UsersRoutine, error)
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.UsersRoutine, error)
	ExistsForRoutine(ctx context.Context, userID, routineID uint) (bool, error)
	CountByMirror(ctx context.Context, mirrorID uint) (int64, error)
}

type usersRoutineRepository struct {
	db *gorm.DB
}

// NewUsersRoutineRepository returns a new UsersRoutineRepository implementation.
func NewUsersRoutineRepository(db *gorm.DB) UsersRoutineRepository {
	return &usersRoutineRepository{db: db}
}

func bindingPreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Routine").
		Preload("MirroredRoutine").
		Preload("MirroredRoutine.Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Preload("MirroredRoutine.Entries.Exercise").
		Preload("MirroredRoutine.Entries.Setting")
}

func (r *usersRoutineRepository) ListByUser(ctx context.Context, userID uint) ([]models.UsersRoutine, error) {
	var bindings []models.UsersRoutine
	err := bindingPreloads(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bindings).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return bindings, nil
}

func (r *usersRoutineRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*models.UsersRoutine, error) {
	var binding models.UsersRoutine
	err := bindingPreloads(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&binding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("UsersRoutine", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &binding, nil
}

func (r *usersRoutineRepository) ExistsForRoutine(ctx context.Context, userID, routineID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UsersRoutine{}).
		Where("user_id = ? AND routine_id = ?", userID, routineID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *usersRoutineRepository) CountByMirror(ctx context.Context, mirrorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UsersRoutine{}).
		Where("mirrored_routine_id = ?", mirrorID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
