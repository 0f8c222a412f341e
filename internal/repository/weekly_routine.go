package repository

import (
	"context"
	"errors"

	"fitlog/internal/models"

	"gorm.io/gorm"
)

// WeeklyRoutineRepository defines read operations for weekly schedules.
type WeeklyRoutineRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.WeeklyRoutine, error)
	Exists(ctx context.Context, userID uint) (bool, error)
	GetForDay(ctx context.Context, userID, dayIndex uint) (*models.WeeklyRoutine, error)
}

type weeklyRoutineRepository struct {
	db *gorm.DB
}

// NewWeeklyRoutineRepository returns a new WeeklyRoutineRepository implementation.
func NewWeeklyRoutineRepository(db *gorm.DB) WeeklyRoutineRepository {
	return &weeklyRoutineRepository{db: db}
}

func (r *weeklyRoutineRepository) ListByUser(ctx context.Context, userID uint) ([]models.WeeklyRoutine, error) {
	var slots []models.WeeklyRoutine
	err := r.db.WithContext(ctx).
		Preload("UsersRoutine").
		Preload("UsersRoutine.MirroredRoutine").
		Where("user_id = ?", userID).
		Order("day_index ASC").
		Find(&slots).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return slots, nil
}

func (r *weeklyRoutineRepository) Exists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WeeklyRoutine{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *weeklyRoutineRepository) GetForDay(ctx context.Context, userID, dayIndex uint) (*models.WeeklyRoutine, error) {
	var slot models.WeeklyRoutine
	err := r.db.WithContext(ctx).
		Preload("UsersRoutine").
		Preload("UsersRoutine.MirroredRoutine").
		Where("user_id = ? AND day_index = ?", userID, dayIndex).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &slot, nil
}
