package repository

import (
	"context"
	"errors"
	"time"

	"fitlog/internal/models"

	"gorm.io/gorm"
)

// StreakRepository defines persistence operations for routine streaks.
type StreakRepository interface {
	Create(ctx context.Context, streak *models.RoutineStreak) error
	ListByUser(ctx context.Context, userID uint) ([]models.RoutineStreak, error)
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.RoutineStreak, error)
	Last(ctx context.Context, userID uint) (*models.RoutineStreak, error)
	ExistsOn(ctx context.Context, userID uint, date time.Time) (bool, error)
}

type streakRepository struct {
	db *gorm.DB
}

// NewStreakRepository returns a new StreakRepository implementation.
func NewStreakRepository(db *gorm.DB) StreakRepository {
	return &streakRepository{db: db}
}

func (r *streakRepository) Create(ctx context.Context, streak *models.RoutineStreak) error {
	if err := r.db.WithContext(ctx).Create(streak).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Streak already recorded for this day")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *streakRepository) ListByUser(ctx context.Context, userID uint) ([]models.RoutineStreak, error) {
	var streaks []models.RoutineStreak
	err := r.db.WithContext(ctx).
		Preload("MirroredRoutine").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&streaks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return streaks, nil
}

func (r *streakRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*models.RoutineStreak, error) {
	var streak models.RoutineStreak
	err := r.db.WithContext(ctx).
		Preload("MirroredRoutine").
		Where("id = ? AND user_id = ?", id, userID).
		First(&streak).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("RoutineStreak", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &streak, nil
}

func (r *streakRepository) Last(ctx context.Context, userID uint) (*models.RoutineStreak, error) {
	var streak models.RoutineStreak
	err := r.db.WithContext(ctx).
		Preload("MirroredRoutine").
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&streak).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("RoutineStreak", "last")
		}
		return nil, models.NewInternalError(err)
	}
	return &streak, nil
}

func (r *streakRepository) ExistsOn(ctx context.Context, userID uint, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RoutineStreak{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
