package repository

import (
	"context"
	"errors"
	"time"

	"fitlog/internal/models"

	"gorm.io/gorm"
)

// HealthRecordRepository defines persistence operations for daily health
// records.
type HealthRecordRepository interface {
	Create(ctx context.Context, record *models.HealthRecord) error
	ListSince(ctx context.Context, userID uint, since time.Time) ([]models.HealthRecord, error)
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.HealthRecord, error)
	Last(ctx context.Context, userID uint) (*models.HealthRecord, error)
	ExistsOn(ctx context.Context, userID uint, date time.Time) (bool, error)
}

type healthRecordRepository struct {
	db *gorm.DB
}

// NewHealthRecordRepository returns a new HealthRecordRepository implementation.
func NewHealthRecordRepository(db *gorm.DB) HealthRecordRepository {
	return &healthRecordRepository{db: db}
}

func (r *healthRecordRepository) Create(ctx context.Context, record *models.HealthRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Health record already exists for this day")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *healthRecordRepository) ListSince(ctx context.Context, userID uint, since time.Time) ([]models.HealthRecord, error) {
	var records []models.HealthRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

func (r *healthRecordRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*models.HealthRecord, error) {
	var record models.HealthRecord
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("HealthRecord", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &record, nil
}

func (r *healthRecordRepository) Last(ctx context.Context, userID uint) (*models.HealthRecord, error) {
	var record models.HealthRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("HealthRecord", "last")
		}
		return nil, models.NewInternalError(err)
	}
	return &record, nil
}

func (r *healthRecordRepository) ExistsOn(ctx context.Context, userID uint, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.HealthRecord{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
