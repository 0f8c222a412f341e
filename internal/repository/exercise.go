package repository

import (
	"context"
	"errors"

	"fitlog/internal/models"

	"gorm.io/gorm"
)

// ExerciseRepository defines persistence operations for the exercise catalog
// and its focus-area tags.
type ExerciseRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Exercise, error)
	List(ctx context.Context) ([]models.Exercise, error)
	Create(ctx context.Context, exercise *models.Exercise) error
	Update(ctx context.Context, exercise *models.Exercise) error
	Delete(ctx context.Context, id uint) error
	FocusAreasByName(ctx context.Context, names []string) ([]models.FocusArea, error)
	EnsureFocusAreas(ctx context.Context) error
}

type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository returns a new ExerciseRepository implementation.
func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) GetByID(ctx context.Context, id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := r.db.WithContext(ctx).Preload("FocusAreas").First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Exercise", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &exercise, nil
}

func (r *exerciseRepository) List(ctx context.Context) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := r.db.WithContext(ctx).Preload("FocusAreas").Order("id").Find(&exercises).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return exercises, nil
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	if err := r.db.WithContext(ctx).Create(exercise).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *exerciseRepository) Update(ctx context.Context, exercise *models.Exercise) error {
	if err := r.db.WithContext(ctx).Save(exercise).Error; err != nil {
		return models.NewInternalError(err)
	}
	// Replace the tag set wholesale; Save alone does not clear removed rows.
	if err := r.db.WithContext(ctx).Model(exercise).
		Association("FocusAreas").Replace(exercise.FocusAreas); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *exerciseRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Exercise{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Exercise", id)
	}
	return nil
}

func (r *exerciseRepository) FocusAreasByName(ctx context.Context, names []string) ([]models.FocusArea, error) {
	var areas []models.FocusArea
	if len(names) == 0 {
		return areas, nil
	}
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&areas).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(areas) != len(names) {
		return nil, models.NewValidationError("Unknown focus area")
	}
	return areas, nil
}

// EnsureFocusAreas inserts the fixed focus-area catalog, skipping names that
// already exist. Safe to call on every startup.
func (r *exerciseRepository) EnsureFocusAreas(ctx context.Context) error {
	for _, name := range models.FocusAreaNames {
		area := models.FocusArea{Name: name}
		err := r.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&area).Error
		if err != nil {
			return models.NewInternalError(err)
		}
	}
	return nil
}
