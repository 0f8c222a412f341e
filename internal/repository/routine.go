package repository

import (
	"context"
	"errors"

	"fitlog/internal/cache"
	"fitlog/internal/models"

	"gorm.io/gorm"
)

// RoutineListOptions filters and orders a routine listing.
type RoutineListOptions struct {
	AuthorID *uint
	// Ordering accepts "like_count", "-like_count" or "" (newest first).
	Ordering string
}

// RoutineRepository defines read operations for live routines. Mutations run
// inside service-level transactions and go through the *gorm.DB directly.
type RoutineRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Routine, error)
	List(ctx context.Context, opts RoutineListOptions) ([]models.Routine, error)
	IsLiked(ctx context.Context, userID, routineID uint) (bool, error)
}

type routineRepository struct {
	db *gorm.DB
}

// NewRoutineRepository returns a new RoutineRepository implementation.
func NewRoutineRepository(db *gorm.DB) RoutineRepository {
	return &routineRepository{db: db}
}

func (r *routineRepository) GetByID(ctx context.Context, id uint) (*models.Routine, error) {
	var routine models.Routine

	fetch := func() error {
		err := r.db.WithContext(ctx).Preload("Author").
			Where("is_deleted = ?", false).First(&routine, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Routine", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	if err := cache.Aside(ctx, cache.RoutineKey(id), &routine, cache.RoutineTTL, fetch); err != nil {
		return nil, err
	}
	return &routine, nil
}

func (r *routineRepository) List(ctx context.Context, opts RoutineListOptions) ([]models.Routine, error) {
	var routines []models.Routine

	fetch := func() error {
		q := r.db.WithContext(ctx).Preload("Author").Where("is_deleted = ?", false)
		if opts.AuthorID != nil {
			q = q.Where("author_id = ?", *opts.AuthorID)
		}
		switch opts.Ordering {
		case "like_count":
			q = q.Order("like_count ASC").Order("id ASC")
		case "-like_count":
			q = q.Order("like_count DESC").Order("id ASC")
		default:
			q = q.Order("created_at DESC").Order("id DESC")
		}
		if err := q.Find(&routines).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	// Only the unfiltered default listing is worth caching; filtered and
	// reordered variants go straight to the database.
	if opts.AuthorID == nil && opts.Ordering == "" {
		if err := cache.Aside(ctx, cache.RoutineListKey, &routines, cache.RoutineListTTL, fetch); err != nil {
			return nil, err
		}
		return routines, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return routines, nil
}

func (r *routineRepository) IsLiked(ctx context.Context, userID, routineID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RoutineLike{}).
		Where("user_id = ? AND routine_id = ?", userID, routineID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
