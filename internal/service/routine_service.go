// Package service contains the application's business logic.
package service

import (
	"context"
	"errors"

	"fitlog/internal/cache"
	"fitlog/internal/models"
	"fitlog/internal/observability"
	"fitlog/internal/repository"
	"fitlog/internal/validation"

	"gorm.io/gorm"
)

// RoutineService owns the routine/mirror/binding ledger. Every mutation runs
// in one transaction so a failure mid-sequence never leaves a partial mirror
// or a dangling need_update flag.
type RoutineService struct {
	routineRepo repository.RoutineRepository
	bindingRepo repository.UsersRoutineRepository
	userRepo    repository.UserRepository
	db          *gorm.DB
}

// NewRoutineService returns a new RoutineService.
func NewRoutineService(
	routineRepo repository.RoutineRepository,
	bindingRepo repository.UsersRoutineRepository,
	userRepo repository.UserRepository,
	db *gorm.DB,
) *RoutineService {
	return &RoutineService{
		routineRepo: routineRepo,
		bindingRepo: bindingRepo,
		userRepo:    userRepo,
		db:          db,
	}
}

// RoutineEntryInput is one exercise slot in a create/update payload.
type RoutineEntryInput struct {
	ExerciseID uint    `json:"exercise_id"`
	Order      uint    `json:"order"`
	SetCount   uint    `json:"set_count"`
	RepCount   uint    `json:"rep_count"`
	Weight     float64 `json:"weight"`
	Duration   uint    `json:"duration"`
	Speed      float64 `json:"speed"`
}

// CreateRoutineInput is the input for authoring a routine.
type CreateRoutineInput struct {
	UserID  uint
	Title   string
	Entries []RoutineEntryInput
}

// UpdateRoutineInput is the input for an author edit. Entries replace the
// whole exercise list; a nil Title leaves the title unchanged.
type UpdateRoutineInput struct {
	UserID    uint
	BindingID uint
	Title     *string
	Entries   []RoutineEntryInput
}

func validateEntries(entries []RoutineEntryInput) error {
	orders := make([]uint, 0, len(entries))
	for _, e := range entries {
		orders = append(orders, e.Order)
		if e.Weight < 0 || e.Speed < 0 {
			return models.NewValidationError("Exercise attributes must not be negative")
		}
	}
	if err := validation.ValidateEntryOrders(orders); err != nil {
		return models.NewValidationError(err.Error())
	}
	return nil
}

// loadExercises resolves the catalog rows for a payload, erroring on unknown IDs.
func loadExercises(tx *gorm.DB, entries []RoutineEntryInput) (map[uint]models.Exercise, error) {
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ExerciseID)
	}
	var exercises []models.Exercise
	if err := tx.Where("id IN ?", ids).Find(&exercises).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	byID := make(map[uint]models.Exercise, len(exercises))
	for _, ex := range exercises {
		byID[ex.ID] = ex
	}
	for _, e := range entries {
		if _, ok := byID[e.ExerciseID]; !ok {
			return nil, models.NewNotFoundError("Exercise", e.ExerciseID)
		}
	}
	return byID, nil
}

// settingFor builds the entry setting, zeroing every attribute the exercise
// does not use.
func settingFor(ex models.Exercise, in RoutineEntryInput) models.ExerciseSetting {
	setting := models.ExerciseSetting{}
	if ex.NeedsSet {
		setting.SetCount = in.SetCount
	}
	if ex.NeedsRep {
		setting.RepCount = in.RepCount
	}
	if ex.NeedsWeight {
		setting.Weight = in.Weight
	}
	if ex.NeedsDuration {
		setting.Duration = in.Duration
	}
	if ex.NeedsSpeed {
		setting.Speed = in.Speed
	}
	return setting
}

// createMirror cuts a snapshot of the given routine content and its entries.
// The live-routine reference is set on both the mirror and each entry; it is
// cleared again when a newer mirror replaces this one.
func createMirror(tx *gorm.DB, routine *models.Routine, authorName string, entries []RoutineEntryInput, exercises map[uint]models.Exercise) (*models.MirroredRoutine, error) {
	mirror := &models.MirroredRoutine{
		Title:             routine.Title,
		AuthorName:        authorName,
		OriginalRoutineID: &routine.ID,
	}
	if err := tx.Create(mirror).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	for _, in := range entries {
		entry := models.ExerciseInRoutine{
			RoutineID:         &routine.ID,
			MirroredRoutineID: mirror.ID,
			ExerciseID:        in.ExerciseID,
			Order:             in.Order,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		setting := settingFor(exercises[in.ExerciseID], in)
		setting.ExerciseInRoutineID = entry.ID
		if err := tx.Create(&setting).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
	}
	return mirror, nil
}

// garbageCollectMirror deletes the mirror iff no binding references it any
// longer. Streak rows keep their history with the reference nulled out.
func garbageCollectMirror(tx *gorm.DB, mirrorID uint) error {
	var refs int64
	if err := tx.Model(&models.UsersRoutine{}).
		Where("mirrored_routine_id = ?", mirrorID).
		Count(&refs).Error; err != nil {
		return models.NewInternalError(err)
	}
	if refs > 0 {
		return nil
	}

	if err := tx.Model(&models.RoutineStreak{}).
		Where("mirrored_routine_id = ?", mirrorID).
		Update("mirrored_routine_id", nil).Error; err != nil {
		return models.NewInternalError(err)
	}

	entryIDs := tx.Model(&models.ExerciseInRoutine{}).
		Select("id").Where("mirrored_routine_id = ?", mirrorID)
	if err := tx.Where("exercise_in_routine_id IN (?)", entryIDs).
		Delete(&models.ExerciseSetting{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	if err := tx.Where("mirrored_routine_id = ?", mirrorID).
		Delete(&models.ExerciseInRoutine{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	if err := tx.Delete(&models.MirroredRoutine{}, mirrorID).Error; err != nil {
		return models.NewInternalError(err)
	}

	observability.MirrorsCollected.Inc()
	return nil
}

// CreateRoutine authors a routine: the live record, its first mirror with
// entries, and the author's own binding, all in one transaction.
func (s *RoutineService) CreateRoutine(ctx context.Context, in CreateRoutineInput) (*models.UsersRoutine, error) {
	if err := validation.ValidateRoutineTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validateEntries(in.Entries); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	var bindingID uint
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exercises, err := loadExercises(tx, in.Entries)
		if err != nil {
			return err
		}

		routine := &models.Routine{AuthorID: &in.UserID, Title: in.Title}
		if err := tx.Create(routine).Error; err != nil {
			return models.NewInternalError(err)
		}

		mirror, err := createMirror(tx, routine, author.Username, in.Entries, exercises)
		if err != nil {
			return err
		}

		binding := &models.UsersRoutine{
			UserID:            in.UserID,
			IsAuthor:          true,
			RoutineID:         &routine.ID,
			MirroredRoutineID: mirror.ID,
		}
		if err := tx.Create(binding).Error; err != nil {
			return models.NewInternalError(err)
		}
		bindingID = binding.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	observability.MirrorsCreated.WithLabelValues("create").Inc()
	cache.InvalidateRoutineList(ctx)

	return s.bindingRepo.GetByIDForUser(ctx, bindingID, in.UserID)
}

// Subscribe binds a user to someone else's live routine at its current mirror.
func (s *RoutineService) Subscribe(ctx context.Context, userID, routineID uint) (*models.UsersRoutine, error) {
	routine, err := s.routineRepo.GetByID(ctx, routineID)
	if err != nil {
		return nil, err
	}
	if routine.AuthorID != nil && *routine.AuthorID == userID {
		return nil, models.NewConflictError("Cannot subscribe to your own routine")
	}

	already, err := s.bindingRepo.ExistsForRoutine(ctx, userID, routineID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, models.NewConflictError("Already subscribed to this routine")
	}

	var bindingID uint
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mirror models.MirroredRoutine
		err := tx.Where("original_routine_id = ?", routineID).First(&mirror).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Routine", routineID)
			}
			return models.NewInternalError(err)
		}

		binding := &models.UsersRoutine{
			UserID:            userID,
			IsAuthor:          false,
			RoutineID:         &routineID,
			MirroredRoutineID: mirror.ID,
		}
		if err := tx.Create(binding).Error; err != nil {
			if isUniqueViolation(err) {
				return models.NewConflictError("Already subscribed to this routine")
			}
			return models.NewInternalError(err)
		}
		bindingID = binding.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	observability.SubscriptionsTotal.Inc()
	return s.bindingRepo.GetByIDForUser(ctx, bindingID, userID)
}

// UpdateRoutine applies an author edit as a full re-mirror: detach the old
// mirror and its entries from the live routine, cut a new mirror, repoint the
// author's binding, flag every other subscriber stale, then collect the old
// mirror if nobody references it anymore.
func (s *RoutineService) UpdateRoutine(ctx context.Context, in UpdateRoutineInput) (*models.UsersRoutine, error) {
	binding, err := s.bindingRepo.GetByIDForUser(ctx, in.BindingID, in.UserID)
	if err != nil {
		return nil, err
	}
	if !binding.IsAuthor || binding.RoutineID == nil {
		return nil, models.NewForbiddenError("Only the author can edit a routine")
	}
	routineID := *binding.RoutineID

	title := binding.Routine.Title
	if in.Title != nil {
		title = *in.Title
	}
	if err := validation.ValidateRoutineTitle(title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validateEntries(in.Entries); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	oldMirrorID := binding.MirroredRoutineID

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exercises, err := loadExercises(tx, in.Entries)
		if err != nil {
			return err
		}

		var routine models.Routine
		if err := tx.First(&routine, routineID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Routine", routineID)
			}
			return models.NewInternalError(err)
		}

		// Detach the old mirror: it stops being the routine's current
		// snapshot but keeps serving subscribers already bound to it.
		if err := tx.Model(&models.MirroredRoutine{}).
			Where("id = ?", oldMirrorID).
			Update("original_routine_id", nil).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Model(&models.ExerciseInRoutine{}).
			Where("routine_id = ?", routineID).
			Update("routine_id", nil).Error; err != nil {
			return models.NewInternalError(err)
		}

		if routine.Title != title {
			routine.Title = title
			if err := tx.Model(&routine).Update("title", title).Error; err != nil {
				return models.NewInternalError(err)
			}
		}

		mirror, err := createMirror(tx, &routine, author.Username, in.Entries, exercises)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.UsersRoutine{}).
			Where("id = ?", binding.ID).
			Updates(map[string]any{
				"mirrored_routine_id": mirror.ID,
				"need_update":         false,
			}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Model(&models.UsersRoutine{}).
			Where("routine_id = ? AND id <> ?", routineID, binding.ID).
			Update("need_update", true).Error; err != nil {
			return models.NewInternalError(err)
		}

		return garbageCollectMirror(tx, oldMirrorID)
	})
	if txErr != nil {
		return nil, txErr
	}

	observability.MirrorsCreated.WithLabelValues("update").Inc()
	cache.InvalidateRoutine(ctx, routineID)

	return s.bindingRepo.GetByIDForUser(ctx, in.BindingID, in.UserID)
}

// DeleteBinding removes a user's binding. When the author detaches, the live
// routine goes with it; the mirror outlives both while any other subscriber
// still points at it.
func (s *RoutineService) DeleteBinding(ctx context.Context, userID, bindingID uint) error {
	binding, err := s.bindingRepo.GetByIDForUser(ctx, bindingID, userID)
	if err != nil {
		return err
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.UsersRoutine{}, binding.ID).Error; err != nil {
			return models.NewInternalError(err)
		}

		if binding.IsAuthor && binding.RoutineID != nil {
			routineID := *binding.RoutineID
			if err := tx.Model(&models.MirroredRoutine{}).
				Where("original_routine_id = ?", routineID).
				Update("original_routine_id", nil).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Model(&models.ExerciseInRoutine{}).
				Where("routine_id = ?", routineID).
				Update("routine_id", nil).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Model(&models.UsersRoutine{}).
				Where("routine_id = ?", routineID).
				Update("routine_id", nil).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Where("routine_id = ?", routineID).
				Delete(&models.RoutineLike{}).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Delete(&models.Routine{}, routineID).Error; err != nil {
				return models.NewInternalError(err)
			}
		}

		return garbageCollectMirror(tx, binding.MirroredRoutineID)
	})
	if txErr != nil {
		return txErr
	}

	if binding.RoutineID != nil {
		cache.InvalidateRoutine(ctx, *binding.RoutineID)
	}
	return nil
}

// Like records a like and bumps the counter atomically; a second like from
// the same user is rejected.
func (s *RoutineService) Like(ctx context.Context, userID, routineID uint) (uint, error) {
	if _, err := s.routineRepo.GetByID(ctx, routineID); err != nil {
		return 0, err
	}

	var likeCount uint
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := &models.RoutineLike{UserID: userID, RoutineID: routineID}
		if err := tx.Create(like).Error; err != nil {
			if isUniqueViolation(err) {
				return models.NewConflictError("Already liked this routine")
			}
			return models.NewInternalError(err)
		}
		if err := tx.Model(&models.Routine{}).
			Where("id = ?", routineID).
			Update("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
			return models.NewInternalError(err)
		}
		var routine models.Routine
		if err := tx.First(&routine, routineID).Error; err != nil {
			return models.NewInternalError(err)
		}
		likeCount = routine.LikeCount
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}

	cache.InvalidateRoutine(ctx, routineID)
	return likeCount, nil
}

// ListRoutines lists live routines with optional author filter and ordering.
func (s *RoutineService) ListRoutines(ctx context.Context, opts repository.RoutineListOptions) ([]models.Routine, error) {
	return s.routineRepo.List(ctx, opts)
}

// GetRoutine returns a live routine with its current mirror's content.
func (s *RoutineService) GetRoutine(ctx context.Context, id uint) (*models.Routine, *models.MirroredRoutine, error) {
	routine, err := s.routineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var mirror models.MirroredRoutine
	err = s.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Preload("Entries.Exercise").
		Preload("Entries.Setting").
		Where("original_routine_id = ?", id).
		First(&mirror).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.NewNotFoundError("Routine", id)
		}
		return nil, nil, models.NewInternalError(err)
	}

	return routine, &mirror, nil
}

// ListBindings lists the user's routine bindings.
func (s *RoutineService) ListBindings(ctx context.Context, userID uint) ([]models.UsersRoutine, error) {
	return s.bindingRepo.ListByUser(ctx, userID)
}

// GetBinding returns one of the user's bindings.
func (s *RoutineService) GetBinding(ctx context.Context, userID, bindingID uint) (*models.UsersRoutine, error) {
	return s.bindingRepo.GetByIDForUser(ctx, bindingID, userID)
}
