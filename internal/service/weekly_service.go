package service

import (
	"context"
	"sort"

	"fitlog/internal/models"
	"fitlog/internal/repository"
	"fitlog/internal/validation"

	"gorm.io/gorm"
)

// WeeklyRoutineService manages the user's seven-slot weekday schedule.
type WeeklyRoutineService struct {
	weeklyRepo  repository.WeeklyRoutineRepository
	bindingRepo repository.UsersRoutineRepository
	db          *gorm.DB
}

// NewWeeklyRoutineService returns a new WeeklyRoutineService.
func NewWeeklyRoutineService(
	weeklyRepo repository.WeeklyRoutineRepository,
	bindingRepo repository.UsersRoutineRepository,
	db *gorm.DB,
) *WeeklyRoutineService {
	return &WeeklyRoutineService{
		weeklyRepo:  weeklyRepo,
		bindingRepo: bindingRepo,
		db:          db,
	}
}

// ScheduleSlotInput assigns one of the user's bindings to a weekday.
type ScheduleSlotInput struct {
	DayIndex       uint `json:"day_index"`
	UsersRoutineID uint `json:"users_routine_id"`
}

// validateSlots checks day-index bounds, duplicate days in the payload, and
// that every referenced binding belongs to the user.
func (s *WeeklyRoutineService) validateSlots(ctx context.Context, userID uint, slots []ScheduleSlotInput) error {
	if len(slots) == 0 {
		return models.NewValidationError("Schedule must contain at least one day")
	}
	seen := make(map[uint]struct{}, len(slots))
	for _, slot := range slots {
		if err := validation.ValidateDayIndex(slot.DayIndex); err != nil {
			return models.NewValidationError(err.Error())
		}
		if _, dup := seen[slot.DayIndex]; dup {
			return models.NewValidationError("Duplicate day in schedule")
		}
		seen[slot.DayIndex] = struct{}{}

		if _, err := s.bindingRepo.GetByIDForUser(ctx, slot.UsersRoutineID, userID); err != nil {
			return err
		}
	}
	return nil
}

// GetSchedule returns the user's schedule sorted by day index.
func (s *WeeklyRoutineService) GetSchedule(ctx context.Context, userID uint) ([]models.WeeklyRoutine, error) {
	return s.weeklyRepo.ListByUser(ctx, userID)
}

// CreateSchedule creates the user's schedule; rejected if one already exists.
func (s *WeeklyRoutineService) CreateSchedule(ctx context.Context, userID uint, slots []ScheduleSlotInput) ([]models.WeeklyRoutine, error) {
	exists, err := s.weeklyRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("Schedule already exists")
	}
	if err := s.validateSlots(ctx, userID, slots); err != nil {
		return nil, err
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, slot := range slots {
			row := models.WeeklyRoutine{
				UserID:         userID,
				UsersRoutineID: slot.UsersRoutineID,
				DayIndex:       slot.DayIndex,
			}
			if err := tx.Create(&row).Error; err != nil {
				if isUniqueViolation(err) {
					return models.NewConflictError("Schedule already exists")
				}
				return models.NewInternalError(err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.weeklyRepo.ListByUser(ctx, userID)
}

// ReplaceSchedule diffs the stored schedule against the payload: slots whose
// day index appears in both are updated in place, keeping their row identity;
// days only in the old schedule are deleted; days only in the payload are
// created.
func (s *WeeklyRoutineService) ReplaceSchedule(ctx context.Context, userID uint, slots []ScheduleSlotInput) ([]models.WeeklyRoutine, error) {
	if err := s.validateSlots(ctx, userID, slots); err != nil {
		return nil, err
	}

	current, err := s.weeklyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing := make(map[uint]models.WeeklyRoutine, len(current))
	for _, row := range current {
		existing[row.DayIndex] = row
	}
	wanted := make(map[uint]ScheduleSlotInput, len(slots))
	for _, slot := range slots {
		wanted[slot.DayIndex] = slot
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for day, row := range existing {
			slot, keep := wanted[day]
			if !keep {
				if err := tx.Delete(&models.WeeklyRoutine{}, row.ID).Error; err != nil {
					return models.NewInternalError(err)
				}
				continue
			}
			if row.UsersRoutineID != slot.UsersRoutineID {
				if err := tx.Model(&models.WeeklyRoutine{}).
					Where("id = ?", row.ID).
					Update("users_routine_id", slot.UsersRoutineID).Error; err != nil {
					return models.NewInternalError(err)
				}
			}
		}

		days := make([]uint, 0, len(wanted))
		for day := range wanted {
			days = append(days, day)
		}
		sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

		for _, day := range days {
			if _, ok := existing[day]; ok {
				continue
			}
			slot := wanted[day]
			row := models.WeeklyRoutine{
				UserID:         userID,
				UsersRoutineID: slot.UsersRoutineID,
				DayIndex:       slot.DayIndex,
			}
			if err := tx.Create(&row).Error; err != nil {
				return models.NewInternalError(err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.weeklyRepo.ListByUser(ctx, userID)
}

// ClearSchedule deletes every schedule slot for the user.
func (s *WeeklyRoutineService) ClearSchedule(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.WeeklyRoutine{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
