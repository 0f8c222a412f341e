package service

import (
	"context"
	"fmt"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/observability"
	"fitlog/internal/repository"
)

// StreakService records daily routine completions. A completion is only
// accepted when a routine is scheduled for the current weekday and nothing
// has been recorded for that date yet.
type StreakService struct {
	streakRepo repository.StreakRepository
	weeklyRepo repository.WeeklyRoutineRepository
	now        func() time.Time
}

// NewStreakService returns a new StreakService. The clock is injectable so
// tests can pin the weekday.
func NewStreakService(
	streakRepo repository.StreakRepository,
	weeklyRepo repository.WeeklyRoutineRepository,
	now func() time.Time,
) *StreakService {
	if now == nil {
		now = time.Now
	}
	return &StreakService{
		streakRepo: streakRepo,
		weeklyRepo: weeklyRepo,
		now:        now,
	}
}

// dateOnly truncates to midnight UTC so the (user, date) uniqueness behaves
// the same on SQLite and Postgres.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RecordCompletion creates today's streak entry pointing at the mirror the
// user's schedule resolves to for the current weekday.
func (s *StreakService) RecordCompletion(ctx context.Context, userID uint) (*models.RoutineStreak, error) {
	today := dateOnly(s.now())
	slot, err := s.weeklyRepo.GetForDay(ctx, userID, models.WeekdayIndex(today))
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, models.NewValidationError("No routine scheduled for today")
	}

	done, err := s.streakRepo.ExistsOn(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, models.NewConflictError("Streak already recorded for today")
	}

	// The streak pins the mirror the binding currently resolves to, so the
	// snapshot survives later edits and unsubscribes.
	mirror := slot.UsersRoutine.Binding().Mirror()
	if mirror == nil {
		return nil, models.NewInternalError(fmt.Errorf("binding %d has no mirror", slot.UsersRoutineID))
	}
	mirrorID := mirror.ID
	streak := &models.RoutineStreak{
		UserID:            userID,
		Date:              today,
		MirroredRoutineID: &mirrorID,
	}
	if err := s.streakRepo.Create(ctx, streak); err != nil {
		return nil, err
	}

	observability.StreaksRecorded.Inc()
	return s.streakRepo.GetByIDForUser(ctx, streak.ID, userID)
}

// ListStreaks lists the user's streak history, newest first.
func (s *StreakService) ListStreaks(ctx context.Context, userID uint) ([]models.RoutineStreak, error) {
	return s.streakRepo.ListByUser(ctx, userID)
}

// GetStreak returns one streak entry belonging to the user.
func (s *StreakService) GetStreak(ctx context.Context, userID, id uint) (*models.RoutineStreak, error) {
	return s.streakRepo.GetByIDForUser(ctx, id, userID)
}

// GetLast returns the most recent streak entry; not found when the user has
// never recorded one.
func (s *StreakService) GetLast(ctx context.Context, userID uint) (*models.RoutineStreak, error) {
	return s.streakRepo.Last(ctx, userID)
}
