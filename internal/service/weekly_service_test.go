package service

import (
	"context"
	"testing"

	"fitlog/internal/models"
	"fitlog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWeeklyService(db *gorm.DB) *WeeklyRoutineService {
	return NewWeeklyRoutineService(
		repository.NewWeeklyRoutineRepository(db),
		repository.NewUsersRoutineRepository(db),
		db,
	)
}

// createTestBinding authors a throwaway routine and returns the author's
// binding, which is what weekly slots reference.
func createTestBinding(t *testing.T, db *gorm.DB, user *models.User, title string) *models.UsersRoutine {
	t.Helper()
	exercise := createTestExercise(t, db, user, title+" exercise")
	binding, err := newRoutineService(db).CreateRoutine(context.Background(), CreateRoutineInput{
		UserID:  user.ID,
		Title:   title,
		Entries: []RoutineEntryInput{{ExerciseID: exercise.ID, Order: 1, SetCount: 3, RepCount: 10}},
	})
	require.NoError(t, err)
	return binding
}

func TestWeeklyRoutineService_CreateSchedule(t *testing.T) {
	db := setupTestDB(t)
	svc := newWeeklyService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	push := createTestBinding(t, db, user, "Push Day")
	pull := createTestBinding(t, db, user, "Pull Day")

	schedule, err := svc.CreateSchedule(ctx, user.ID, []ScheduleSlotInput{
		{DayIndex: 0, UsersRoutineID: push.ID},
		{DayIndex: 2, UsersRoutineID: pull.ID},
	})
	require.NoError(t, err)
	require.Len(t, schedule, 2)
	assert.Equal(t, uint(0), schedule[0].DayIndex)
	assert.Equal(t, push.ID, schedule[0].UsersRoutineID)
	assert.Equal(t, uint(2), schedule[1].DayIndex)

	t.Run("already exists", func(t *testing.T) {
		_, err := svc.CreateSchedule(ctx, user.ID, []ScheduleSlotInput{
			{DayIndex: 1, UsersRoutineID: push.ID},
		})
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", appErrCode(t, err))
	})
}

func TestWeeklyRoutineService_CreateSchedule_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := newWeeklyService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")
	push := createTestBinding(t, db, user, "Push Day")
	theirs := createTestBinding(t, db, other, "Their Day")

	t.Run("empty", func(t *testing.T) {
		_, err := svc.CreateSchedule(ctx, user.ID, nil)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
	})

	t.Run("day index out of range", func(t *testing.T) {
		_, err := svc.CreateSchedule(ctx, user.ID, []ScheduleSlotInput{
			{DayIndex: 7, UsersRoutineID: push.ID},
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
	})

	t.Run("duplicate day", func(t *testing.T) {
		_, err := svc.CreateSchedule(ctx, user.ID, []ScheduleSlotInput{
			{DayIndex: 3, UsersRoutineID: push.ID},
			{DayIndex: 3, UsersRoutineID: push.ID},
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
	})

	t.Run("someone else's binding", func(t *testing.T) {
		_, err := svc.CreateSchedule(ctx, user.ID, []ScheduleSlotInput{
			{DayIndex: 0, UsersRoutineID: theirs.ID},
		})
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
	})
}

func TestWeeklyRoutineService_ReplaceSchedule(t *testing.T) {
	db := setupTestDB(t)
	svc := newWeeklyService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	push := createTestBinding(t, db, user, "Push Day")
	pull := createTestBinding(t, db, user, "Pull Day")
	legs := createTestBinding(t, db, user, "Leg Day")

	before, err := svc.CreateSchedule(ctx, user.ID, []ScheduleSlotInput{
		{DayIndex: 0, UsersRoutineID: push.ID},
		{DayIndex: 2, UsersRoutineID: pull.ID},
		{DayIndex: 4, UsersRoutineID: push.ID},
	})
	require.NoError(t, err)
	rowByDay := make(map[uint]models.WeeklyRoutine, len(before))
	for _, row := range before {
		rowByDay[row.DayIndex] = row
	}

	// Keep Monday as-is, repoint Wednesday, drop Friday, add Saturday.
	after, err := svc.ReplaceSchedule(ctx, user.ID, []ScheduleSlotInput{
		{DayIndex: 0, UsersRoutineID: push.ID},
		{DayIndex: 2, UsersRoutineID: legs.ID},
		{DayIndex: 5, UsersRoutineID: pull.ID},
	})
	require.NoError(t, err)
	require.Len(t, after, 3)

	// Days present in both keep their row identity.
	assert.Equal(t, rowByDay[0].ID, after[0].ID)
	assert.Equal(t, push.ID, after[0].UsersRoutineID)
	assert.Equal(t, rowByDay[2].ID, after[1].ID)
	assert.Equal(t, legs.ID, after[1].UsersRoutineID)

	// The dropped day is gone, the new one is a fresh row.
	assert.Equal(t, uint(5), after[2].DayIndex)
	assert.NotEqual(t, rowByDay[4].ID, after[2].ID)

	var fridayCount int64
	require.NoError(t, db.Model(&models.WeeklyRoutine{}).
		Where("user_id = ? AND day_index = ?", user.ID, 4).
		Count(&fridayCount).Error)
	assert.Zero(t, fridayCount)
}

func TestWeeklyRoutineService_ClearSchedule(t *testing.T) {
	db := setupTestDB(t)
	svc := newWeeklyService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	push := createTestBinding(t, db, user, "Push Day")

	_, err := svc.CreateSchedule(ctx, user.ID, []ScheduleSlotInput{
		{DayIndex: 0, UsersRoutineID: push.ID},
		{DayIndex: 3, UsersRoutineID: push.ID},
	})
	require.NoError(t, err)

	require.NoError(t, svc.ClearSchedule(ctx, user.ID))

	schedule, err := svc.GetSchedule(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, schedule)

	// A fresh schedule can be created afterwards.
	_, err = svc.CreateSchedule(ctx, user.ID, []ScheduleSlotInput{
		{DayIndex: 6, UsersRoutineID: push.ID},
	})
	require.NoError(t, err)
}
