package service

import (
	"fmt"
	"testing"

	"fitlog/internal/models"
	"fitlog/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.FocusArea{},
		&models.Exercise{},
		&models.Routine{},
		&models.RoutineLike{},
		&models.MirroredRoutine{},
		&models.ExerciseInRoutine{},
		&models.ExerciseSetting{},
		&models.UsersRoutine{},
		&models.WeeklyRoutine{},
		&models.RoutineStreak{},
		&models.HealthRecord{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func newRoutineService(db *gorm.DB) *RoutineService {
	return NewRoutineService(
		repository.NewRoutineRepository(db),
		repository.NewUsersRoutineRepository(db),
		repository.NewUserRepository(db),
		db,
	)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

// createTestExercise creates a strength-style catalog entry (sets/reps/weight).
func createTestExercise(t *testing.T, db *gorm.DB, author *models.User, title string) *models.Exercise {
	t.Helper()
	exercise := &models.Exercise{
		AuthorID:    author.ID,
		Title:       title,
		NeedsSet:    true,
		NeedsRep:    true,
		NeedsWeight: true,
	}
	if err := db.Create(exercise).Error; err != nil {
		t.Fatalf("create exercise %s: %v", title, err)
	}
	return exercise
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*models.AppError)
	if !ok {
		t.Fatalf("expected *models.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}
