package server

import (
	"testing"

	"fitlog/internal/config"
	"fitlog/internal/models"
	"fitlog/internal/repository"
	"fitlog/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server over an in-memory SQLite database with all
// services wired. The Prometheus collector is left nil so repeated setups
// don't fight over metric registration.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
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
	))

	cfg := &config.Config{
		JWTSecret: "test-secret-key-for-handler-tests!!",
		Port:      "8080",
	}

	userRepo := repository.NewUserRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	routineRepo := repository.NewRoutineRepository(db)
	bindingRepo := repository.NewUsersRoutineRepository(db)
	weeklyRepo := repository.NewWeeklyRoutineRepository(db)
	streakRepo := repository.NewStreakRepository(db)
	healthRepo := repository.NewHealthRecordRepository(db)

	s := &Server{
		config:       cfg,
		db:           db,
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		routineRepo:  routineRepo,
		bindingRepo:  bindingRepo,
		weeklyRepo:   weeklyRepo,
		streakRepo:   streakRepo,
		healthRepo:   healthRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.exerciseService = service.NewExerciseService(exerciseRepo, s.isAdminByUserID)
	s.routineService = service.NewRoutineService(routineRepo, bindingRepo, userRepo, db)
	s.weeklyService = service.NewWeeklyRoutineService(weeklyRepo, bindingRepo, db)
	s.streakService = service.NewStreakService(streakRepo, weeklyRepo, nil)
	s.healthService = service.NewHealthRecordService(healthRepo, nil)

	return s, db
}

// authedApp returns a Fiber app whose requests act as the given user,
// bypassing JWT verification.
func authedApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}

func createUser(t *testing.T, db *gorm.DB, username string, admin bool) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("SecurePass12!@"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		IsAdmin:  admin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createExercise(t *testing.T, db *gorm.DB, author *models.User, title string) *models.Exercise {
	t.Helper()
	exercise := &models.Exercise{
		AuthorID: author.ID,
		Title:    title,
		NeedsSet: true,
		NeedsRep: true,
	}
	require.NoError(t, db.Create(exercise).Error)
	return exercise
}
