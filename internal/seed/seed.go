package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/repository"
	"fitlog/internal/service"

	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers     int
	NumExercises int
	NumRoutines  int
	ShouldClean  bool
}

// Seed populates the database with demo data: users, the exercise catalog,
// authored routines with mirrors, cross-subscriptions, weekly schedules and
// streak/health history. Routine data goes through the service layer so the
// mirror ledger invariants hold for seeded rows too.
func Seed(db *gorm.DB, opts Options) error {
	ctx := context.Background()

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("warning: could not clear all existing data, continuing anyway")
		}
	}

	userRepo := repository.NewUserRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	routineRepo := repository.NewRoutineRepository(db)
	bindingRepo := repository.NewUsersRoutineRepository(db)
	weeklyRepo := repository.NewWeeklyRoutineRepository(db)

	routineSvc := service.NewRoutineService(routineRepo, bindingRepo, userRepo, db)
	weeklySvc := service.NewWeeklyRoutineService(weeklyRepo, bindingRepo, db)

	if err := exerciseRepo.EnsureFocusAreas(ctx); err != nil {
		return fmt.Errorf("failed to seed focus areas: %w", err)
	}
	var areas []models.FocusArea
	if err := db.Find(&areas).Error; err != nil {
		return fmt.Errorf("failed to load focus areas: %w", err)
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser(i == 0)
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	admin := users[0]
	exercises := make([]models.Exercise, 0, opts.NumExercises)
	for i := 0; i < opts.NumExercises; i++ {
		exercise, err := f.CreateExercise(admin, areas)
		if err != nil {
			return fmt.Errorf("failed to create exercises: %w", err)
		}
		exercises = append(exercises, *exercise)
	}
	log.Printf("seeded %d exercises", len(exercises))

	bindings := make(map[uint][]uint) // userID -> binding IDs
	routineIDs := make([]uint, 0, opts.NumRoutines)
	for i := 0; i < opts.NumRoutines; i++ {
		author := users[f.rand.Intn(len(users))]
		binding, err := routineSvc.CreateRoutine(ctx, service.CreateRoutineInput{
			UserID:  author.ID,
			Title:   f.RoutineTitle(),
			Entries: f.RoutineEntries(exercises),
		})
		if err != nil {
			return fmt.Errorf("failed to create routines: %w", err)
		}
		bindings[author.ID] = append(bindings[author.ID], binding.ID)
		routineIDs = append(routineIDs, *binding.RoutineID)
	}
	log.Printf("seeded %d routines", len(routineIDs))

	subscriptions := 0
	for _, user := range users {
		for i := 0; i < 2 && len(routineIDs) > 0; i++ {
			routineID := routineIDs[f.rand.Intn(len(routineIDs))]
			binding, err := routineSvc.Subscribe(ctx, user.ID, routineID)
			if err != nil {
				// Own routine or duplicate pick; both are fine to skip.
				continue
			}
			bindings[user.ID] = append(bindings[user.ID], binding.ID)
			subscriptions++
		}
	}
	log.Printf("seeded %d subscriptions", subscriptions)

	schedules := 0
	for _, user := range users {
		owned := bindings[user.ID]
		if len(owned) == 0 {
			continue
		}
		slots := make([]service.ScheduleSlotInput, 0, models.DaysPerWeek)
		for day := uint(0); day < models.DaysPerWeek; day++ {
			if f.rand.Intn(2) == 0 {
				continue
			}
			slots = append(slots, service.ScheduleSlotInput{
				DayIndex:       day,
				UsersRoutineID: owned[f.rand.Intn(len(owned))],
			})
		}
		if len(slots) == 0 {
			continue
		}
		if _, err := weeklySvc.CreateSchedule(ctx, user.ID, slots); err != nil {
			return fmt.Errorf("failed to create schedules: %w", err)
		}
		schedules++
	}
	log.Printf("seeded %d weekly schedules", schedules)

	if err := seedHistory(db, f, users, bindings); err != nil {
		return err
	}

	log.Println("seeding complete")
	return nil
}

// seedHistory backfills streaks and health records for past days. History rows
// are written directly since the services only accept "today".
func seedHistory(db *gorm.DB, f *Factory, users []*models.User, bindings map[uint][]uint) error {
	for _, user := range users {
		owned := bindings[user.ID]
		days := f.rand.Intn(20)
		for i := 1; i <= days; i++ {
			date := midnightUTC(time.Now().AddDate(0, 0, -i))

			if len(owned) > 0 && f.rand.Intn(3) != 0 {
				var binding models.UsersRoutine
				if err := db.First(&binding, owned[f.rand.Intn(len(owned))]).Error; err != nil {
					return fmt.Errorf("failed to load binding for streaks: %w", err)
				}
				mirrorID := binding.MirroredRoutineID
				streak := models.RoutineStreak{
					UserID:            user.ID,
					Date:              date,
					MirroredRoutineID: &mirrorID,
				}
				if err := db.Create(&streak).Error; err != nil {
					return fmt.Errorf("failed to create streak history: %w", err)
				}
			}

			if f.rand.Intn(2) == 0 {
				record := models.HealthRecord{
					UserID: user.ID,
					Age:    uint(18 + f.rand.Intn(40)),
					Height: 150 + float64(f.rand.Intn(40)),
					Weight: 50 + float64(f.rand.Intn(50)),
					Date:   date,
				}
				if err := db.Create(&record).Error; err != nil {
					return fmt.Errorf("failed to create health history: %w", err)
				}
			}
		}
	}
	return nil
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// clearData removes seeded rows in FK order.
func clearData(db *gorm.DB) error {
	tables := []string{
		"routine_streaks",
		"weekly_routines",
		"health_records",
		"users_routines",
		"exercise_settings",
		"exercises_in_routine",
		"mirrored_routines",
		"routine_likes",
		"routines",
		"exercise_focus_areas",
		"exercises",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
