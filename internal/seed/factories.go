// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var exerciseTitles = []string{
	"Running", "Cycling", "Rowing", "Jump Rope", "Bench Press", "Incline Press",
	"Push Up", "Dip", "Pull Up", "Barbell Row", "Deadlift", "Lat Pulldown",
	"Overhead Press", "Lateral Raise", "Bicep Curl", "Tricep Extension",
	"Squat", "Lunge", "Leg Press", "Calf Raise", "Plank", "Crunch",
	"Hanging Leg Raise", "Russian Twist",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a bcrypt-hashed default password.
func (f *Factory) CreateUser(isAdmin bool) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), f.rand.Intn(10000)),
		Email:    gofakeit.Email(),
		Password: string(hashed),
		IsAdmin:  isAdmin,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateExercise persists a catalog exercise with plausible attribute flags
// and a random slice of focus areas.
func (f *Factory) CreateExercise(author *models.User, areas []models.FocusArea) (*models.Exercise, error) {
	title := exerciseTitles[f.rand.Intn(len(exerciseTitles))]

	exercise := &models.Exercise{
		AuthorID:    author.ID,
		Title:       fmt.Sprintf("%s %d", title, f.rand.Intn(1000)),
		Description: gofakeit.Sentence(12),
		VideoURL:    fmt.Sprintf("https://videos.example.com/%s", gofakeit.UUID()),
		// Cardio-style entries get duration/speed, strength entries get
		// sets/reps/weight.
		NeedsDuration: f.rand.Intn(2) == 0,
	}
	if exercise.NeedsDuration {
		exercise.NeedsSpeed = f.rand.Intn(2) == 0
	} else {
		exercise.NeedsSet = true
		exercise.NeedsRep = true
		exercise.NeedsWeight = f.rand.Intn(2) == 0
	}

	count := 1 + f.rand.Intn(2)
	picked := map[int]bool{}
	for len(exercise.FocusAreas) < count {
		i := f.rand.Intn(len(areas))
		if picked[i] {
			continue
		}
		picked[i] = true
		exercise.FocusAreas = append(exercise.FocusAreas, areas[i])
	}

	if err := f.db.Create(exercise).Error; err != nil {
		return nil, err
	}
	return exercise, nil
}

// RoutineEntries builds a random entry payload over the given catalog.
func (f *Factory) RoutineEntries(exercises []models.Exercise) []service.RoutineEntryInput {
	count := 2 + f.rand.Intn(4)
	entries := make([]service.RoutineEntryInput, 0, count)
	for i := 0; i < count; i++ {
		ex := exercises[f.rand.Intn(len(exercises))]
		entries = append(entries, service.RoutineEntryInput{
			ExerciseID: ex.ID,
			Order:      uint(i + 1),
			SetCount:   uint(3 + f.rand.Intn(3)),
			RepCount:   uint(8 + f.rand.Intn(8)),
			Weight:     float64(10 + f.rand.Intn(80)),
			Duration:   uint(10 + f.rand.Intn(50)),
			Speed:      float64(5 + f.rand.Intn(10)),
		})
	}
	return entries
}

// RoutineTitle produces a workout-sounding routine name.
func (f *Factory) RoutineTitle() string {
	kinds := []string{"Push Day", "Pull Day", "Leg Day", "Full Body", "Upper Body", "Cardio Blast", "Core Burner"}
	return fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), kinds[f.rand.Intn(len(kinds))])
}
