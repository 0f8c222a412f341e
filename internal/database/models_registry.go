package database

import "fitlog/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
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
	}
}
