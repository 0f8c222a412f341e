package service

import (
	"context"

	"fitlog/internal/models"
	"fitlog/internal/repository"
)

// ExerciseService manages the admin-curated exercise catalog.
type ExerciseService struct {
	exerciseRepo repository.ExerciseRepository
	isAdmin      func(ctx context.Context, userID uint) (bool, error)
}

// NewExerciseService returns a new ExerciseService.
func NewExerciseService(
	exerciseRepo repository.ExerciseRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *ExerciseService {
	return &ExerciseService{exerciseRepo: exerciseRepo, isAdmin: isAdmin}
}

// ExerciseInput is the create/update payload for a catalog entry.
type ExerciseInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	VideoURL      string   `json:"video_url"`
	NeedsSet      bool     `json:"needs_set"`
	NeedsRep      bool     `json:"needs_rep"`
	NeedsWeight   bool     `json:"needs_weight"`
	NeedsDuration bool     `json:"needs_duration"`
	NeedsSpeed    bool     `json:"needs_speed"`
	FocusAreas    []string `json:"focus_areas"`
}

func (s *ExerciseService) requireAdmin(ctx context.Context, userID uint) error {
	if s.isAdmin == nil {
		return models.NewForbiddenError("Admin access required")
	}
	admin, err := s.isAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !admin {
		return models.NewForbiddenError("Admin access required")
	}
	return nil
}

// ListExercises returns the whole catalog.
func (s *ExerciseService) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// GetExercise returns one catalog entry.
func (s *ExerciseService) GetExercise(ctx context.Context, id uint) (*models.Exercise, error) {
	return s.exerciseRepo.GetByID(ctx, id)
}

// CreateExercise adds a catalog entry. Admin only.
func (s *ExerciseService) CreateExercise(ctx context.Context, userID uint, in ExerciseInput) (*models.Exercise, error) {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}

	areas, err := s.exerciseRepo.FocusAreasByName(ctx, in.FocusAreas)
	if err != nil {
		return nil, err
	}

	exercise := &models.Exercise{
		AuthorID:      userID,
		Title:         in.Title,
		Description:   in.Description,
		VideoURL:      in.VideoURL,
		NeedsSet:      in.NeedsSet,
		NeedsRep:      in.NeedsRep,
		NeedsWeight:   in.NeedsWeight,
		NeedsDuration: in.NeedsDuration,
		NeedsSpeed:    in.NeedsSpeed,
		FocusAreas:    areas,
	}
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, exercise.ID)
}

// UpdateExercise replaces a catalog entry's fields and tags. Admin only.
func (s *ExerciseService) UpdateExercise(ctx context.Context, userID, id uint, in ExerciseInput) (*models.Exercise, error) {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}

	areas, err := s.exerciseRepo.FocusAreasByName(ctx, in.FocusAreas)
	if err != nil {
		return nil, err
	}

	exercise.Title = in.Title
	exercise.Description = in.Description
	exercise.VideoURL = in.VideoURL
	exercise.NeedsSet = in.NeedsSet
	exercise.NeedsRep = in.NeedsRep
	exercise.NeedsWeight = in.NeedsWeight
	exercise.NeedsDuration = in.NeedsDuration
	exercise.NeedsSpeed = in.NeedsSpeed
	exercise.FocusAreas = areas

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, id)
}

// DeleteExercise removes a catalog entry. Admin only.
func (s *ExerciseService) DeleteExercise(ctx context.Context, userID, id uint) error {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return err
	}
	return s.exerciseRepo.Delete(ctx, id)
}
