package server

import (
	"fitlog/internal/models"
	"fitlog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetExercises handles GET /api/exercises
func (s *Server) GetExercises(c *fiber.Ctx) error {
	exercises, err := s.exerciseService.ListExercises(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(exercises)
}

// GetExercise handles GET /api/exercises/:id
func (s *Server) GetExercise(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	exercise, svcErr := s.exerciseService.GetExercise(c.Context(), id)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(exercise)
}

// CreateExercise handles POST /api/exercises
func (s *Server) CreateExercise(c *fiber.Ctx) error {
	var req service.ExerciseInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	exercise, err := s.exerciseService.CreateExercise(c.Context(), s.userID(c), req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exercise)
}

// UpdateExercise handles PUT /api/exercises/:id
func (s *Server) UpdateExercise(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.ExerciseInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	exercise, svcErr := s.exerciseService.UpdateExercise(c.Context(), s.userID(c), id, req)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(exercise)
}

// DeleteExercise handles DELETE /api/exercises/:id
func (s *Server) DeleteExercise(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.exerciseService.DeleteExercise(c.Context(), s.userID(c), id); svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
