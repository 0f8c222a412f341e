package server

import (
	"fitlog/internal/models"
	"fitlog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyBindings handles GET /api/users-routines
func (s *Server) GetMyBindings(c *fiber.Ctx) error {
	bindings, err := s.routineService.ListBindings(c.Context(), s.userID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(bindings)
}

// GetBinding handles GET /api/users-routines/:id
func (s *Server) GetBinding(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	binding, svcErr := s.routineService.GetBinding(c.Context(), s.userID(c), id)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(binding)
}

// CreateRoutine handles POST /api/users-routines
func (s *Server) CreateRoutine(c *fiber.Ctx) error {
	var req struct {
		Title   string                      `json:"title"`
		Entries []service.RoutineEntryInput `json:"entries"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	binding, err := s.routineService.CreateRoutine(c.Context(), service.CreateRoutineInput{
		UserID:  s.userID(c),
		Title:   req.Title,
		Entries: req.Entries,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(binding)
}

// UpdateRoutine handles PATCH /api/users-routines/:id
func (s *Server) UpdateRoutine(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   *string                     `json:"title"`
		Entries []service.RoutineEntryInput `json:"entries"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	binding, svcErr := s.routineService.UpdateRoutine(c.Context(), service.UpdateRoutineInput{
		UserID:    s.userID(c),
		BindingID: id,
		Title:     req.Title,
		Entries:   req.Entries,
	})
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(binding)
}

// DeleteBinding handles DELETE /api/users-routines/:id
func (s *Server) DeleteBinding(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.routineService.DeleteBinding(c.Context(), s.userID(c), id); svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
