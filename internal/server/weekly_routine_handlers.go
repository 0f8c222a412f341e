package server

import (
	"fitlog/internal/models"
	"fitlog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSchedule handles GET /api/weekly-routines
func (s *Server) GetSchedule(c *fiber.Ctx) error {
	schedule, err := s.weeklyService.GetSchedule(c.Context(), s.userID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(schedule)
}

// CreateSchedule handles POST /api/weekly-routines
func (s *Server) CreateSchedule(c *fiber.Ctx) error {
	var req struct {
		Slots []service.ScheduleSlotInput `json:"slots"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	schedule, err := s.weeklyService.CreateSchedule(c.Context(), s.userID(c), req.Slots)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// ReplaceSchedule handles PUT /api/weekly-routines
func (s *Server) ReplaceSchedule(c *fiber.Ctx) error {
	var req struct {
		Slots []service.ScheduleSlotInput `json:"slots"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	schedule, err := s.weeklyService.ReplaceSchedule(c.Context(), s.userID(c), req.Slots)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(schedule)
}

// ClearSchedule handles DELETE /api/weekly-routines
func (s *Server) ClearSchedule(c *fiber.Ctx) error {
	if err := s.weeklyService.ClearSchedule(c.Context(), s.userID(c)); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
