package server

import (
	"fitlog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetStreaks handles GET /api/routine-streaks
func (s *Server) GetStreaks(c *fiber.Ctx) error {
	streaks, err := s.streakService.ListStreaks(c.Context(), s.userID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(streaks)
}

// RecordStreak handles POST /api/routine-streaks
func (s *Server) RecordStreak(c *fiber.Ctx) error {
	streak, err := s.streakService.RecordCompletion(c.Context(), s.userID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(streak)
}

// GetLastStreak handles GET /api/routine-streaks/last
func (s *Server) GetLastStreak(c *fiber.Ctx) error {
	streak, err := s.streakService.GetLast(c.Context(), s.userID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(streak)
}

// GetStreak handles GET /api/routine-streaks/:id
func (s *Server) GetStreak(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	streak, svcErr := s.streakService.GetStreak(c.Context(), s.userID(c), id)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(streak)
}
