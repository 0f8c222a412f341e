package server

import (
	"fitlog/internal/models"
	"fitlog/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// GetRoutines handles GET /api/routines
func (s *Server) GetRoutines(c *fiber.Ctx) error {
	opts := repository.RoutineListOptions{}

	if authorID := c.QueryInt("author_id", 0); authorID > 0 {
		id := uint(authorID)
		opts.AuthorID = &id
	}

	switch ordering := c.Query("ordering"); ordering {
	case "", "like_count", "-like_count":
		opts.Ordering = ordering
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ordering"))
	}

	routines, err := s.routineService.ListRoutines(c.Context(), opts)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(routines)
}

// GetRoutine handles GET /api/routines/:id
func (s *Server) GetRoutine(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	routine, mirror, svcErr := s.routineService.GetRoutine(c.Context(), id)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{
		"routine": routine,
		"content": mirror,
	})
}

// LikeRoutine handles POST /api/routines/:id/like
func (s *Server) LikeRoutine(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	likeCount, svcErr := s.routineService.Like(c.Context(), s.userID(c), id)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"like_count": likeCount})
}

// SubscribeRoutine handles POST /api/routines/:id/subscribe
func (s *Server) SubscribeRoutine(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	binding, svcErr := s.routineService.Subscribe(c.Context(), s.userID(c), id)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(binding)
}
