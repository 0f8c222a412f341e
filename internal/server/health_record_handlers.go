package server

import (
	"fitlog/internal/models"
	"fitlog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetHealthRecords handles GET /api/health-records
func (s *Server) GetHealthRecords(c *fiber.Ctx) error {
	records, err := s.healthService.List(c.Context(), s.userID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(records)
}

// CreateHealthRecord handles POST /api/health-records
func (s *Server) CreateHealthRecord(c *fiber.Ctx) error {
	var req struct {
		Age    uint    `json:"age"`
		Height float64 `json:"height"`
		Weight float64 `json:"weight"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	record, err := s.healthService.Create(c.Context(), service.CreateHealthRecordInput{
		UserID: s.userID(c),
		Age:    req.Age,
		Height: req.Height,
		Weight: req.Weight,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetLastHealthRecord handles GET /api/health-records/last
func (s *Server) GetLastHealthRecord(c *fiber.Ctx) error {
	record, err := s.healthService.GetLast(c.Context(), s.userID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(record)
}

// GetHealthRecord handles GET /api/health-records/:id
func (s *Server) GetHealthRecord(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	record, svcErr := s.healthService.Get(c.Context(), s.userID(c), id)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(record)
}
