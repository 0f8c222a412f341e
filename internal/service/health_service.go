package service

import (
	"context"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/repository"
)

// healthWindowDays is how far back the health-record listing reaches.
const healthWindowDays = 35

// HealthRecordService manages daily body-measurement entries.
type HealthRecordService struct {
	healthRepo repository.HealthRecordRepository
	now        func() time.Time
}

// NewHealthRecordService returns a new HealthRecordService.
func NewHealthRecordService(healthRepo repository.HealthRecordRepository, now func() time.Time) *HealthRecordService {
	if now == nil {
		now = time.Now
	}
	return &HealthRecordService{healthRepo: healthRepo, now: now}
}

// CreateHealthRecordInput is the input for recording today's measurements.
type CreateHealthRecordInput struct {
	UserID uint
	Age    uint
	Height float64
	Weight float64
}

// Create records today's measurements; one entry per calendar day.
func (s *HealthRecordService) Create(ctx context.Context, in CreateHealthRecordInput) (*models.HealthRecord, error) {
	if in.Height <= 0 {
		return nil, models.NewValidationError("Height must be positive")
	}
	if in.Weight <= 0 {
		return nil, models.NewValidationError("Weight must be positive")
	}

	today := dateOnly(s.now())
	exists, err := s.healthRepo.ExistsOn(ctx, in.UserID, today)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("Health record already exists for today")
	}

	record := &models.HealthRecord{
		UserID: in.UserID,
		Age:    in.Age,
		Height: in.Height,
		Weight: in.Weight,
		Date:   today,
	}
	if err := s.healthRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	record.ComputeBMI()
	return record, nil
}

// List returns the user's records from the trailing window, newest first.
func (s *HealthRecordService) List(ctx context.Context, userID uint) ([]models.HealthRecord, error) {
	since := dateOnly(s.now()).AddDate(0, 0, -healthWindowDays)
	records, err := s.healthRepo.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].ComputeBMI()
	}
	return records, nil
}

// Get returns one record belonging to the user.
func (s *HealthRecordService) Get(ctx context.Context, userID, id uint) (*models.HealthRecord, error) {
	record, err := s.healthRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	record.ComputeBMI()
	return record, nil
}

// GetLast returns the most recent record; not found when the user has none.
func (s *HealthRecordService) GetLast(ctx context.Context, userID uint) (*models.HealthRecord, error) {
	record, err := s.healthRepo.Last(ctx, userID)
	if err != nil {
		return nil, err
	}
	record.ComputeBMI()
	return record, nil
}
