package models

import (
	"math"
	"time"
)

// HealthRecord is a daily body-measurement entry. At most one per user per
// calendar day.
type HealthRecord struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"not null;uniqueIndex:idx_user_health_date" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Age    uint      `gorm:"not null" json:"age"`
	Height float64   `gorm:"not null" json:"height"`
	Weight float64   `gorm:"not null" json:"weight"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_health_date" json:"date"`
	// BMI is not persisted; computed before serialization.
	BMI float64 `gorm:"-" json:"bmi"`
}

// TableName specifies the table name for GORM.
func (HealthRecord) TableName() string {
	return "health_records"
}

// ComputeBMI fills the derived BMI field from height (cm) and weight (kg).
func (h *HealthRecord) ComputeBMI() {
	if h.Height <= 0 {
		h.BMI = 0
		return
	}
	m := h.Height / 100
	h.BMI = math.Round(h.Weight/(m*m)*100) / 100
}
