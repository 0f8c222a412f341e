package models

import "time"

// RoutineStreak records that the user performed their scheduled routine on a
// given calendar day. At most one per user per day; immutable once created.
type RoutineStreak struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	UserID            uint             `gorm:"not null;uniqueIndex:idx_user_date" json:"user_id"`
	User              User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Date              time.Time        `gorm:"type:date;not null;uniqueIndex:idx_user_date" json:"date"`
	MirroredRoutineID *uint            `json:"mirrored_routine_id"`
	MirroredRoutine   *MirroredRoutine `gorm:"foreignKey:MirroredRoutineID;constraint:OnDelete:SET NULL" json:"mirrored_routine,omitempty"`
}

// TableName specifies the table name for GORM.
func (RoutineStreak) TableName() string {
	return "routine_streaks"
}

// WeekdayIndex converts a time to the schedule's day numbering (0=Monday).
func WeekdayIndex(t time.Time) uint {
	return uint((int(t.Weekday()) + 6) % 7)
}
