package models

// DaysPerWeek is the number of weekday slots in a schedule.
const DaysPerWeek = 7

// WeeklyRoutine assigns one of the user's routine bindings to a weekday slot.
// DayIndex runs 0=Monday through 6=Sunday.
type WeeklyRoutine struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"not null;uniqueIndex:idx_user_day" json:"user_id"`
	User           User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	UsersRoutineID uint         `gorm:"not null" json:"users_routine_id"`
	UsersRoutine   *UsersRoutine `gorm:"foreignKey:UsersRoutineID;constraint:OnDelete:CASCADE" json:"users_routine,omitempty"`
	DayIndex       uint         `gorm:"not null;uniqueIndex:idx_user_day" json:"day_index"`
}

// TableName specifies the table name for GORM.
func (WeeklyRoutine) TableName() string {
	return "weekly_routines"
}
