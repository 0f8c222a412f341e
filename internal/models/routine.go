package models

import "time"

// Routine is the live, author-editable routine record. Subscribers never read
// it directly; they see an immutable MirroredRoutine snapshot instead, so the
// author can keep editing without disturbing anyone already subscribed.
type Routine struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  *uint     `gorm:"index" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	Title     string    `gorm:"size:50;not null" json:"title"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	LikeCount uint      `gorm:"not null;default:0" json:"like_count"`
	Likes     []RoutineLike `gorm:"foreignKey:RoutineID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Routine) TableName() string {
	return "routines"
}

// RoutineLike records that a user liked a routine.
// The combination of UserID and RoutineID must be unique.
type RoutineLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_routine_like" json:"user_id"`
	RoutineID uint      `gorm:"not null;uniqueIndex:idx_user_routine_like" json:"routine_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Routine   Routine   `gorm:"foreignKey:RoutineID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (RoutineLike) TableName() string {
	return "routine_likes"
}
