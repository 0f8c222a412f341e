package models

// MirroredRoutine is an immutable content snapshot of a routine. A new mirror
// is cut every time the author edits the exercise list; existing subscribers
// keep pointing at the old one. AuthorName is denormalized so the snapshot
// survives author renames and account deletion.
//
// OriginalRoutineID references the live routine only while this mirror is the
// routine's current snapshot; it is cleared when the routine is re-mirrored or
// deleted. A mirror is removed only when its last subscriber binding detaches.
type MirroredRoutine struct {
	ID                uint               `gorm:"primaryKey" json:"id"`
	Title             string             `gorm:"size:50;not null" json:"title"`
	AuthorName        string             `gorm:"size:50;not null" json:"author_name"`
	OriginalRoutineID *uint              `gorm:"uniqueIndex" json:"original_routine_id"`
	OriginalRoutine   *Routine           `gorm:"foreignKey:OriginalRoutineID;constraint:OnDelete:SET NULL" json:"-"`
	Entries           []ExerciseInRoutine `gorm:"foreignKey:MirroredRoutineID" json:"entries,omitempty"`
}

// TableName specifies the table name for GORM.
func (MirroredRoutine) TableName() string {
	return "mirrored_routines"
}

// ExerciseInRoutine is one ordered exercise slot owned by a mirror. While the
// owning mirror is current, RoutineID also points at the live routine; the
// reference is cleared (never deleted) on re-mirror so historical entries
// survive routine edits and deletion.
type ExerciseInRoutine struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	RoutineID         *uint            `gorm:"uniqueIndex:idx_routine_order" json:"routine_id"`
	Routine           *Routine         `gorm:"foreignKey:RoutineID;constraint:OnDelete:SET NULL" json:"-"`
	MirroredRoutineID uint             `gorm:"not null;uniqueIndex:idx_mirror_order" json:"mirrored_routine_id"`
	MirroredRoutine   *MirroredRoutine `gorm:"foreignKey:MirroredRoutineID;constraint:OnDelete:CASCADE" json:"-"`
	ExerciseID        uint             `gorm:"not null" json:"exercise_id"`
	Exercise          *Exercise        `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"exercise,omitempty"`
	Order             uint             `gorm:"not null;uniqueIndex:idx_routine_order;uniqueIndex:idx_mirror_order" json:"order"`
	Setting           *ExerciseSetting `gorm:"foreignKey:ExerciseInRoutineID" json:"setting,omitempty"`
}

// TableName specifies the table name for GORM.
func (ExerciseInRoutine) TableName() string {
	return "exercises_in_routine"
}

// ExerciseSetting holds the performance attributes for one routine entry.
// Fields whose Needs* flag is false on the referenced exercise are stored as
// zero.
type ExerciseSetting struct {
	ID                  uint    `gorm:"primaryKey" json:"-"`
	ExerciseInRoutineID uint    `gorm:"not null;uniqueIndex" json:"-"`
	SetCount            uint    `gorm:"not null;default:0" json:"set_count"`
	RepCount            uint    `gorm:"not null;default:0" json:"rep_count"`
	Weight              float64 `gorm:"not null;default:0" json:"weight"`
	Duration            uint    `gorm:"not null;default:0" json:"duration"`
	Speed               float64 `gorm:"not null;default:0" json:"speed"`
}

// TableName specifies the table name for GORM.
func (ExerciseSetting) TableName() string {
	return "exercise_settings"
}
