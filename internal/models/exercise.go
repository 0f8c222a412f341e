package models

import "time"

// FocusArea is a body-area tag attached to catalog exercises.
type FocusArea struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:20;not null;uniqueIndex" json:"name"`
}

// TableName specifies the table name for GORM.
func (FocusArea) TableName() string {
	return "focus_areas"
}

// FocusAreaNames is the fixed catalog of focus-area tags seeded at startup.
var FocusAreaNames = []string{
	"aerobic",
	"chest",
	"back",
	"shoulder",
	"arm",
	"lower body",
	"core",
}

// Exercise is an admin-curated catalog entry. The Needs* flags declare which
// performance metrics apply when the exercise is placed inside a routine;
// metrics that do not apply are stored as zero on the routine entry.
type Exercise struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	AuthorID      uint        `gorm:"not null;index" json:"author_id"`
	Author        User        `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Title         string      `gorm:"size:100;not null" json:"title"`
	Description   string      `gorm:"type:text" json:"description"`
	VideoURL      string      `gorm:"size:200" json:"video_url"`
	NeedsSet      bool        `gorm:"default:false" json:"needs_set"`
	NeedsRep      bool        `gorm:"default:false" json:"needs_rep"`
	NeedsWeight   bool        `gorm:"default:false" json:"needs_weight"`
	NeedsDuration bool        `gorm:"default:false" json:"needs_duration"`
	NeedsSpeed    bool        `gorm:"default:false" json:"needs_speed"`
	FocusAreas    []FocusArea `gorm:"many2many:exercise_focus_areas" json:"focus_areas"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
