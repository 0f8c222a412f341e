package models

// UsersRoutine is a user's personal pointer into the routine system, created
// either by authoring a routine or by subscribing to someone else's.
//
// The mirror reference is always present and is what the user actually sees.
// The live routine reference exists only while the routine itself does;
// author bindings keep it so edits can be traced back, subscriber bindings
// keep it so duplicate subscriptions can be rejected.
//
// NeedUpdate marks a subscriber binding whose mirror is stale relative to the
// author's latest edit. The binding is never repointed automatically; the
// subscriber keeps the old content until they act.
type UsersRoutine struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	UserID            uint             `gorm:"not null;index;uniqueIndex:idx_user_live;uniqueIndex:idx_user_mirror" json:"user_id"`
	User              User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	IsAuthor          bool             `gorm:"not null;default:false" json:"is_author"`
	RoutineID         *uint            `gorm:"uniqueIndex:idx_user_live" json:"routine_id"`
	Routine           *Routine         `gorm:"foreignKey:RoutineID;constraint:OnDelete:SET NULL" json:"routine,omitempty"`
	MirroredRoutineID uint             `gorm:"not null;uniqueIndex:idx_user_mirror" json:"mirrored_routine_id"`
	MirroredRoutine   *MirroredRoutine `gorm:"foreignKey:MirroredRoutineID;constraint:OnDelete:CASCADE" json:"mirrored_routine,omitempty"`
	NeedUpdate        bool             `gorm:"not null;default:false" json:"need_update"`
}

// TableName specifies the table name for GORM.
func (UsersRoutine) TableName() string {
	return "users_routines"
}

// Binding is the resolved role of a UsersRoutine: either the author's binding,
// which still tracks the live routine, or a subscriber's binding, which only
// holds a mirror. Call UsersRoutine.Binding to obtain it instead of probing
// nullable fields at call sites.
type Binding interface {
	Mirror() *MirroredRoutine
}

// AuthorBinding is the binding of the routine's author while the live routine
// still exists.
type AuthorBinding struct {
	Live          *Routine
	CurrentMirror *MirroredRoutine
}

// Mirror returns the mirror the author's binding points at.
func (b AuthorBinding) Mirror() *MirroredRoutine { return b.CurrentMirror }

// SubscriberBinding is the binding of a subscriber, or of an author whose live
// routine has been deleted. Only the mirror remains.
type SubscriberBinding struct {
	Snapshot *MirroredRoutine
}

// Mirror returns the mirror snapshot the subscriber sees.
func (b SubscriberBinding) Mirror() *MirroredRoutine { return b.Snapshot }

// Binding resolves the tagged role of this row. Requires Routine and
// MirroredRoutine associations to be preloaded.
func (ur *UsersRoutine) Binding() Binding {
	if ur.IsAuthor && ur.Routine != nil {
		return AuthorBinding{Live: ur.Routine, CurrentMirror: ur.MirroredRoutine}
	}
	return SubscriberBinding{Snapshot: ur.MirroredRoutine}
}
