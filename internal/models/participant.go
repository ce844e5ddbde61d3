package models

import "time"

// Participant is a student identified by email. Rows are created on first signup and never deleted.
type Participant struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Email      string     `gorm:"size:200;not null;uniqueIndex" json:"email"`
	CreatedAt  time.Time  `json:"created_at"`
	Activities []Activity `gorm:"many2many:activity_participant;" json:"-"`
}

// ActivityParticipant is the membership row linking one participant to one activity.
type ActivityParticipant struct {
	ActivityID    uint `gorm:"primaryKey;autoIncrement:false"`
	ParticipantID uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName pins the join table name.
func (ActivityParticipant) TableName() string {
	return "activity_participant"
}
