package models

// Activity is an extracurricular offering. Name is unique and never changes after seeding.
type Activity struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Name            string        `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Description     string        `gorm:"type:text;default:''" json:"description"`
	Schedule        string        `gorm:"size:200;default:''" json:"schedule"`
	MaxParticipants int           `gorm:"default:0" json:"max_participants"` // informational only
	Participants    []Participant `gorm:"many2many:activity_participant;" json:"-"`
}

// ActivityView is the serialized form returned by the API.
type ActivityView struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// View serializes the activity with participant emails in store order.
func (a *Activity) View() ActivityView {
	emails := make([]string, 0, len(a.Participants))
	for _, p := range a.Participants {
		emails = append(emails, p.Email)
	}
	return ActivityView{
		Name:            a.Name,
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    emails,
	}
}

// HasParticipant reports whether the preloaded roster contains email.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p.Email == email {
			return true
		}
	}
	return false
}
