package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mergington/activities/internal/models"
)

// InitSchema creates the activities, participants and activity_participant tables if missing.
// Safe to call on every start.
func InitSchema(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Activity{}, "Participants", &models.ActivityParticipant{}); err != nil {
		return fmt.Errorf("setup join table activities: %w", err)
	}
	if err := db.SetupJoinTable(&models.Participant{}, "Activities", &models.ActivityParticipant{}); err != nil {
		return fmt.Errorf("setup join table participants: %w", err)
	}
	if err := db.AutoMigrate(&models.Activity{}, &models.Participant{}, &models.ActivityParticipant{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
