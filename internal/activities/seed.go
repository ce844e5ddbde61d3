package activities

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/pkg/database"
)

// SeedActivity describes one default activity and its initial roster.
type SeedActivity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// DefaultActivities is inserted into an empty store at startup.
var DefaultActivities = []SeedActivity{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
}

// SeedIfEmpty inserts DefaultActivities and their rosters when the activities table has no rows.
// It reports whether anything was inserted. Losing a race against another seeding process is not an error.
func SeedIfEmpty(ctx context.Context, db *gorm.DB, logger *zap.Logger) (bool, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	seeded := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Activity{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count activities: %w", err)
		}
		if count > 0 {
			return nil
		}
		for _, sa := range DefaultActivities {
			a := models.Activity{
				Name:            sa.Name,
				Description:     sa.Description,
				Schedule:        sa.Schedule,
				MaxParticipants: sa.MaxParticipants,
			}
			if err := tx.Create(&a).Error; err != nil {
				return fmt.Errorf("create activity %q: %w", sa.Name, err)
			}
			for _, email := range sa.Participants {
				p, err := findOrCreateParticipant(tx, email)
				if err != nil {
					return err
				}
				if _, err := link(tx, a.ID, p.ID); err != nil {
					return err
				}
			}
		}
		seeded = true
		return nil
	})
	if database.IsUniqueViolation(err) {
		logger.Info("activities seeded by another process")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if seeded {
		logger.Info("seeded default activities", zap.Int("count", len(DefaultActivities)))
	}
	return seeded, nil
}
