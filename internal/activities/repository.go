// Package activities implements the activity signup model and its HTTP handlers.
package activities

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mergington/activities/internal/models"
)

var (
	// ErrActivityNotFound is returned when no activity has the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the participant is already on the roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrNotSignedUp is returned when unregistering a participant who is not on the roster.
	ErrNotSignedUp = errors.New("student is not signed up for this activity")
)

// Repository handles activity and participant persistence.
// Every mutating call runs in its own transaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates an activities repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all activities with their participants, rosters ordered by participant id.
func (r *Repository) List(ctx context.Context) ([]models.Activity, error) {
	var list []models.Activity
	err := r.db.WithContext(ctx).
		Preload("Participants", orderByID).
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return list, nil
}

// FindActivityByName returns the activity with its roster, or nil if it does not exist.
func (r *Repository) FindActivityByName(ctx context.Context, name string) (*models.Activity, error) {
	return findActivity(r.db.WithContext(ctx), name)
}

// FindParticipantByEmail returns the participant, or nil if none was ever created.
func (r *Repository) FindParticipantByEmail(ctx context.Context, email string) (*models.Participant, error) {
	return findParticipant(r.db.WithContext(ctx), email)
}

// Signup adds email to the named activity, creating the participant on first use.
func (r *Repository) Signup(ctx context.Context, activityName, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		activity, err := findActivity(tx, activityName)
		if err != nil {
			return err
		}
		if activity == nil {
			return ErrActivityNotFound
		}

		participant, err := findParticipant(tx, email)
		if err != nil {
			return err
		}
		if participant == nil {
			participant, err = findOrCreateParticipant(tx, email)
			if err != nil {
				return err
			}
		} else if activity.HasParticipant(email) {
			return ErrAlreadySignedUp
		}

		added, err := link(tx, activity.ID, participant.ID)
		if err != nil {
			return err
		}
		if !added {
			// a concurrent signup for the same pair committed first
			return ErrAlreadySignedUp
		}
		return nil
	})
}

// Unregister removes email from the named activity. The participant row is kept.
func (r *Repository) Unregister(ctx context.Context, activityName, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		activity, err := findActivity(tx, activityName)
		if err != nil {
			return err
		}
		if activity == nil {
			return ErrActivityNotFound
		}

		participant, err := findParticipant(tx, email)
		if err != nil {
			return err
		}
		if participant == nil || !activity.HasParticipant(email) {
			return ErrNotSignedUp
		}

		res := tx.Where("activity_id = ? AND participant_id = ?", activity.ID, participant.ID).
			Delete(&models.ActivityParticipant{})
		if res.Error != nil {
			return fmt.Errorf("delete membership: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotSignedUp
		}
		return nil
	})
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("participants.id")
}

func findActivity(db *gorm.DB, name string) (*models.Activity, error) {
	var a models.Activity
	err := db.Preload("Participants", orderByID).Where("name = ?", name).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find activity %q: %w", name, err)
	}
	return &a, nil
}

func findParticipant(db *gorm.DB, email string) (*models.Participant, error) {
	var p models.Participant
	err := db.Where("email = ?", email).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find participant: %w", err)
	}
	return &p, nil
}

// findOrCreateParticipant inserts the email unless it exists and returns the stored row.
// The unique index on email decides between concurrent creators.
func findOrCreateParticipant(tx *gorm.DB, email string) (*models.Participant, error) {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&models.Participant{Email: email}).Error
	if err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}
	p, err := findParticipant(tx, email)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("create participant: row for %q missing after insert", email)
	}
	return p, nil
}

// link inserts the membership row and reports whether it was new.
func link(tx *gorm.DB, activityID, participantID uint) (bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.ActivityParticipant{
		ActivityID:    activityID,
		ParticipantID: participantID,
	})
	if res.Error != nil {
		return false, fmt.Errorf("create membership: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
