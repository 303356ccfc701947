package stor

import (
	"errors"

	"github.com/hashicorp/go-uuid"
	"github.com/mergington/signupd/pkg/actdb/model"
	"gorm.io/gorm"
)

type GormActivityStor struct {
	db              *gorm.DB
	enforceCapacity bool
}

func NewGormActivityStor(db *gorm.DB, enforceCapacity bool) *GormActivityStor {
	return &GormActivityStor{db: db, enforceCapacity: enforceCapacity}
}

func (s *GormActivityStor) ListActivities() ([]model.Activity, error) {
	var activities []model.Activity

	err := s.db.Preload("Participants", func(db *gorm.DB) *gorm.DB {
		return db.Order("participants.id")
	}).Order("name").Find(&activities).Error
	if err != nil {
		return nil, err
	}

	return activities, nil
}

func (s *GormActivityStor) GetActivityByName(name string) (*model.Activity, error) {
	return getActivityByName(s.db, name)
}

func getActivityByName(db *gorm.DB, name string) (*model.Activity, error) {
	var activity model.Activity

	err := db.Preload("Participants", func(db *gorm.DB) *gorm.DB {
		return db.Order("participants.id")
	}).Where("name = ?", name).First(&activity).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrActivityNotFound
	case err != nil:
		return nil, err
	}

	return &activity, nil
}

func (s *GormActivityStor) Signup(activityName, email string) (*model.Activity, error) {
	var activity *model.Activity

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		var err error

		if activity, err = getActivityByName(tx, activityName); err != nil {
			return err
		}

		if activity.HasParticipant(email) {
			return ErrAlreadyRegistered
		}

		if s.enforceCapacity && len(activity.Participants) >= activity.MaxParticipants {
			return ErrActivityFull
		}

		participant := model.Participant{ActivityID: activity.ID, Email: email}
		if err = tx.Create(&participant).Error; err != nil {
			return err
		}

		activity.Participants = append(activity.Participants, participant)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *GormActivityStor) Unregister(activityName, email string) (*model.Activity, error) {
	var activity *model.Activity

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		var err error

		if activity, err = getActivityByName(tx, activityName); err != nil {
			return err
		}

		if !activity.HasParticipant(email) {
			return ErrNotRegistered
		}

		err = tx.Where("activity_id = ? and email = ?", activity.ID, email).
			Delete(&model.Participant{}).Error
		if err != nil {
			return err
		}

		remaining := activity.Participants[:0]
		for _, p := range activity.Participants {
			if p.Email != email {
				remaining = append(remaining, p)
			}
		}
		activity.Participants = remaining
		return nil
	})

	if err != nil {
		return nil, err
	}

	return activity, nil
}

// Reset drops everything in the registry and repopulates it from seed.
// It runs in a single transaction so readers never observe a partially
// seeded registry.
func (s *GormActivityStor) Reset(seed []model.Activity) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Participant{}).Error; err != nil {
			return err
		}

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Activity{}).Error; err != nil {
			return err
		}

		for _, activity := range seed {
			if err := createActivity(tx, activity); err != nil {
				return err
			}
		}

		return nil
	})
}

func createActivity(tx *gorm.DB, activity model.Activity) error {
	var err error

	participants := activity.Participants

	activity.ID = 0
	activity.Participants = nil
	if activity.UUID, err = uuid.GenerateUUID(); err != nil {
		return err
	}

	if err = tx.Create(&activity).Error; err != nil {
		return err
	}

	for _, p := range participants {
		participant := model.Participant{ActivityID: activity.ID, Email: p.Email}
		if err = tx.Create(&participant).Error; err != nil {
			return err
		}
	}

	return nil
}
