package model

import (
	"time"
)

// Activity is an extracurricular offering. Name is the lookup key used
// by the API; it is unique across the registry and case sensitive.
type Activity struct {
	ID              int           `json:"id"`
	UUID            string        `json:"uuid"`
	Name            string        `json:"name" gorm:"uniqueIndex"`
	Description     string        `json:"description"`
	Schedule        string        `json:"schedule"`
	MaxParticipants int           `json:"max_participants"`
	Participants    []Participant `json:"participants" gorm:"foreignKey:ActivityID;references:ID"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ParticipantEmails returns the roster as an ordered list of emails.
// It always returns a non-nil slice so rosters serialize as [] rather
// than null.
func (a *Activity) ParticipantEmails() []string {
	emails := make([]string, 0, len(a.Participants))
	for _, p := range a.Participants {
		emails = append(emails, p.Email)
	}

	return emails
}

// HasParticipant checks whether email is already on the roster.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p.Email == email {
			return true
		}
	}

	return false
}
