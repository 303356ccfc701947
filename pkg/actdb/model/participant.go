package model

import (
	"time"
)

// Participant is a single signup: one email on one activity's roster.
// The composite unique index is what enforces "an email appears at most
// once per activity" at the database level.
type Participant struct {
	ID         int       `json:"id"`
	ActivityID int       `json:"activity_id" gorm:"uniqueIndex:idx_activity_email"`
	Email      string    `json:"email" gorm:"uniqueIndex:idx_activity_email"`
	CreatedAt  time.Time `json:"created_at"`
}
