package domain

import (
	"time"

	"gorm.io/gorm"
)

// Membership tracks a member's gym subscription window.
// One membership per member (unique index on MemberID).
type Membership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MemberID  uint      `gorm:"uniqueIndex;not null" json:"memberId"`
	Member    *User     `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	StartDate time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate   time.Time `gorm:"type:date;not null" json:"endDate"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeSave deactivates the membership whenever the end date has already
// passed. Runs on every create and update, so an expired membership stays
// inactive until an update moves EndDate into the future.
func (m *Membership) BeforeSave(tx *gorm.DB) error {
	if m.EndDate.Before(Today()) {
		m.Active = false
	}
	return nil
}

// Today returns the current calendar date at midnight UTC.
func Today() time.Time {
	return DateOf(time.Now().UTC())
}

// DateOf truncates a timestamp to its calendar date (midnight UTC).
func DateOf(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
