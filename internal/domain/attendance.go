package domain

import (
	"time"

	"gorm.io/gorm"
)

// Attendance is a member's daily check-in.
// The composite unique index on (MemberID, CheckInDay) makes the
// one-check-in-per-day rule hold even when two requests race past the
// application-level existence check.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MemberID   uint      `gorm:"uniqueIndex:idx_attendance_member_day;not null" json:"memberId"`
	Member     *User     `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	CheckIn    time.Time `gorm:"index;not null" json:"checkIn"`
	CheckInDay time.Time `gorm:"type:date;uniqueIndex:idx_attendance_member_day;not null" json:"-"`
}

// BeforeCreate stamps the check-in time and its calendar day.
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.CheckIn.IsZero() {
		a.CheckIn = time.Now().UTC()
	}
	a.CheckInDay = DateOf(a.CheckIn)
	return nil
}
