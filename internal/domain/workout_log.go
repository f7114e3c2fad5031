package domain

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutLog records a completed session against a workout plan.
// MemberID is always set server-side from the authenticated creator.
type WorkoutLog struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	MemberID        uint         `gorm:"index;not null" json:"memberId"`
	Member          *User        `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	WorkoutPlanID   uint         `gorm:"index;not null" json:"workoutPlanId"`
	WorkoutPlan     *WorkoutPlan `gorm:"foreignKey:WorkoutPlanID;constraint:OnDelete:CASCADE" json:"-"`
	Date            time.Time    `gorm:"type:date;not null" json:"date"`
	DurationMinutes uint         `gorm:"not null" json:"durationMinutes"`
}

// BeforeCreate stamps the log with today's date.
func (l *WorkoutLog) BeforeCreate(tx *gorm.DB) error {
	l.Date = Today()
	return nil
}
