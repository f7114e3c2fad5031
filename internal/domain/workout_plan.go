package domain

import "time"

// WorkoutPlan is a training programme a trainer assigns to one member.
// TrainerID is always set server-side from the authenticated creator.
type WorkoutPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	TrainerID   uint      `gorm:"index;not null" json:"trainerId"`
	Trainer     *User     `gorm:"foreignKey:TrainerID;constraint:OnDelete:CASCADE" json:"-"`
	MemberID    uint      `gorm:"index;not null" json:"memberId"`
	Member      *User     `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
