package domain

import "time"

// DietPlan holds the daily macro targets a trainer prescribes for a member.
// TrainerID is always set server-side from the authenticated creator.
type DietPlan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TrainerID uint      `gorm:"index;not null" json:"trainerId"`
	Trainer   *User     `gorm:"foreignKey:TrainerID;constraint:OnDelete:CASCADE" json:"-"`
	MemberID  uint      `gorm:"index;not null" json:"memberId"`
	Member    *User     `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	Calories  uint      `gorm:"not null" json:"calories"`
	Protein   uint      `gorm:"not null" json:"protein"`
	Carbs     uint      `gorm:"not null" json:"carbs"`
	Fats      uint      `gorm:"not null" json:"fats"`
	CreatedAt time.Time `json:"createdAt"`
}
