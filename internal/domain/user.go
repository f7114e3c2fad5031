package domain

import (
	"time"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleMember  Role = "member"
)

// ParseRole validates a raw role string coming from a request payload.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleAdmin, RoleTrainer, RoleMember:
		return Role(raw), true
	}
	return "", false
}

// User represents an account in the system (admin, trainer or member).
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"` // Never expose this via JSON
	Role         Role      `gorm:"size:20;index;not null" json:"role"`
	IsStaff      bool      `json:"isStaff"`
	IsSuperuser  bool      `json:"isSuperuser"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Helper methods
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsMember() bool {
	return u.Role == RoleMember
}
