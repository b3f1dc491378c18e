package models

import (
	"time"

	"github.com/jpconwi/communitycare/internal/domain"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Phone        string    `gorm:"size:20" json:"phone,omitempty"`
	Role         string    `gorm:"size:20;not null;default:'user';index" json:"role"` // user | admin
	CreatedAt    time.Time `json:"created_at"`

	Reports []Report `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool { return u.Role == domain.RoleAdmin }
