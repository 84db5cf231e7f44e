package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	FullName string `json:"full_name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	City     string `json:"city"`
	Password string `json:"-"` // bcrypt hash

	Reviews []Review `json:"-"`
}
