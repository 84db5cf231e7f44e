package entity

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating     int       `gorm:"not null" json:"rating"`
	ReviewText string    `json:"review_text"`
	ReviewDate time.Time `json:"review_date"`
	IsHidden   bool      `gorm:"default:false" json:"is_hidden"`

	CustomerID uint     `gorm:"not null;index" json:"customer_id"`
	Customer   Customer `json:"-"`
	DesignID   uint     `gorm:"not null;index" json:"design_id"`
	Design     Design   `json:"-"`
}
