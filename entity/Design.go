package entity

import (
	"gorm.io/gorm"
)

type Design struct {
	gorm.Model
	CakeID          uint            `gorm:"not null;index" json:"cake_id"`
	Cake            Cake            `json:"-"`
	Theme           string          `json:"theme"`
	ColorPalette    string          `json:"color_palette"`
	TopperType      *string         `json:"topper_type,omitempty"`
	ComplexityLevel ComplexityLevel `gorm:"not null" json:"complexity_level"`
	ImageURL        string          `json:"image_url"`
	Featured        bool            `gorm:"default:false" json:"featured"`

	Reviews []Review `json:"-"`
}
