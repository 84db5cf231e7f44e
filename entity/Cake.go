package entity

import (
	"gorm.io/gorm"
)

type Cake struct {
	gorm.Model
	CakeName     string  `gorm:"not null" json:"cake_name"`
	Flavor       string  `json:"flavor"`
	Frosting     string  `json:"frosting"`
	Size         string  `json:"size"`
	BasePrice    float64 `gorm:"not null" json:"base_price"`
	Availability bool    `gorm:"default:true" json:"availability"`

	Designs []Design `json:"-"`
}
