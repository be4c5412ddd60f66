package models

import "time"

type Review struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	ShopID  int      `gorm:"index;not null" json:"shop_id"`
	OwnerID string   `gorm:"size:64;index;not null" json:"owner_id"`
	Author  string   `gorm:"size:100" json:"author"`
	Rating  int      `gorm:"not null" json:"rating"`
	Comment string   `gorm:"type:text" json:"comment"`
	Photos  []string `gorm:"serializer:json;type:text" json:"photos"`

	CreatedAt time.Time `json:"created_at"`
}
