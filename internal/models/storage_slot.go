package models

import "time"

// StorageSlot holds one named JSON blob per owner.
type StorageSlot struct {
	OwnerID string `gorm:"primaryKey;size:64"`
	Key     string `gorm:"column:slot_key;primaryKey;size:64"`
	Value   string `gorm:"type:text;not null"`

	UpdatedAt time.Time
}
