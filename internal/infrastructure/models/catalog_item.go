package models

import (
	"time"

	"gorm.io/gorm"
)

// CatalogItem is the persisted marketplace catalog row. The on-chain item id
// doubles as the primary key.
type CatalogItem struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement:false"`
	Slug        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	ItemType    uint8  `gorm:"not null"`
	Category    string `gorm:"type:varchar(50);not null;index"`
	Rarity      string `gorm:"type:varchar(20);not null;default:'common'"`
	Price       uint64 `gorm:"not null"`
	ImageURL    string `gorm:"type:text"`
	Available   bool   `gorm:"default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
