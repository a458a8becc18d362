package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is keyed by product only. Variants are never part of a favorite.
type Favorite struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string  `gorm:"size:36;not null;index:idx_user_product,unique"`
	ProductID string  `gorm:"size:36;not null;index:idx_user_product,unique"`
	Product   Product `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}
