package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	ID           string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID      string          `gorm:"size:36;not null;index" json:"order_id"`
	Order        Order           `gorm:"foreignKey:OrderID;references:ID"`
	ProductID    string          `gorm:"size:36;index" json:"product_id"`
	VariantID    string          `gorm:"size:36" json:"variant_id,omitempty"`
	ProductName  string          `gorm:"size:255;not null" json:"product_name"`
	ProductImage string          `gorm:"size:255" json:"product_image"`
	Qty          int             `gorm:"not null" json:"quantity"`
	Price        decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
