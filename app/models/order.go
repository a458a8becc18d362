package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderNumber string `gorm:"size:50;not null;uniqueIndex" json:"order_number"`
	UserID      string `gorm:"size:36;index;not null"`
	User        User   `gorm:"foreignKey:UserID"`

	OrderItems     []OrderItem
	Subtotal       decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(16,2);default:0.00"`
	CouponCode     string          `gorm:"size:50"`
	Total          decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Status         string          `gorm:"size:20;default:'processing';not null"`
	OrderDate      time.Time       `gorm:"not null"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
