package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            string           `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name          string           `gorm:"size:255;not null"`
	Slug          string           `gorm:"size:255;not null;uniqueIndex"`
	Brand         string           `gorm:"size:100;not null;index"`
	Description   string           `gorm:"type:text"`
	Price         decimal.Decimal  `gorm:"type:decimal(16,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(16,2)"`
	Rating        float64          `gorm:"type:decimal(3,1);default:0"`
	ReviewCount   int              `gorm:"default:0"`
	Benefits      []ProductBenefit
	IsNew         bool     `gorm:"default:false"`
	IsBestseller  bool     `gorm:"default:false"`
	CategoryID    string   `gorm:"size:36;index"`
	Category      Category `gorm:"foreignKey:CategoryID"`
	Variants      []ProductVariant
	ProductImages []ProductImage
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// HasVariants reports whether the product is sold in variants. Consumers
// branch on presence: a variant-bearing product has no standalone cart price.
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// FindVariant returns the variant with the given id, or nil.
func (p *Product) FindVariant(variantID string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

func (p *Product) MainImage() string {
	if len(p.ProductImages) == 0 {
		return ""
	}
	return p.ProductImages[0].Path
}

type ProductVariant struct {
	ID            string           `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID     string           `gorm:"size:36;index;not null"`
	Name          string           `gorm:"size:100;not null"`
	Price         decimal.Decimal  `gorm:"type:decimal(16,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(16,2)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ProductBenefit struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string `gorm:"size:36;index;not null"`
	Label     string `gorm:"size:255;not null"`
	Position  int    `gorm:"default:0"`
}

type ProductImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string `gorm:"size:36;index;not null"`
	Path      string `gorm:"size:255;not null"`
	Position  int    `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
