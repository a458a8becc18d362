package migrations

import (
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.ProductBenefit{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
		&models.Favorite{},
	)
}
