package seeders

import (
	"log"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/db/fakers"
	"gorm.io/gorm"
)

const demoUserCount = 3

// DBSeed carrega o catálogo e alguns usuários de demonstração.
func DBSeed(db *gorm.DB) error {
	if err := SeedCatalog(db); err != nil {
		return err
	}

	for i := 0; i < demoUserCount; i++ {
		user := fakers.UserFaker(db)
		if err := db.FirstOrCreate(user, "email = ?", user.Email).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Seed concluído")
	return nil
}
