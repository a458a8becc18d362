package fakers

import (
	"log"
	"time"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserFaker monta um usuário de demonstração com senha "senha123".
func UserFaker(db *gorm.DB) *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("❌ Falha ao gerar hash de senha:", err)
	}

	return &models.User{
		ID:        uuid.New().String(),
		FullName:  faker.Name(),
		Email:     faker.Email(),
		Password:  string(hashed),
		Role:      models.RoleCustomer,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
