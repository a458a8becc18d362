package helpers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyCartID contextKey = "cartID"
	ContextKeyUser   contextKey = "userObject"
	CartCountKey     contextKey = "cart_count"
)

var Validate = validator.New()

// CheckoutForm são os dados pessoais e de entrega do fluxo de checkout.
// Pagamento não é processado: os campos de cartão são decorativos no
// frontend e nunca chegam ao servidor.
type CheckoutForm struct {
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"required,max=100"`
	Email     string `validate:"required,email"`
	CPF       string `validate:"required,len=14"`
	CEP       string `validate:"required,len=9"`
	Street    string `validate:"required,max=255"`
	Number    string `validate:"required,max=20"`
	City      string `validate:"required,max=100"`
	State     string `validate:"required,len=2"`
}

func ComparePassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func GetUserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(ContextKeyUserID).(string); ok {
		return userID
	}
	return ""
}

func GetCartIDFromContext(ctx context.Context) string {
	if cartID, ok := ctx.Value(ContextKeyCartID).(string); ok {
		return cartID
	}
	return ""
}
