package cart

import (
	"strings"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/calc"
	"github.com/shopspring/decimal"
)

// Cupons promocionais fixos, percentual sobre o subtotal. A comparação
// ignora maiúsculas/minúsculas.
var couponPercents = map[string]decimal.Decimal{
	"BELEZA10": decimal.NewFromInt(10),
	"PRIMEIRA": decimal.NewFromInt(15),
}

// DiscountFor devolve o desconto para o código sobre o subtotal dado.
// Código desconhecido ou vazio vale zero.
func DiscountFor(code string, subtotal decimal.Decimal) decimal.Decimal {
	percent, ok := couponPercents[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return decimal.Zero
	}
	return calc.CalculateDiscount(subtotal, percent)
}
