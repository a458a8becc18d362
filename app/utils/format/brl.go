package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// Formato brasileiro: R$ 1.234,56
var brl = accounting.Accounting{Symbol: "R$ ", Precision: 2, Thousand: ".", Decimal: ","}

func FormatBRL(amount decimal.Decimal) string {
	return brl.FormatMoneyDecimal(amount)
}
