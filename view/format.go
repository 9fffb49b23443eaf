package view

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a price with a decimal comma and at least two decimals:
// 10 → "10,00", 5.5 → "5,50", 3.999 → "3,999".
func FormatPrice(price decimal.Decimal) string {
	if !price.Equal(price.Round(2)) {
		return strings.Replace(price.String(), ".", ",", 1)
	}
	return strings.Replace(price.StringFixed(2), ".", ",", 1)
}

// FormatDate renders t the way the pt-BR locale does with day, month, year, hour and
// minute: "02/01/2006, 15:04".
func FormatDate(t time.Time) string {
	return t.Local().Format("02/01/2006, 15:04")
}
