package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount the way the dashboard shows it: "R$ 1.234,56".
// Digits come from the decimal itself, so large amounts stay exact.
func FormatBRL(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	prefix := "R$ "
	if rounded.IsNegative() {
		prefix = "-R$ "
	}

	whole, cents, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	return prefix + groupThousands(whole) + "," + cents
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func FormatBRLFloat(amount float64) string {
	return FormatBRL(decimal.NewFromFloat(amount))
}

// FormatPercent renders a rate such as 0.0085 as "0,85%".
func FormatPercent(rate float64) string {
	return brl.Sprintf("%.2f", rate*100) + "%"
}
