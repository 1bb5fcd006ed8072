package utils

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Round2 arredonda para duas casas decimais
func Round2(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatThousands formata um valor inteiro com separador de milhar: 1234567 -> "1,234,567"
func FormatThousands(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// FormatEuros formata um montante sem casas decimais: "1,234,567 €"
func FormatEuros(v float64) string {
	return FormatThousands(v) + " €"
}

// FormatPrice formata um preço com duas casas: "42.50 €"
func FormatPrice(v float64) string {
	return fmt.Sprintf("%.2f €", v)
}

// FormatPercent formata uma porcentagem com duas casas: "42.50 %"
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f %%", v)
}
