// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatBRL formats a monetary value in Brazilian reais.
// e.g., 1234.5 -> "R$ 1.234,50". Rounding to cents happens here, at
// display time only.
func FormatBRL(value float64) string {
	negative := value < 0
	cents := int64(math.Round(math.Abs(value) * 100))

	intPart := cents / 100
	fracPart := cents % 100

	s := strconv.FormatInt(intPart, 10)
	var grouped strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		grouped.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteString(s[i : i+3])
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), fracPart)
}

// FormatPercent formats a whole percentage, e.g. 10 -> "10%".
func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// FormatMonths formats a contract duration, e.g. 12 -> "12 meses".
func FormatMonths(months int) string {
	if months == 1 {
		return "1 mês"
	}
	return fmt.Sprintf("%d meses", months)
}

// FormatDays formats a delivery time, e.g. 30 -> "30 dias".
func FormatDays(days int) string {
	if days == 1 {
		return "1 dia"
	}
	return fmt.Sprintf("%d dias", days)
}
