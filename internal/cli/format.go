// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatBRL formats a monetary value in Brazilian real notation.
// e.g., 1234567.8 -> "R$ 1.234.567,80", -500 -> "-R$ 500,00"
func FormatBRL(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	formatted := "R$ " + groupThousands(intPart) + "," + fracPart
	if v.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// FormatSignedBRL is FormatBRL with an explicit leading sign.
func FormatSignedBRL(v decimal.Decimal) string {
	if v.IsNegative() {
		return FormatBRL(v)
	}
	return "+" + FormatBRL(v)
}

// FormatNumber adds pt-BR thousands separators to an integer.
// e.g., 1234567 -> "1.234.567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte('.')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDate formats a day in pt-BR short notation (dd/mm/yyyy).
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatShortDate formats a day as dd/mm.
func FormatShortDate(t time.Time) string {
	return t.Format("02/01")
}

// FormatDayOfWeek returns a 3-letter pt-BR day abbreviation.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
