// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCurrency is used when a currency code is empty or unknown.
const DefaultCurrency = "USD"

var titleCaser = cases.Title(language.English)

// Title returns s in title case, with underscores read as spaces.
// e.g., "VERY_ACTIVE" -> "Very Active"
func Title(s string) string {
	return titleCaser.String(strings.ToLower(strings.ReplaceAll(s, "_", " ")))
}

// FormatMoney formats an amount in the given ISO 4217 currency.
// e.g., (1234.5, "USD") -> "$1,234.50"
func FormatMoney(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	cur := money.GetCurrency(strings.ToUpper(strings.TrimSpace(currency)))
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// FormatKcal formats an energy amount in whole kilocalories.
// e.g., 2450.4 -> "2,450 kcal"
func FormatKcal(kcal float64) string {
	return FormatNumber(int64(math.Round(kcal))) + " kcal"
}

// FormatGrams formats a mass with one decimal and a unit suffix.
func FormatGrams(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + unit
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
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
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 value as a whole percentage.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// FormatDelta formats consumed minus planned with an explicit sign.
func FormatDelta(consumed, planned float64) string {
	delta := consumed - planned
	if math.Abs(delta) < 0.05 {
		return "±0"
	}
	if delta > 0 {
		return "+" + strconv.FormatFloat(delta, 'f', 1, 64)
	}
	return strconv.FormatFloat(delta, 'f', 1, 64)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatServings formats a serving multiplier without trailing zeros.
// e.g., 1 -> "1", 1.5 -> "1.5", 0.333 -> "0.33"
func FormatServings(s float64) string {
	return strconv.FormatFloat(math.Round(s*100)/100, 'f', -1, 64)
}
