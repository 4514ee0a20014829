package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseLooseNumber parses a numeric value that may arrive as a loosely
// formatted string (currency symbols, thousand separators). It returns the
// parsed value and whether a valid number was found; zero is a valid number.
func ParseLooseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}

// FormatCurrency renders an amount as a rounded dollar figure with thousand
// separators, e.g. 1234567.89 -> "$1,234,568".
func FormatCurrency(amount float64) string {
	rounded := int64(math.Round(amount))
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}
	s := strconv.FormatInt(rounded, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if negative {
		return fmt.Sprintf("-$%s", out)
	}
	return "$" + out
}
