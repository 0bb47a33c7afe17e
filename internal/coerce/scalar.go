// Package coerce holds the low-level value normalizers used by the
// record normalizer and the combiner. All functions fail soft: a value
// that cannot be coerced comes back stringified and unchanged, never as
// an error.
package coerce

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// IsNumeric reports whether the value converts to a floating-point
// number without error.
func IsNumeric(value any) bool {
	switch v := value.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil
	default:
		_, err := strconv.ParseFloat(fmt.Sprint(value), 64)
		return err == nil
	}
}

// FormatCurrency renders a monetary value in Italian locale ("€ 1.234,56").
// It accepts native numbers, plain float strings and Italian-formatted
// strings (thousands ".", decimal ","). Non-numeric input is returned
// stringified and unchanged.
func FormatCurrency(value any) string {
	d, ok := parseAmount(value)
	if !ok {
		return stringify(value)
	}
	return "€ " + formatItalian(d)
}

// FormatPercentage renders a numeric value with two decimal places and a
// trailing "%". Non-numeric input is returned stringified and unchanged.
func FormatPercentage(value any) string {
	d, ok := parseAmount(value)
	if !ok {
		return stringify(value)
	}
	return d.StringFixed(2) + "%"
}

// CleanPercentage strips everything except digits, ".", "," and "%",
// collapses repeated "%" and guarantees a single trailing "%".
// Idempotent: cleaning twice equals cleaning once.
func CleanPercentage(value any) string {
	s := stringify(value)

	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '%' {
			sb.WriteRune(r)
		}
	}
	out := sb.String()

	for strings.Contains(out, "%%") {
		out = strings.ReplaceAll(out, "%%", "%")
	}

	if !strings.HasSuffix(out, "%") {
		out += "%"
	}
	return out
}

// parseAmount converts heterogeneous numeric input to a decimal.
// Strings are tried as plain floats first, then as Italian-locale
// amounts. A bare "." string is therefore read as a decimal point, not a
// thousands separator.
func parseAmount(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		s := strings.TrimSpace(v)
		s = strings.TrimPrefix(s, "€")
		s = strings.TrimSpace(s)
		if s == "" {
			return decimal.Zero, false
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return d, true
		}
		// Italian locale: "1.234,56"
		it := strings.ReplaceAll(s, ".", "")
		it = strings.ReplaceAll(it, ",", ".")
		if d, err := decimal.NewFromString(it); err == nil {
			return d, true
		}
		return decimal.Zero, false
	case nil:
		return decimal.Zero, false
	default:
		if d, err := decimal.NewFromString(fmt.Sprint(value)); err == nil {
			return d, true
		}
		return decimal.Zero, false
	}
}

// formatItalian renders a decimal with "." thousands grouping and ","
// as the decimal separator, always two decimal places.
func formatItalian(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}

	out := sb.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
