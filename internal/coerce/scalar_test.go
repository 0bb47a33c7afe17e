package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric(12))
	assert.True(t, IsNumeric(12.5))
	assert.True(t, IsNumeric("42"))
	assert.True(t, IsNumeric(" 3.14 "))
	assert.False(t, IsNumeric("abc"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric(nil))
	assert.False(t, IsNumeric("1.234,56"))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"float", 1234.56, "€ 1.234,56"},
		{"int", 10000, "€ 10.000,00"},
		{"plain string", "2500", "€ 2.500,00"},
		{"italian string", "1.234,56", "€ 1.234,56"},
		{"italian millions", "1.234.567,89", "€ 1.234.567,89"},
		{"euro prefix", "€ 1.234,56", "€ 1.234,56"},
		{"comma decimal only", "12,5", "€ 12,50"},
		{"negative", -12.5, "€ -12,50"},
		{"zero", 0, "€ 0,00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.input))
		})
	}
}

func TestFormatCurrency_FailsSoft(t *testing.T) {
	// Non-numeric input comes back stringified, unchanged, no panic.
	assert.Equal(t, "dieci mila", FormatCurrency("dieci mila"))
	assert.Equal(t, "", FormatCurrency(nil))
	assert.Equal(t, "", FormatCurrency(""))
}

func TestFormatCurrency_ItalianRoundTrip(t *testing.T) {
	// Formatting an already Italian-formatted amount is stable.
	for _, s := range []string{"1.234,56", "10.000,00", "2.500,00", "0,01"} {
		assert.Equal(t, "€ "+s, FormatCurrency(s))
		assert.Equal(t, "€ "+s, FormatCurrency(FormatCurrency(s)))
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "30.00%", FormatPercentage(30))
	assert.Equal(t, "33.33%", FormatPercentage(33.33))
	assert.Equal(t, "50.00%", FormatPercentage("50"))
	assert.Equal(t, "cinquanta", FormatPercentage("cinquanta"))
}

func TestCleanPercentage(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{"30%", "30%"},
		{"30", "30%"},
		{"30%%", "30%"},
		{"30 %", "30%"},
		{"circa 30%", "30%"},
		{"33,33", "33,33%"},
		{"", "%"},
		{50, "50%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanPercentage(tt.input))
	}
}

func TestCleanPercentage_Idempotent(t *testing.T) {
	inputs := []any{"30%", "30", "30%%%", "%%", "abc12.5%def", "", "1.234,56%"}
	for _, in := range inputs {
		once := CleanPercentage(in)
		assert.Equal(t, once, CleanPercentage(once), "input %v", in)
	}
}
