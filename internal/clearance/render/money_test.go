package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{950, "$950"},
		{1000, "$1,000"},
		{25_000_000, "$25,000,000"},
		{5_499_999.6, "$5,500,000"},
		{1_234_567_890, "$1,234,567,890"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount))
	}
}

func TestFormatCurrencyCents(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{950.5, "$950.50"},
		{25_000_000, "$25,000,000.00"},
		{1_234.567, "$1,234.57"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrencyCents(tt.amount))
	}
}
