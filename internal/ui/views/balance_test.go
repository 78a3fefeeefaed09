package views

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatFiat(t *testing.T) {
	tests := []struct {
		code  string
		value string
		want  string
	}{
		{"USD", "65000", "$65,000.00 (USD)"},
		{"USD", "1.794", "$1.79 (USD)"},
		{"ABC", "1234.6", "ABC 1,235"},
	}

	for _, tt := range tests {
		got := FormatFiat(tt.code, decimal.RequireFromString(tt.value))
		if got != tt.want {
			t.Errorf("FormatFiat(%s, %s)=%q want=%q", tt.code, tt.value, got, tt.want)
		}
	}
}
