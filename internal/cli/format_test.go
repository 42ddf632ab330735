package cli

import "testing"

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 5,00"},
		{1234.5, "R$ 1.234,50"},
		{34000, "R$ 34.000,00"},
		{32300, "R$ 32.300,00"},
		{1234567.89, "R$ 1.234.567,89"},
		{0.005, "R$ 0,01"},
		{999.999, "R$ 1.000,00"},
		{-1234.5, "-R$ 1.234,50"},
	}
	for _, tt := range tests {
		if got := FormatBRL(tt.value); got != tt.want {
			t.Errorf("FormatBRL(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(1); got != "1 mês" {
		t.Errorf("FormatMonths(1) = %q", got)
	}
	if got := FormatMonths(12); got != "12 meses" {
		t.Errorf("FormatMonths(12) = %q", got)
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(1); got != "1 dia" {
		t.Errorf("FormatDays(1) = %q", got)
	}
	if got := FormatDays(30); got != "30 dias" {
		t.Errorf("FormatDays(30) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(10); got != "10%" {
		t.Errorf("FormatPercent(10) = %q", got)
	}
}
