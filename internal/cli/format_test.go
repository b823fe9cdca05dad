package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"12.5", "R$ 12,50"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.8", "R$ 1.234.567,80"},
		{"-500", "-R$ 500,00"},
		{"-12345.678", "-R$ 12.345,68"},
	}

	for _, tc := range cases {
		v, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := FormatBRL(v); got != tc.want {
			t.Errorf("FormatBRL(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSignedBRL(t *testing.T) {
	if got := FormatSignedBRL(decimal.NewFromInt(100)); got != "+R$ 100,00" {
		t.Errorf("positive = %q, want +R$ 100,00", got)
	}
	if got := FormatSignedBRL(decimal.NewFromInt(-100)); got != "-R$ 100,00" {
		t.Errorf("negative = %q, want -R$ 100,00", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{1234567, "1.234.567"},
		{-4500, "-4.500"},
	}

	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDates(t *testing.T) {
	day := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(day); got != "05/09/2026" {
		t.Errorf("FormatDate = %q, want 05/09/2026", got)
	}
	if got := FormatShortDate(day); got != "05/09" {
		t.Errorf("FormatShortDate = %q, want 05/09", got)
	}
	if got := FormatDayOfWeek(int(day.Weekday())); got != "Sáb" {
		t.Errorf("FormatDayOfWeek = %q, want Sáb", got)
	}
}
