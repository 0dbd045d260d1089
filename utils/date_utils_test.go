package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		shouldErr bool
	}{
		{name: "DD/MM/YYYY", input: "05/03/2024", want: "2024-03-05"},
		{name: "ISO", input: "2024-03-05", want: "2024-03-05"},
		{name: "DD/MM/YYYY wins over ambiguity", input: "01/02/2024", want: "2024-02-01"},
		{name: "surrounding spaces", input: "  2024-12-31 ", want: "2024-12-31"},
		{name: "empty", input: "", shouldErr: true},
		{name: "garbage", input: "next tuesday", shouldErr: true},
		{name: "US format rejected", input: "03-05-2024", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.shouldErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format(ISODate) != tt.want {
				t.Errorf("got %s, want %s", got.Format(ISODate), tt.want)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 3, 5, 17, 45, 12, 999, time.UTC)
	got := DateOnly(in)
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      float64
		shouldErr bool
	}{
		{name: "local notation", input: "$1.234,56", want: 1234.56},
		{name: "local without sign", input: "12.500,00", want: 12500},
		{name: "comma decimals only", input: "150,50", want: 150.5},
		{name: "plain float", input: "1234.56", want: 1234.56},
		{name: "plain int", input: "800", want: 800},
		{name: "empty is zero", input: "", want: 0},
		{name: "garbage", input: "mucho", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.shouldErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{1234.56, "$1.234,56"},
		{0, "$0,00"},
		{999, "$999,00"},
		{1000000.5, "$1.000.000,50"},
		{-1234.56, "-$1.234,56"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%v) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	for _, yes := range []string{"si", "Sí", "SI", "true", "1", "x", "s", "t", " si "} {
		if !ParseBool(yes) {
			t.Errorf("ParseBool(%q) = false, want true", yes)
		}
	}
	for _, no := range []string{"", "no", "0", "false", "nope"} {
		if ParseBool(no) {
			t.Errorf("ParseBool(%q) = true, want false", no)
		}
	}
}
