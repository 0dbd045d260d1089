package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const ISODate = "2006-01-02"

// dateLayouts in priority order: first matching format wins.
var dateLayouts = []string{"02/01/2006", ISODate}

// ParseDate accepts DD/MM/YYYY and YYYY-MM-DD textual dates and returns the
// day at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, errors.New("fecha vacía")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de fecha inválido: %s", value)
}

// DateOnly truncates a timestamp to its day at midnight UTC, the resolution
// all occupancy math works at.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// ParseMoney reads amounts in the local convention: "$1.234,56" — dollar
// sign optional, dots as thousands separators, comma as decimal separator.
// Plain float strings ("1234.56") parse too.
func ParseMoney(value string) (float64, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, "$", "")
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, "$", "")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("monto inválido: %s", value)
	}
	return f, nil
}

// FormatMoney renders an amount the way the front desk reads it:
// "$1.234,56" (dot thousands, comma decimals).
func FormatMoney(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "$" + strings.Join(groups, ".") + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}

// ParseBool reads the yes-markers the spreadsheets use for fields like
// "Celiacos".
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "si", "sí", "true", "1", "x", "s", "t":
		return true
	}
	return false
}
