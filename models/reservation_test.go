package models

import (
	"math"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecalculate(t *testing.T) {
	r := Reservation{
		CheckIn:     day(2024, 3, 1),
		CheckOut:    day(2024, 3, 4),
		TotalAmount: 900,
		Deposit:     250,
	}
	r.Recalculate()

	if r.Nights != 3 {
		t.Errorf("Nights = %d, want 3", r.Nights)
	}
	if r.PricePerNight != 300 {
		t.Errorf("PricePerNight = %v, want 300", r.PricePerNight)
	}
	if r.Balance != 650 {
		t.Errorf("Balance = %v, want 650", r.Balance)
	}

	// Round trip: rate * nights recovers the total.
	if diff := math.Abs(r.PricePerNight*float64(r.Nights) - r.TotalAmount); diff > 1e-9 {
		t.Errorf("rate*nights differs from total by %v", diff)
	}
}

func TestRecalculateZeroNights(t *testing.T) {
	// Invalid state (same-day in/out) must not divide by zero.
	r := Reservation{
		CheckIn:     day(2024, 3, 1),
		CheckOut:    day(2024, 3, 1),
		TotalAmount: 500,
		Deposit:     100,
	}
	r.Recalculate()

	if r.Nights != 0 {
		t.Errorf("Nights = %d, want 0", r.Nights)
	}
	if r.PricePerNight != 0 {
		t.Errorf("PricePerNight = %v, want 0", r.PricePerNight)
	}
	if r.Balance != 400 {
		t.Errorf("Balance = %v, want 400", r.Balance)
	}
}

func TestActiveOnHalfOpen(t *testing.T) {
	r := Reservation{CheckIn: day(2024, 3, 1), CheckOut: day(2024, 3, 4)}

	tests := []struct {
		day  time.Time
		want bool
	}{
		{day(2024, 2, 29), false},
		{day(2024, 3, 1), true},
		{day(2024, 3, 3), true},
		{day(2024, 3, 4), false}, // checkout day is free
	}
	for _, tt := range tests {
		if got := r.ActiveOn(tt.day); got != tt.want {
			t.Errorf("ActiveOn(%s) = %v, want %v", tt.day.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestCategoryRank(t *testing.T) {
	tests := []struct {
		category string
		want     int
	}{
		{CategoryDouble, 1},
		{CategoryTriple, 2},
		{CategoryQuadruple, 3},
		{CategoryQuintuple, 4},
		{"suite", 5},
		{"", 5},
	}
	for _, tt := range tests {
		room := Room{Category: tt.category}
		if got := room.CategoryRank(); got != tt.want {
			t.Errorf("CategoryRank(%q) = %d, want %d", tt.category, got, tt.want)
		}
	}
}
