package services

import (
	"testing"
	"time"

	"hostal-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	// Existing stay: [Jan 12, Jan 14)
	bIn, bOut := day(2024, 1, 12), day(2024, 1, 14)

	tests := []struct {
		name string
		aIn  time.Time
		aOut time.Time
		want bool
	}{
		{name: "surrounding", aIn: day(2024, 1, 10), aOut: day(2024, 1, 15), want: true},
		{name: "identical", aIn: day(2024, 1, 12), aOut: day(2024, 1, 14), want: true},
		{name: "starts inside", aIn: day(2024, 1, 13), aOut: day(2024, 1, 20), want: true},
		{name: "ends inside", aIn: day(2024, 1, 10), aOut: day(2024, 1, 13), want: true},
		{name: "touching after is free", aIn: day(2024, 1, 14), aOut: day(2024, 1, 20), want: false},
		{name: "touching before is free", aIn: day(2024, 1, 5), aOut: day(2024, 1, 12), want: false},
		{name: "disjoint", aIn: day(2024, 1, 20), aOut: day(2024, 1, 25), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aIn, tt.aOut, bIn, bOut); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	existing := []models.Reservation{
		{ID: 7, RoomID: 1, CheckIn: day(2024, 1, 12), CheckOut: day(2024, 1, 14)},
		{ID: 3, RoomID: 1, CheckIn: day(2024, 1, 13), CheckOut: day(2024, 1, 16)},
		{ID: 9, RoomID: 1, CheckIn: day(2024, 2, 1), CheckOut: day(2024, 2, 5)},
	}

	t.Run("boundary touch is not a conflict", func(t *testing.T) {
		if got := FindConflict(existing, day(2024, 1, 16), day(2024, 1, 20), 0); got != nil {
			t.Errorf("expected nil, got reservation #%d", got.ID)
		}
	})

	t.Run("lowest id wins among multiple colliders", func(t *testing.T) {
		got := FindConflict(existing, day(2024, 1, 10), day(2024, 1, 15), 0)
		if got == nil {
			t.Fatal("expected a conflict")
		}
		if got.ID != 3 {
			t.Errorf("conflict id = %d, want 3", got.ID)
		}
	})

	t.Run("exclude id skips itself", func(t *testing.T) {
		got := FindConflict(existing, day(2024, 2, 1), day(2024, 2, 5), 9)
		if got != nil {
			t.Errorf("expected nil when excluding #9, got #%d", got.ID)
		}
	})

	t.Run("no reservations", func(t *testing.T) {
		if got := FindConflict(nil, day(2024, 1, 1), day(2024, 1, 5), 0); got != nil {
			t.Errorf("expected nil, got #%d", got.ID)
		}
	})
}
