package services

import (
	"testing"

	"hostal-backend/models"
)

func TestTotalPeople(t *testing.T) {
	reservations := []models.Reservation{
		{ID: 1, People: 3},
		{ID: 2, People: 5},
	}
	if got := TotalPeople(reservations); got != 8 {
		t.Errorf("TotalPeople = %d, want 8", got)
	}
	if got := TotalPeople(nil); got != 0 {
		t.Errorf("TotalPeople(nil) = %d, want 0", got)
	}
}

func TestForecastPastries(t *testing.T) {
	tests := []struct {
		people     int
		wantDozens float64
		wantPieces float64
	}{
		{people: 8, wantDozens: 1.7, wantPieces: 20},
		{people: 12, wantDozens: 2.5, wantPieces: 30},
		// Exact halves round to even: 2.5 pieces -> 2, 1.25 dozens -> 1.2,
		// 7.5 pieces -> 8.
		{people: 1, wantDozens: 0.2, wantPieces: 2},
		{people: 6, wantDozens: 1.2, wantPieces: 15},
		{people: 3, wantDozens: 0.6, wantPieces: 8},
		{people: 0, wantDozens: 0, wantPieces: 0},
	}

	for _, tt := range tests {
		got := ForecastPastries(tt.people, day(2024, 3, 5))
		if got.DozensNeeded != tt.wantDozens {
			t.Errorf("people %d: docenas_necesarias = %v, want %v", tt.people, got.DozensNeeded, tt.wantDozens)
		}
		if got.TotalPieces != tt.wantPieces {
			t.Errorf("people %d: medialunas_totales = %v, want %v", tt.people, got.TotalPieces, tt.wantPieces)
		}
		if got.TotalPeople != tt.people {
			t.Errorf("total_personas = %d, want %d", got.TotalPeople, tt.people)
		}
		if got.NextDay != "2024-03-06" {
			t.Errorf("fecha_siguiente = %s, want 2024-03-06", got.NextDay)
		}
	}
}

func TestBuildAvailability(t *testing.T) {
	rooms := []models.Room{
		room(1, "101", models.CategoryDouble),
		room(2, "102", models.CategoryTriple),
		room(3, "201", models.CategoryDouble),
	}
	today := day(2024, 3, 5)
	reservations := []models.Reservation{
		// 101 occupied today.
		{ID: 1, RoomID: 1, CheckIn: day(2024, 3, 4), CheckOut: day(2024, 3, 7)},
		// 102 free, next arrival in 4 days.
		{ID: 2, RoomID: 2, CheckIn: day(2024, 3, 9), CheckOut: day(2024, 3, 12)},
		// 201 free, no upcoming reservation.
	}

	got := BuildAvailability(rooms, reservations, today)

	if len(got) != 2 {
		t.Fatalf("available rooms = %d, want 2", len(got))
	}
	if got[0].Number != "102" || got[0].DaysAvailable != 4 {
		t.Errorf("first = %s/%d días, want 102/4", got[0].Number, got[0].DaysAvailable)
	}
	if got[1].Number != "201" || got[1].DaysAvailable != DefaultAvailableDays {
		t.Errorf("second = %s/%d días, want 201/%d", got[1].Number, got[1].DaysAvailable, DefaultAvailableDays)
	}
}

func TestBuildAvailabilityCheckoutDayIsFree(t *testing.T) {
	rooms := []models.Room{room(1, "101", models.CategoryDouble)}
	reservations := []models.Reservation{
		{ID: 1, RoomID: 1, CheckIn: day(2024, 3, 1), CheckOut: day(2024, 3, 5)},
	}

	got := BuildAvailability(rooms, reservations, day(2024, 3, 5))
	if len(got) != 1 {
		t.Fatalf("available rooms = %d, want 1 (checkout day frees the room)", len(got))
	}
	if got[0].DaysAvailable != DefaultAvailableDays {
		t.Errorf("dias_disponibles = %d, want %d", got[0].DaysAvailable, DefaultAvailableDays)
	}
}
