package services

import (
	"testing"
	"time"

	"hostal-backend/models"
)

func TestClassifyHousekeeping(t *testing.T) {
	rooms := []models.Room{
		room(1, "101", models.CategoryDouble),
		room(2, "102", models.CategoryTriple),
		room(3, "201", models.CategoryDouble),
		room(4, "202", models.CategoryQuadruple),
	}

	tests := []struct {
		name         string
		reservations []models.Reservation
		date         time.Time
		wantClean    []string
		wantTouch    []string
		wantDeep     []string
	}{
		{
			name: "long stay mid-way gets the deep clean",
			reservations: []models.Reservation{
				{ID: 1, RoomID: 1, CheckIn: day(2024, 3, 1), CheckOut: day(2024, 3, 10)},
			},
			date:     day(2024, 3, 5),
			wantDeep: []string{"101"},
		},
		{
			name: "penultimate night falls back to touch-up",
			reservations: []models.Reservation{
				{ID: 1, RoomID: 1, CheckIn: day(2024, 3, 1), CheckOut: day(2024, 3, 10)},
			},
			date:      day(2024, 3, 9),
			wantTouch: []string{"101"},
		},
		{
			name: "short stay never deep-cleans",
			reservations: []models.Reservation{
				{ID: 1, RoomID: 2, CheckIn: day(2024, 3, 4), CheckOut: day(2024, 3, 6)},
			},
			date:      day(2024, 3, 5),
			wantTouch: []string{"102"},
		},
		{
			name: "departure day goes to a_limpiar",
			reservations: []models.Reservation{
				{ID: 1, RoomID: 3, CheckIn: day(2024, 3, 1), CheckOut: day(2024, 3, 5)},
			},
			date:      day(2024, 3, 5),
			wantClean: []string{"201"},
		},
		{
			name: "back-to-back: new arrival wins over same-day departure",
			reservations: []models.Reservation{
				{ID: 1, RoomID: 1, CheckIn: day(2024, 3, 1), CheckOut: day(2024, 3, 5)},
				{ID: 2, RoomID: 1, CheckIn: day(2024, 3, 5), CheckOut: day(2024, 3, 8)},
			},
			date:      day(2024, 3, 5),
			wantTouch: []string{"101"},
		},
		{
			name:         "vacant rooms appear nowhere",
			reservations: nil,
			date:         day(2024, 3, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyHousekeeping(rooms, tt.reservations, tt.date)

			assertTaskNumbers(t, "a_limpiar", got.ToClean, tt.wantClean)
			assertTaskNumbers(t, "a_pasajero", got.TouchUp, tt.wantTouch)
			assertTaskNumbers(t, "a_limpiar_pasajero", got.DeepCleanTouchUp, tt.wantDeep)

			if got.Date != tt.date.Format("2006-01-02") {
				t.Errorf("fecha = %s, want %s", got.Date, tt.date.Format("2006-01-02"))
			}
		})
	}
}

func TestClassifyHousekeepingNightNumber(t *testing.T) {
	rooms := []models.Room{room(1, "101", models.CategoryDouble)}
	reservations := []models.Reservation{
		{ID: 1, RoomID: 1, CheckIn: day(2024, 3, 1), CheckOut: day(2024, 3, 10)},
	}

	got := ClassifyHousekeeping(rooms, reservations, day(2024, 3, 5))
	if len(got.DeepCleanTouchUp) != 1 {
		t.Fatalf("a_limpiar_pasajero = %d entries, want 1", len(got.DeepCleanTouchUp))
	}
	if n := got.DeepCleanTouchUp[0].NightNumber; n != 5 {
		t.Errorf("noches_estadia = %d, want 5", n)
	}

	got = ClassifyHousekeeping(rooms, reservations, day(2024, 3, 1))
	if len(got.TouchUp) != 1 {
		t.Fatalf("a_pasajero = %d entries, want 1", len(got.TouchUp))
	}
	if n := got.TouchUp[0].NightNumber; n != 1 {
		t.Errorf("noches_estadia on arrival day = %d, want 1", n)
	}
}

func TestClassifyHousekeepingEmptyListsNotNil(t *testing.T) {
	got := ClassifyHousekeeping(nil, nil, day(2024, 3, 5))
	if got.ToClean == nil || got.TouchUp == nil || got.DeepCleanTouchUp == nil {
		t.Error("lists must serialize as [] rather than null")
	}
}

func assertTaskNumbers(t *testing.T, list string, got []RoomTask, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s has %d entries, want %d", list, len(got), len(want))
		return
	}
	for i, w := range want {
		if got[i].Number != w {
			t.Errorf("%s[%d] = %s, want %s", list, i, got[i].Number, w)
		}
	}
}
