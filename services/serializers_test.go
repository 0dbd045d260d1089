package services

import (
	"encoding/json"
	"reflect"
	"testing"

	"hostal-backend/models"
)

func TestRoomRefPayloadKeys(t *testing.T) {
	ref := NewRoomRef(models.Room{ID: 3, Number: "201", Category: models.CategoryTriple, Floor: "1"})

	raw, err := json.Marshal(ref)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]interface{}{
		"id":     float64(3),
		"numero": "201",
		"tipo":   "triple",
		"piso":   "1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("room payload = %v, want exactly %v", got, want)
	}
}

func TestSerializeReservationFormatsMoney(t *testing.T) {
	r := models.Reservation{
		ID:          1,
		FirstName:   "Maria",
		CheckIn:     day(2024, 3, 1),
		CheckOut:    day(2024, 3, 4),
		TotalAmount: 30000,
		Deposit:     10000,
	}
	r.Recalculate()

	payload := SerializeReservation(r)
	if payload.CheckIn != "2024-03-01" || payload.CheckOut != "2024-03-04" {
		t.Errorf("dates = %s / %s", payload.CheckIn, payload.CheckOut)
	}
	if payload.TotalFormatted != "$30.000,00" {
		t.Errorf("monto_total_formatted = %q, want $30.000,00", payload.TotalFormatted)
	}
	if payload.BalanceFormatted != "$20.000,00" {
		t.Errorf("resto_formatted = %q, want $20.000,00", payload.BalanceFormatted)
	}
}
