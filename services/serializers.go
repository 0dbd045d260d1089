package services

import (
	"hostal-backend/models"
	"hostal-backend/utils"
)

// RoomRef is the embedded room shape reservation payloads carry.
type RoomRef struct {
	ID     uint   `json:"id"`
	Number string `json:"numero"`
	Type   string `json:"tipo"`
	Floor  string `json:"piso"`
}

// ReservationPayload is the wire shape of a reservation: ISO dates plus the
// locally formatted money fields the front desk displays.
type ReservationPayload struct {
	ID          uint    `json:"id"`
	Room        RoomRef `json:"nhabitacion"`
	Manager     string  `json:"encargado"`
	FirstName   string  `json:"nombre"`
	LastName    string  `json:"apellido"`
	People      int     `json:"personas"`
	CheckIn     string  `json:"fecha_ingreso"`
	CheckOut    string  `json:"fecha_egreso"`
	Nights      int     `json:"noches"`
	PriceNight  float64 `json:"precio_por_noche"`
	TotalAmount float64 `json:"monto_total"`
	Deposit     float64 `json:"senia"`
	Balance     float64 `json:"resto"`
	RoomsCount  int     `json:"cantidad_habitaciones"`
	Phone       string  `json:"telefono"`
	GlutenFree  bool    `json:"celiacos"`
	Notes       string  `json:"observaciones"`
	Source      string  `json:"origen"`

	TotalFormatted      string `json:"monto_total_formatted"`
	DepositFormatted    string `json:"senia_formatted"`
	BalanceFormatted    string `json:"resto_formatted"`
	PriceNightFormatted string `json:"precio_por_noche_formatted"`
}

func NewRoomRef(room models.Room) RoomRef {
	return RoomRef{ID: room.ID, Number: room.Number, Type: room.Category, Floor: room.Floor}
}

func SerializeReservation(r models.Reservation) ReservationPayload {
	return ReservationPayload{
		ID:          r.ID,
		Room:        NewRoomRef(r.Room),
		Manager:     r.Manager,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		People:      r.People,
		CheckIn:     r.CheckIn.Format(utils.ISODate),
		CheckOut:    r.CheckOut.Format(utils.ISODate),
		Nights:      r.Nights,
		PriceNight:  r.PricePerNight,
		TotalAmount: r.TotalAmount,
		Deposit:     r.Deposit,
		Balance:     r.Balance,
		RoomsCount:  r.RoomsCount,
		Phone:       r.Phone,
		GlutenFree:  r.GlutenFree,
		Notes:       r.Notes,
		Source:      r.Source,

		TotalFormatted:      utils.FormatMoney(r.TotalAmount),
		DepositFormatted:    utils.FormatMoney(r.Deposit),
		BalanceFormatted:    utils.FormatMoney(r.Balance),
		PriceNightFormatted: utils.FormatMoney(r.PricePerNight),
	}
}

func SerializeReservations(rs []models.Reservation) []ReservationPayload {
	out := make([]ReservationPayload, 0, len(rs))
	for _, r := range rs {
		out = append(out, SerializeReservation(r))
	}
	return out
}
