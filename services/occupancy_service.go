package services

import (
	"math"
	"time"

	"hostal-backend/models"
	"hostal-backend/utils"

	"gorm.io/gorm"
)

// Breakfast forecast constants. The kitchen bakes 2.5 pastries per guest and
// buys by the dozen; values preserved exactly from the house rule.
const (
	PastriesPerGuest = 2.5
	PastriesPerDozen = 12
)

// DefaultAvailableDays is reported for a free room with no upcoming
// reservation.
const DefaultAvailableDays = 30

// PastryForecast estimates tomorrow morning's breakfast from today's
// headcount (assumes today's guests are still present tomorrow morning).
type PastryForecast struct {
	NextDay      string  `json:"fecha_siguiente"`
	TotalPeople  int     `json:"total_personas"`
	DozensNeeded float64 `json:"docenas_necesarias"`
	TotalPieces  float64 `json:"medialunas_totales"`
}

// OccupancyResult is the date-scoped headcount query: every reservation
// active on the date (all of them, not one per room — bookings spanning
// several physical rooms are independent) plus the breakfast forecast.
type OccupancyResult struct {
	Reservations []ReservationPayload `json:"reservas"`
	Pastries     PastryForecast       `json:"medialunas"`
	TotalPeople  int                  `json:"total_personas_actual"`
}

type Statistics struct {
	TotalReservations int     `json:"total_reservas"`
	TotalRooms        int     `json:"total_habitaciones"`
	OccupiedRooms     int     `json:"habitaciones_ocupadas"`
	AvailableRooms    int     `json:"habitaciones_disponibles"`
	TotalRevenue      float64 `json:"ingresos_totales"`
	CheckinsToday     int     `json:"reservas_hoy"`
	CheckoutsToday    int     `json:"checkouts_hoy"`
}

// RoomAvailability is a free room with the days until its next reservation.
type RoomAvailability struct {
	Number        string `json:"numero"`
	Type          string `json:"tipo"`
	DaysAvailable int    `json:"dias_disponibles"`
}

type RoomState struct {
	Number   string `json:"numero"`
	Type     string `json:"tipo"`
	Occupied bool   `json:"ocupada"`
}

type Dashboard struct {
	LatestReservations []ReservationPayload `json:"ultimas_reservas"`
	CheckinsToday      []ReservationPayload `json:"checkins_hoy"`
	CheckoutsToday     []ReservationPayload `json:"checkouts_hoy"`
	AvailableRooms     []RoomAvailability   `json:"habitaciones_disponibles"`
	RoomStates         []RoomState          `json:"estado_habitaciones"`
}

// OccupancyService answers the read-side aggregate queries: headcounts,
// statistics and the dashboard summary.
type OccupancyService struct {
	DB           *gorm.DB
	Reservations *ReservationService
}

func NewOccupancyService(db *gorm.DB, reservations *ReservationService) *OccupancyService {
	return &OccupancyService{DB: db, Reservations: reservations}
}

// Rounding is half-to-even, so exact halves (15 pastries / 1.25 dozens)
// match the kitchen's historical sheets.
func round1(x float64) float64 {
	return math.RoundToEven(x*10) / 10
}

// TotalPeople sums personas over a reservation set.
func TotalPeople(reservations []models.Reservation) int {
	total := 0
	for _, r := range reservations {
		total += r.People
	}
	return total
}

// ForecastPastries computes the next-day breakfast estimate for a headcount:
// dozens rounded to one decimal place, total pieces to the nearest whole.
func ForecastPastries(totalPeople int, date time.Time) PastryForecast {
	pieces := float64(totalPeople) * PastriesPerGuest
	return PastryForecast{
		NextDay:      utils.DateOnly(date).AddDate(0, 0, 1).Format(utils.ISODate),
		TotalPeople:  totalPeople,
		DozensNeeded: round1(pieces / PastriesPerDozen),
		TotalPieces:  math.RoundToEven(pieces),
	}
}

// OccupancyOn returns the reservations active on a date with the headcount
// and the pastry forecast for the following morning.
func (s *OccupancyService) OccupancyOn(date time.Time) (OccupancyResult, error) {
	active, err := s.Reservations.ActiveOn(date)
	if err != nil {
		return OccupancyResult{}, err
	}

	total := TotalPeople(active)
	return OccupancyResult{
		Reservations: SerializeReservations(active),
		Pastries:     ForecastPastries(total, date),
		TotalPeople:  total,
	}, nil
}

// Statistics computes the front-desk totals for today.
func (s *OccupancyService) Statistics(now time.Time) (Statistics, error) {
	today := utils.DateOnly(now)

	var stats Statistics

	var totalReservations, totalRooms int64
	if err := s.DB.Model(&models.Reservation{}).Count(&totalReservations).Error; err != nil {
		return stats, NewInternalError("failed to count reservations", err)
	}
	if err := s.DB.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return stats, NewInternalError("failed to count rooms", err)
	}

	var revenue float64
	if err := s.DB.Model(&models.Reservation{}).
		Select("COALESCE(SUM(monto_total), 0)").Scan(&revenue).Error; err != nil {
		return stats, NewInternalError("failed to sum revenue", err)
	}

	var checkins, checkouts int64
	if err := s.DB.Model(&models.Reservation{}).
		Where("fecha_ingreso = ?", today).Count(&checkins).Error; err != nil {
		return stats, NewInternalError("failed to count check-ins", err)
	}
	if err := s.DB.Model(&models.Reservation{}).
		Where("fecha_egreso = ?", today).Count(&checkouts).Error; err != nil {
		return stats, NewInternalError("failed to count check-outs", err)
	}

	var occupied int64
	if err := s.DB.Model(&models.Reservation{}).
		Where("fecha_ingreso <= ? AND fecha_egreso > ?", today, today).
		Distinct("nhabitacion_id").Count(&occupied).Error; err != nil {
		return stats, NewInternalError("failed to count occupied rooms", err)
	}

	stats.TotalReservations = int(totalReservations)
	stats.TotalRooms = int(totalRooms)
	stats.OccupiedRooms = int(occupied)
	stats.AvailableRooms = int(totalRooms - occupied)
	stats.TotalRevenue = revenue
	stats.CheckinsToday = int(checkins)
	stats.CheckoutsToday = int(checkouts)
	return stats, nil
}

// BuildAvailability lists the rooms free today with the days until their
// next reservation (DefaultAvailableDays when none upcoming). Pure.
func BuildAvailability(rooms []models.Room, reservations []models.Reservation, today time.Time) []RoomAvailability {
	today = utils.DateOnly(today)

	byRoom := make(map[uint][]models.Reservation)
	for _, r := range reservations {
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}

	out := []RoomAvailability{}
	for _, room := range rooms {
		occupied := false
		var next *models.Reservation
		for i := range byRoom[room.ID] {
			r := &byRoom[room.ID][i]
			if r.ActiveOn(today) {
				occupied = true
				break
			}
			if r.CheckIn.After(today) && (next == nil || r.CheckIn.Before(next.CheckIn)) {
				next = r
			}
		}
		if occupied {
			continue
		}

		days := DefaultAvailableDays
		if next != nil {
			days = int(utils.DateOnly(next.CheckIn).Sub(today).Hours() / 24)
		}
		out = append(out, RoomAvailability{Number: room.Number, Type: room.Category, DaysAvailable: days})
	}
	return out
}

// Dashboard assembles the home-screen summary for a date.
func (s *OccupancyService) Dashboard(date time.Time) (Dashboard, error) {
	date = utils.DateOnly(date)

	var latest []models.Reservation
	if err := s.DB.Preload("Room").Order("id DESC").Limit(5).Find(&latest).Error; err != nil {
		return Dashboard{}, NewInternalError("failed to load latest reservations", err)
	}

	checkins, err := s.Reservations.CheckinsOn(date)
	if err != nil {
		return Dashboard{}, err
	}
	checkouts, err := s.Reservations.CheckoutsOn(date)
	if err != nil {
		return Dashboard{}, err
	}

	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return Dashboard{}, NewInternalError("failed to load rooms", err)
	}

	var upcoming []models.Reservation
	if err := s.DB.Where("fecha_egreso > ?", date).Find(&upcoming).Error; err != nil {
		return Dashboard{}, NewInternalError("failed to load upcoming reservations", err)
	}

	occupiedToday := make(map[uint]bool)
	for _, r := range upcoming {
		if r.ActiveOn(date) {
			occupiedToday[r.RoomID] = true
		}
	}
	states := make([]RoomState, 0, len(rooms))
	for _, room := range rooms {
		states = append(states, RoomState{Number: room.Number, Type: room.Category, Occupied: occupiedToday[room.ID]})
	}

	return Dashboard{
		LatestReservations: SerializeReservations(latest),
		CheckinsToday:      SerializeReservations(checkins),
		CheckoutsToday:     SerializeReservations(checkouts),
		AvailableRooms:     BuildAvailability(rooms, upcoming, date),
		RoomStates:         states,
	}, nil
}
