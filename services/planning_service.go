package services

import (
	"sort"
	"time"

	"hostal-backend/models"
	"hostal-backend/utils"

	"gorm.io/gorm"
)

// DefaultPlanningDays is the planner window when the caller gives none.
const DefaultPlanningDays = 60

// DayCell is one room/day square of the occupancy grid. The reservation's
// dates are echoed on every occupied cell so the client can merge adjacent
// cells into one visual bar without recomputing dates.
type DayCell struct {
	IsOccupied  bool    `json:"is_occupied"`
	IsLastNight bool    `json:"is_last_night"`
	GuestName   *string `json:"nombre"`
	ReservaID   *uint   `json:"reserva_id"`
	CheckIn     *string `json:"fecha_ingreso"`
	CheckOut    *string `json:"fecha_egreso"`
}

type PlanningRow struct {
	Room  RoomRef   `json:"habitacion"`
	Cells []DayCell `json:"ocupaciones"`
}

type PlanningResult struct {
	Planning []PlanningRow `json:"planning"`
	Days     []string      `json:"days"`
	FirstDay string        `json:"first_day"`
}

// PlanningService assembles the day-by-day occupancy grid.
type PlanningService struct {
	DB *gorm.DB
}

func NewPlanningService(db *gorm.DB) *PlanningService {
	return &PlanningService{DB: db}
}

// BuildPlanning computes the occupancy grid for the given rooms over
// [firstDay, firstDay+dayCount). Pure: it only reads its arguments.
//
// Rooms are ordered by category rank (doble, triple, cuadruple, quintuple,
// then everything else), ties keeping their original order. A guest's name
// appears only on the check-in cell of the stay; later occupied cells carry
// nil so the renderer draws one labelled bar. If stored reservations overlap
// (validation bypassed upstream), the lowest id occupies the cell.
func BuildPlanning(rooms []models.Room, reservations []models.Reservation, firstDay time.Time, dayCount int) PlanningResult {
	if dayCount <= 0 {
		dayCount = DefaultPlanningDays
	}
	firstDay = utils.DateOnly(firstDay)

	days := make([]time.Time, dayCount)
	dayStrings := make([]string, dayCount)
	for i := 0; i < dayCount; i++ {
		days[i] = firstDay.AddDate(0, 0, i)
		dayStrings[i] = days[i].Format(utils.ISODate)
	}

	sorted := make([]models.Room, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CategoryRank() < sorted[j].CategoryRank()
	})

	// Reservations per room, ascending id, so the first active match per
	// day is the deterministic winner.
	byRoom := make(map[uint][]models.Reservation)
	for _, r := range reservations {
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}
	for id := range byRoom {
		rs := byRoom[id]
		sort.Slice(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
		byRoom[id] = rs
	}

	planning := make([]PlanningRow, 0, len(sorted))
	for _, room := range sorted {
		roomReservations := byRoom[room.ID]
		nameShown := make(map[uint]bool)

		cells := make([]DayCell, 0, dayCount)
		for _, day := range days {
			cell := DayCell{}
			for i := range roomReservations {
				r := &roomReservations[i]
				if !r.ActiveOn(day) {
					continue
				}
				checkIn := r.CheckIn.Format(utils.ISODate)
				checkOut := r.CheckOut.Format(utils.ISODate)
				cell = DayCell{
					IsOccupied:  true,
					IsLastNight: utils.SameDay(day, r.CheckOut.AddDate(0, 0, -1)),
					ReservaID:   &r.ID,
					CheckIn:     &checkIn,
					CheckOut:    &checkOut,
				}
				if utils.SameDay(day, r.CheckIn) && !nameShown[r.ID] {
					nameShown[r.ID] = true
					name := r.GuestName()
					cell.GuestName = &name
				}
				break
			}
			cells = append(cells, cell)
		}

		planning = append(planning, PlanningRow{Room: NewRoomRef(room), Cells: cells})
	}

	return PlanningResult{Planning: planning, Days: dayStrings, FirstDay: firstDay.Format(utils.ISODate)}
}

// DefaultPlanningStart is the first day of the current month.
func DefaultPlanningStart(now time.Time) time.Time {
	d := utils.DateOnly(now)
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Planning loads rooms plus the reservations touching the window and builds
// the grid.
func (s *PlanningService) Planning(firstDay time.Time, dayCount int) (PlanningResult, error) {
	if dayCount <= 0 {
		dayCount = DefaultPlanningDays
	}
	firstDay = utils.DateOnly(firstDay)
	lastDay := firstDay.AddDate(0, 0, dayCount-1)

	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return PlanningResult{}, NewInternalError("failed to load rooms", err)
	}

	var reservations []models.Reservation
	if err := s.DB.
		Where("fecha_ingreso <= ? AND fecha_egreso >= ?", lastDay, firstDay).
		Find(&reservations).Error; err != nil {
		return PlanningResult{}, NewInternalError("failed to load reservations", err)
	}
	checkStoredInvariants(reservations)

	return BuildPlanning(rooms, reservations, firstDay, dayCount), nil
}
