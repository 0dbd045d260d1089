package services

import (
	"time"

	"hostal-backend/models"
	"hostal-backend/utils"

	"gorm.io/gorm"
)

// DeepCleanAfterNights is the stay length (nights already slept) at which a
// room gets the full clean on top of the daily touch-up. With the night
// number being nights_elapsed+1, the threshold of 3 fires on the guest's
// 4th night. Fixed business rule; value preserved from the front desk's
// cleaning cadence.
const DeepCleanAfterNights = 3

// RoomTask is one room on a housekeeping list. NightNumber is the night of
// the stay being serviced; it is zero (omitted) on departure cleans.
type RoomTask struct {
	ID          uint   `json:"id"`
	Number      string `json:"numero"`
	Type        string `json:"tipo"`
	NightNumber int    `json:"noches_estadia,omitempty"`
}

// HousekeepingResult groups every room needing attention on a date:
// a_limpiar (guest departed that day), a_pasajero (guest staying, routine
// touch-up), a_limpiar_pasajero (4th-night deep clean plus touch-up).
// Fully vacant rooms with no departure appear in none of the lists.
type HousekeepingResult struct {
	ToClean          []RoomTask `json:"a_limpiar"`
	TouchUp          []RoomTask `json:"a_pasajero"`
	DeepCleanTouchUp []RoomTask `json:"a_limpiar_pasajero"`
	Date             string     `json:"fecha"`
}

type HousekeepingService struct {
	DB *gorm.DB
}

func NewHousekeepingService(db *gorm.DB) *HousekeepingService {
	return &HousekeepingService{DB: db}
}

// ClassifyHousekeeping assigns each room to its cleaning list for the target
// date. Pure over its inputs; reservations may span any range, only the ones
// active on or checking out on the date matter.
func ClassifyHousekeeping(rooms []models.Room, reservations []models.Reservation, date time.Time) HousekeepingResult {
	date = utils.DateOnly(date)

	result := HousekeepingResult{
		ToClean:          []RoomTask{},
		TouchUp:          []RoomTask{},
		DeepCleanTouchUp: []RoomTask{},
		Date:             date.Format(utils.ISODate),
	}

	byRoom := make(map[uint][]models.Reservation)
	for _, r := range reservations {
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}

	for _, room := range rooms {
		var active *models.Reservation
		departed := false
		for i := range byRoom[room.ID] {
			r := &byRoom[room.ID][i]
			if r.ActiveOn(date) {
				if active == nil || r.ID < active.ID {
					active = r
				}
			} else if utils.SameDay(r.CheckOut, date) {
				departed = true
			}
		}

		switch {
		case active != nil:
			nightsElapsed := int(date.Sub(utils.DateOnly(active.CheckIn)).Hours() / 24)
			task := RoomTask{
				ID:          room.ID,
				Number:      room.Number,
				Type:        room.Category,
				NightNumber: nightsElapsed + 1,
			}
			// Deep clean on the 4th night onward, but only when the guest
			// still has at least one night beyond tomorrow.
			if nightsElapsed >= DeepCleanAfterNights && active.CheckOut.After(date.AddDate(0, 0, 1)) {
				result.DeepCleanTouchUp = append(result.DeepCleanTouchUp, task)
			} else {
				result.TouchUp = append(result.TouchUp, task)
			}
		case departed:
			result.ToClean = append(result.ToClean, RoomTask{
				ID:     room.ID,
				Number: room.Number,
				Type:   room.Category,
			})
		}
	}

	return result
}

// Classify loads the snapshot for the target date and classifies every room.
func (s *HousekeepingService) Classify(date time.Time) (HousekeepingResult, error) {
	date = utils.DateOnly(date)

	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return HousekeepingResult{}, NewInternalError("failed to load rooms", err)
	}

	// Active stays plus same-day departures in one read.
	var reservations []models.Reservation
	if err := s.DB.
		Where("fecha_ingreso <= ? AND fecha_egreso >= ?", date, date).
		Find(&reservations).Error; err != nil {
		return HousekeepingResult{}, NewInternalError("failed to load reservations", err)
	}
	checkStoredInvariants(reservations)

	return ClassifyHousekeeping(rooms, reservations, date), nil
}
