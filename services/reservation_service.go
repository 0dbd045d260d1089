package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hostal-backend/models"
	"hostal-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService wraps *gorm.DB with the reservation store logic:
// temporal validation, overlap checking and the derived billing fields.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// Overlaps reports whether two half-open stays [aIn, aOut) and [bIn, bOut)
// intersect. Touching boundaries (checkout day == checkin day) do not.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// FindConflict scans existing reservations of one room for a stay that
// overlaps [checkIn, checkOut), skipping excludeID (0 = exclude nothing).
// When stored data itself overlaps, the lowest id wins so callers stay
// deterministic.
func FindConflict(existing []models.Reservation, checkIn, checkOut time.Time, excludeID uint) *models.Reservation {
	var found *models.Reservation
	for i := range existing {
		r := &existing[i]
		if r.ID == excludeID {
			continue
		}
		if !Overlaps(checkIn, checkOut, r.CheckIn, r.CheckOut) {
			continue
		}
		if found == nil || r.ID < found.ID {
			found = r
		}
	}
	return found
}

// validate enforces the reservation invariants before any write.
func (s *ReservationService) validate(r *models.Reservation) *AppError {
	var missing []string
	if strings.TrimSpace(r.FirstName) == "" {
		missing = append(missing, "nombre")
	}
	if r.CheckIn.IsZero() {
		missing = append(missing, "fecha_ingreso")
	}
	if r.CheckOut.IsZero() {
		missing = append(missing, "fecha_egreso")
	}
	if len(missing) > 0 {
		return NewValidationError("faltan campos requeridos", missing...)
	}
	if !r.CheckIn.Before(r.CheckOut) {
		return NewValidationError("fecha_ingreso debe ser anterior a fecha_egreso")
	}
	if r.People < 1 {
		return NewValidationError("personas debe ser al menos 1")
	}
	if r.TotalAmount < 0 || r.Deposit < 0 {
		return NewValidationError("montos no pueden ser negativos")
	}
	if r.Deposit > r.TotalAmount {
		return NewValidationError("la seña no puede superar el monto total")
	}
	return nil
}

// Create validates and inserts a reservation. The overlap read and the
// insert run as one transaction with the room's reservation rows locked, so
// two concurrent requests for the same room and dates cannot both succeed.
func (s *ReservationService) Create(r *models.Reservation) error {
	r.CheckIn = utils.DateOnly(r.CheckIn)
	r.CheckOut = utils.DateOnly(r.CheckOut)
	if err := s.validate(r); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, r.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("habitación")
			}
			return NewInternalError("failed to load room", err)
		}

		var existing []models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("nhabitacion_id = ?", r.RoomID).
			Find(&existing).Error; err != nil {
			return NewInternalError("failed to load reservations", err)
		}

		if conflict := FindConflict(existing, r.CheckIn, r.CheckOut, 0); conflict != nil {
			return NewConflictError(
				fmt.Sprintf("solapamiento: ya existe la reserva #%d de %s %s en la habitación %s entre %s y %s",
					conflict.ID, conflict.FirstName, conflict.LastName, room.Number,
					conflict.CheckIn.Format(utils.ISODate), conflict.CheckOut.Format(utils.ISODate)),
				conflict.ID)
		}

		if err := tx.Create(r).Error; err != nil {
			return NewInternalError("failed to create reservation", err)
		}
		return nil
	})
}

// Update rewrites a reservation, re-running validation and the overlap check
// with the reservation itself excluded. Derived fields are recomputed by the
// model's BeforeSave hook.
func (s *ReservationService) Update(id uint, updated *models.Reservation) (*models.Reservation, error) {
	updated.CheckIn = utils.DateOnly(updated.CheckIn)
	updated.CheckOut = utils.DateOnly(updated.CheckOut)
	if err := s.validate(updated); err != nil {
		return nil, err
	}

	var out models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var current models.Reservation
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("reserva")
			}
			return NewInternalError("failed to load reservation", err)
		}

		var existing []models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("nhabitacion_id = ?", updated.RoomID).
			Find(&existing).Error; err != nil {
			return NewInternalError("failed to load reservations", err)
		}
		if conflict := FindConflict(existing, updated.CheckIn, updated.CheckOut, id); conflict != nil {
			return NewConflictError(
				fmt.Sprintf("solapamiento con la reserva #%d de %s %s", conflict.ID, conflict.FirstName, conflict.LastName),
				conflict.ID)
		}

		updated.ID = current.ID
		updated.CreatedAt = current.CreatedAt
		if err := tx.Save(updated).Error; err != nil {
			return NewInternalError("failed to update reservation", err)
		}
		out = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReservationService) Delete(id uint) error {
	result := s.DB.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return NewInternalError("failed to delete reservation", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("reserva")
	}
	return nil
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var r models.Reservation
	if err := s.DB.Preload("Room").First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("reserva")
		}
		return nil, NewInternalError("failed to load reservation", err)
	}
	checkStoredInvariant(&r)
	return &r, nil
}

// GetAll returns every reservation, newest first.
func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var out []models.Reservation
	if err := s.DB.Preload("Room").Order("id DESC").Find(&out).Error; err != nil {
		return nil, NewInternalError("failed to list reservations", err)
	}
	checkStoredInvariants(out)
	return out, nil
}

// ActiveOn returns the reservations covering the given day:
// fecha_ingreso <= day < fecha_egreso.
func (s *ReservationService) ActiveOn(day time.Time) ([]models.Reservation, error) {
	day = utils.DateOnly(day)
	var out []models.Reservation
	if err := s.DB.Preload("Room").
		Where("fecha_ingreso <= ? AND fecha_egreso > ?", day, day).
		Find(&out).Error; err != nil {
		return nil, NewInternalError("failed to query active reservations", err)
	}
	checkStoredInvariants(out)
	return out, nil
}

// OverlappingRange returns reservations touching [start, end] for planner
// queries.
func (s *ReservationService) OverlappingRange(start, end time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := s.DB.Preload("Room").
		Where("fecha_ingreso <= ? AND fecha_egreso >= ?", utils.DateOnly(end), utils.DateOnly(start)).
		Find(&out).Error; err != nil {
		return nil, NewInternalError("failed to query reservations in range", err)
	}
	checkStoredInvariants(out)
	return out, nil
}

func (s *ReservationService) CheckinsOn(day time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := s.DB.Preload("Room").
		Where("fecha_ingreso = ?", utils.DateOnly(day)).
		Find(&out).Error; err != nil {
		return nil, NewInternalError("failed to query check-ins", err)
	}
	return out, nil
}

func (s *ReservationService) CheckoutsOn(day time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := s.DB.Preload("Room").
		Where("fecha_egreso = ?", utils.DateOnly(day)).
		Find(&out).Error; err != nil {
		return nil, NewInternalError("failed to query check-outs", err)
	}
	return out, nil
}

// ByRoom returns one room's reservation history, newest stay first.
func (s *ReservationService) ByRoom(roomID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := s.DB.Where("nhabitacion_id = ?", roomID).
		Order("fecha_ingreso DESC").
		Find(&out).Error; err != nil {
		return nil, NewInternalError("failed to query room reservations", err)
	}
	return out, nil
}

// checkStoredInvariant flags rows that violate their own stored invariant
// (corrupted state, not caller input); reads continue with the row as-is.
func checkStoredInvariant(r *models.Reservation) {
	if !r.CheckIn.Before(r.CheckOut) {
		log.Printf("⚠️  data corruption: reserva #%d has fecha_ingreso %s >= fecha_egreso %s",
			r.ID, r.CheckIn.Format(utils.ISODate), r.CheckOut.Format(utils.ISODate))
	}
}

func checkStoredInvariants(rs []models.Reservation) {
	for i := range rs {
		checkStoredInvariant(&rs[i])
	}
}
