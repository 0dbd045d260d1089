package services

import (
	"errors"
	"strings"
	"time"

	"hostal-backend/models"
	"hostal-backend/utils"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Room deletion policies. Cascade (delete the room's reservations with it)
// is the historical behavior; block refuses while reservations ending today
// or later exist.
const (
	DeletePolicyCascade = "cascade"
	DeletePolicyBlock   = "block"
)

type RoomService struct {
	DB           *gorm.DB
	DeletePolicy string
}

func NewRoomService(db *gorm.DB, deletePolicy string) *RoomService {
	if deletePolicy != DeletePolicyBlock {
		deletePolicy = DeletePolicyCascade
	}
	return &RoomService{DB: db, DeletePolicy: deletePolicy}
}

func (s *RoomService) Create(room *models.Room) error {
	room.Number = strings.TrimSpace(room.Number)
	if room.Number == "" {
		return NewValidationError("faltan campos requeridos", "numero")
	}
	if room.Category == "" {
		room.Category = models.CategoryDouble
	}

	if err := s.DB.Create(room).Error; err != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return NewDuplicateError("la habitación " + room.Number + " ya existe")
		}
		return NewInternalError("failed to create room", err)
	}
	return nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, NewInternalError("failed to list rooms", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("habitación")
		}
		return nil, NewInternalError("failed to load room", err)
	}
	return &room, nil
}

func (s *RoomService) GetByNumber(number string) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Where("numero = ?", number).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("habitación")
		}
		return nil, NewInternalError("failed to load room", err)
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, room *models.Room) error {
	room.Number = strings.TrimSpace(room.Number)
	if room.Number == "" {
		return NewValidationError("faltan campos requeridos", "numero")
	}

	result := s.DB.Model(&models.Room{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"numero": room.Number,
			"tipo":   room.Category,
			"piso":   room.Floor,
		})
	if result.Error != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(result.Error, &mysqlErr) && mysqlErr.Number == 1062 {
			return NewDuplicateError("la habitación " + room.Number + " ya existe")
		}
		return NewInternalError("failed to update room", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("habitación")
	}
	return nil
}

// Delete removes a room. Under the cascade policy its reservations go with
// it (FK ON DELETE CASCADE); under the block policy deletion is refused
// while reservations ending today or later exist.
func (s *RoomService) Delete(id uint, now time.Time) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("habitación")
			}
			return NewInternalError("failed to load room", err)
		}

		if s.DeletePolicy == DeletePolicyBlock {
			var active int64
			if err := tx.Model(&models.Reservation{}).
				Where("nhabitacion_id = ? AND fecha_egreso >= ?", id, utils.DateOnly(now)).
				Count(&active).Error; err != nil {
				return NewInternalError("failed to count reservations", err)
			}
			if active > 0 {
				return NewConflictError("la habitación "+room.Number+" tiene reservas activas o futuras", 0)
			}
		}

		if err := tx.Select("Reservations").Delete(&room).Error; err != nil {
			return NewInternalError("failed to delete room", err)
		}
		return nil
	})
}
