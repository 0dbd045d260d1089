package services

import (
	"errors"
	"strings"

	"hostal-backend/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// StaffService provisions front-desk accounts. Provisioning is explicit:
// the password is hashed here at creation time and nothing auto-creates a
// record on lookup.
type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

func (s *StaffService) Create(staff *models.Staff, password string) error {
	var missing []string
	if strings.TrimSpace(staff.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(password) == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return NewValidationError("faltan campos requeridos", missing...)
	}
	if staff.Role != models.RoleSupervisor {
		staff.Role = models.RoleReceptionist
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return NewInternalError("failed to hash password", err)
	}
	staff.Password = string(hash)

	if err := s.DB.Create(staff).Error; err != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return NewDuplicateError("el usuario " + staff.Username + " ya existe")
		}
		return NewInternalError("failed to create staff", err)
	}
	return nil
}

func (s *StaffService) GetAll() ([]models.Staff, error) {
	var out []models.Staff
	if err := s.DB.Find(&out).Error; err != nil {
		return nil, NewInternalError("failed to list staff", err)
	}
	return out, nil
}

func (s *StaffService) Delete(id uint) error {
	result := s.DB.Delete(&models.Staff{}, id)
	if result.Error != nil {
		return NewInternalError("failed to delete staff", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("encargado")
	}
	return nil
}
