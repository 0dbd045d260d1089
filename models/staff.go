package models

import (
	"time"
)

// Staff is a front-desk employee (encargado). Records are provisioned
// explicitly at creation time; nothing creates them on a lookup miss.
type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FullName string `json:"nombre" gorm:"column:nombre;size:100"`
	Username string `json:"username" gorm:"column:username;uniqueIndex;type:varchar(100)"`
	Password string `json:"-" gorm:"column:password;size:255"`
	Role     string `json:"rol" gorm:"column:rol;size:20;default:recepcionista"`
	Shift    string `json:"turno" gorm:"column:turno;size:20"`
}

func (Staff) TableName() string { return "encargados" }

const (
	RoleReceptionist = "recepcionista"
	RoleSupervisor   = "supervisor"
)
