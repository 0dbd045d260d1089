package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Reservation holds one guest stay in one room. CheckIn/CheckOut form a
// half-open interval [CheckIn, CheckOut): the checkout day is free for the
// next guest.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	RoomID uint `gorm:"column:nhabitacion_id;index" json:"nhabitacion_id"`
	Room   Room `gorm:"foreignKey:RoomID" json:"habitacion,omitempty"`

	Manager   string    `gorm:"column:encargado;size:100" json:"encargado"`
	FirstName string    `gorm:"column:nombre;size:100" json:"nombre"`
	LastName  string    `gorm:"column:apellido;size:100" json:"apellido"`
	People    int       `gorm:"column:personas;default:1" json:"personas"`
	CheckIn   time.Time `gorm:"column:fecha_ingreso;type:date" json:"-"`
	CheckOut  time.Time `gorm:"column:fecha_egreso;type:date" json:"-"`

	// Derived: recomputed on every save, never independently settable.
	Nights        int     `gorm:"column:noches" json:"noches"`
	PricePerNight float64 `gorm:"column:precio_por_noche" json:"precio_por_noche"`
	Balance       float64 `gorm:"column:resto" json:"resto"`

	TotalAmount float64 `gorm:"column:monto_total" json:"monto_total"`
	Deposit     float64 `gorm:"column:senia" json:"senia"`
	RoomsCount  int     `gorm:"column:cantidad_habitaciones;default:1" json:"cantidad_habitaciones"`
	Phone       string  `gorm:"column:telefono;size:20" json:"telefono"`
	GlutenFree  bool    `gorm:"column:celiacos;default:false" json:"celiacos"`
	Notes       string  `gorm:"column:observaciones;type:text" json:"observaciones"`
	Source      string  `gorm:"column:origen;size:100" json:"origen"`
}

func (Reservation) TableName() string { return "reservas" }

// Recalculate refreshes the derived fields from the stored ones. Nights may
// legitimately be 0 mid-validation; the per-night rate guards the division.
func (r *Reservation) Recalculate() {
	r.Nights = int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if r.Nights > 0 {
		r.PricePerNight = r.TotalAmount / float64(r.Nights)
	} else {
		r.PricePerNight = 0
	}
	r.Balance = r.TotalAmount - r.Deposit
}

// BeforeSave keeps derived fields consistent no matter which code path
// writes the row.
func (r *Reservation) BeforeSave(tx *gorm.DB) error {
	r.Recalculate()
	return nil
}

// ActiveOn reports whether the stay covers the given day (half-open).
func (r Reservation) ActiveOn(day time.Time) bool {
	return !r.CheckIn.After(day) && day.Before(r.CheckOut)
}

// GuestName is the display name used on planner bars and dashboards.
func (r Reservation) GuestName() string {
	return r.FirstName
}

func (r Reservation) String() string {
	return fmt.Sprintf("%s %s (%s a %s)",
		r.FirstName, r.LastName,
		r.CheckIn.Format("2006-01-02"), r.CheckOut.Format("2006-01-02"))
}
