package models

import (
	"time"
)

// Room categories the planner knows how to rank. Unknown categories are
// accepted (open string) and sort after the known ones.
const (
	CategoryDouble    = "doble"
	CategoryTriple    = "triple"
	CategoryQuadruple = "cuadruple"
	CategoryQuintuple = "quintuple"
)

// Room deletion is physical: no DeletedAt column, so a deleted room's numero
// is immediately reusable under the unique index.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Number   string `json:"numero" gorm:"column:numero;uniqueIndex;type:varchar(10)"`
	Category string `json:"tipo" gorm:"column:tipo;type:varchar(50);default:doble"`
	Floor    string `json:"piso" gorm:"column:piso;type:varchar(20);default:0"`

	// Owning relationship: deleting a room takes its reservations with it.
	Reservations []Reservation `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

func (Room) TableName() string { return "habitaciones" }

// CategoryRank orders rooms for the planning grid: doble first, then triple,
// cuadruple, quintuple; anything else last.
func (r Room) CategoryRank() int {
	switch r.Category {
	case CategoryDouble:
		return 1
	case CategoryTriple:
		return 2
	case CategoryQuadruple:
		return 3
	case CategoryQuintuple:
		return 4
	default:
		return 5
	}
}
