package models

import (
	"time"

	"gorm.io/datatypes"
)

// ImportLog records the outcome of one bulk-import batch. Failed rows never
// abort the batch; their messages land in ErrorDetails for reporting.
type ImportLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Processed    int            `gorm:"column:processed" json:"processed"`
	Created      int            `gorm:"column:created" json:"created"`
	Errors       int            `gorm:"column:errors" json:"errors"`
	RoomsCreated int            `gorm:"column:rooms_created" json:"rooms_created"`
	ErrorDetails datatypes.JSON `gorm:"column:error_details" json:"error_details"`
}

func (ImportLog) TableName() string { return "import_logs" }
