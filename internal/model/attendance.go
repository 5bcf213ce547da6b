package model

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is one mark per MR per calendar day. The composite unique index
// backs the in-transaction existence check against racing double-submits.
type Attendance struct {
	BaseModel
	MRID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_mr_date" json:"mr_id" validate:"uuid_required"`
	MR     MedicalRep `gorm:"foreignKey:MRID" json:"-" validate:"-"`
	Status string     `gorm:"type:varchar(20);not null" json:"status" validate:"required"`
	Photo  string     `gorm:"type:text;not null" json:"photo" validate:"required"`
	Date   time.Time  `gorm:"type:date;not null;uniqueIndex:idx_attendance_mr_date" json:"date"`
}

// AttendanceRecord is a history row joined with the MR's name.
type AttendanceRecord struct {
	ID     uuid.UUID `json:"id"`
	MRID   uuid.UUID `json:"mr_id"`
	MRName string    `json:"mr_name"`
	Status string    `json:"status"`
	Photo  string    `json:"photo"`
	Date   time.Time `json:"date"`
}
