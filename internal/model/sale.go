package model

import (
	"time"

	"github.com/google/uuid"
)

// Sale is the header of one submitted sale event at a store.
type Sale struct {
	BaseModel
	MRID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"mr_id" validate:"uuid_required"`
	MR         MedicalRep   `gorm:"foreignKey:MRID" json:"-" validate:"-"`
	StoreID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"store_id" validate:"uuid_required"`
	Store      MedicalStore `gorm:"foreignKey:StoreID" json:"-" validate:"-"`
	TotalSales float64      `gorm:"not null" json:"total_sales"`
	Date       time.Time    `gorm:"not null" json:"date"`
	Photo      string       `gorm:"type:text;not null" json:"photo" validate:"required"`
}

// SaleDetail is a line item of a Sale. Each insert drives exactly one stock
// balance decrement in the same transaction.
type SaleDetail struct {
	BaseModel
	SaleID       uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id" validate:"uuid_required"`
	Sale         Sale      `gorm:"foreignKey:SaleID" json:"-" validate:"-"`
	MedicineName string    `gorm:"type:varchar(255);not null" json:"medicine_name" validate:"required"`
	Quantity     int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price        float64   `gorm:"not null" json:"price" validate:"required,gt=0"`
	TotalPrice   float64   `gorm:"not null" json:"total_price" validate:"required,gt=0"`
	Date         time.Time `gorm:"not null" json:"date"`
}

// DirectSale is the legacy single-table sales path: one flat row per sold
// medicine with no header/detail split and no stock movement.
type DirectSale struct {
	BaseModel
	MRID         uuid.UUID `gorm:"type:uuid;not null;index" json:"mr_id" validate:"uuid_required"`
	StoreID      uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id" validate:"uuid_required"`
	MedicineName string    `gorm:"type:varchar(255);not null" json:"medicine_name" validate:"required"`
	Quantity     int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price        float64   `gorm:"not null" json:"price" validate:"required,gt=0"`
	Date         time.Time `gorm:"type:date;not null" json:"date"`
}

// SaleRow is the flattened listing shape for filtered sales reports.
type SaleRow struct {
	SaleID       uuid.UUID `json:"sale_id"`
	MedicineName string    `json:"medicine_name"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	Date         time.Time `json:"date"`
	MRName       string    `json:"mr_name"`
	StoreName    string    `json:"store_name"`
}

// TodaySaleRow is the per-MR current-day view joining header, detail and store.
type TodaySaleRow struct {
	SaleID       uuid.UUID `json:"sale_id"`
	TotalSales   float64   `json:"total_sales"`
	SaleDate     time.Time `json:"sale_date"`
	Photo        string    `json:"photo"`
	DetailID     uuid.UUID `json:"detail_id"`
	MedicineName string    `json:"medicine_name"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	TotalPrice   float64   `json:"total_price"`
	DetailDate   time.Time `json:"detail_date"`
	StoreID      uuid.UUID `json:"store_id"`
	StoreName    string    `json:"store_name"`
}
