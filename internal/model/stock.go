package model

import "time"

// StockBatch is an immutable receipt row, one per medicine line in a
// delivery. Balances never live here; see StockBalance.
type StockBatch struct {
	BaseModel
	MedicineName string    `gorm:"type:varchar(255);not null;index" json:"medicine_name" validate:"required"`
	Quantity     int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price        float64   `gorm:"not null" json:"price" validate:"required,gt=0"`
	DealerName   string    `gorm:"type:varchar(255);not null" json:"dealer_name" validate:"required"`
	DateAdded    time.Time `gorm:"type:date;not null" json:"date_added"`
}

// StockBalance is the single mutable running balance per medicine.
// Invariant: TotalQuantity >= 0; every decrement runs locked inside the
// transaction of the sale detail that triggers it.
type StockBalance struct {
	BaseModel
	MedicineName  string `gorm:"type:varchar(255);uniqueIndex;not null" json:"medicine_name"`
	TotalQuantity int    `gorm:"not null;default:0" json:"total_quantity"`
}
