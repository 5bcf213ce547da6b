package model

// Address is a standalone address book entry; the original schema relates it
// to nothing else.
type Address struct {
	BaseModel
	AddressLine1 string `gorm:"type:varchar(500);not null" json:"address_line1" validate:"required"`
}
