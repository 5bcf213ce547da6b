package model

// MedicalStore is a pharmacy outlet covered by one or more MRs.
type MedicalStore struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address string `gorm:"type:varchar(500);not null" json:"address" validate:"required"`
}
