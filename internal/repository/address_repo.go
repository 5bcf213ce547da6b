package repository

import (
	"go-medisales-api/internal/model"

	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(address *model.Address) error
	FindAll() ([]model.Address, error)
}

type addressRepo struct {
	db *gorm.DB
}

func NewAddressRepo(db *gorm.DB) AddressRepository {
	return &addressRepo{db}
}

func (r *addressRepo) Create(address *model.Address) error {
	return r.db.Create(address).Error
}

func (r *addressRepo) FindAll() ([]model.Address, error) {
	var addresses []model.Address
	if err := r.db.Order("created_at DESC").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}
