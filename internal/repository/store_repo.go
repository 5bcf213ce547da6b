package repository

import (
	"go-medisales-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *model.MedicalStore) error
	FindAll() ([]model.MedicalStore, error)
	FindByID(id uuid.UUID) (*model.MedicalStore, error)
	FindByMR(mrID uuid.UUID) ([]model.MedicalStore, error)
	Update(store *model.MedicalStore) error
	Delete(id uuid.UUID) error
}

type storeRepo struct {
	db *gorm.DB
}

func NewStoreRepo(db *gorm.DB) StoreRepository {
	return &storeRepo{db}
}

func (r *storeRepo) Create(store *model.MedicalStore) error {
	return r.db.Create(store).Error
}

func (r *storeRepo) FindAll() ([]model.MedicalStore, error) {
	var stores []model.MedicalStore
	if err := r.db.Order("name ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepo) FindByID(id uuid.UUID) (*model.MedicalStore, error) {
	var store model.MedicalStore
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepo) FindByMR(mrID uuid.UUID) ([]model.MedicalStore, error) {
	var stores []model.MedicalStore
	err := r.db.
		Joins("JOIN mr_stores ON mr_stores.medical_store_id = medical_stores.id").
		Where("mr_stores.medical_rep_id = ?", mrID).
		Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepo) Update(store *model.MedicalStore) error {
	return r.db.Save(store).Error
}

func (r *storeRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.MedicalStore{}, "id = ?", id).Error
}
