package repository

import (
	"go-medisales-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MRRepository interface {
	// Mutations take *gorm.DB so they can join the caller's transaction.
	Create(tx *gorm.DB, mr *model.MedicalRep) error
	UpdateFields(tx *gorm.DB, id uuid.UUID, name string, salary float64) error
	ReplaceStores(tx *gorm.DB, mr *model.MedicalRep, stores []model.MedicalStore) error
	Delete(tx *gorm.DB, id uuid.UUID) error

	FindAll() ([]model.MedicalRep, error)
	FindByID(id uuid.UUID) (*model.MedicalRep, error)
	FindByName(name string) (*model.MedicalRep, error)
}

type mrRepo struct {
	db *gorm.DB
}

func NewMRRepo(db *gorm.DB) MRRepository {
	return &mrRepo{db}
}

func (r *mrRepo) Create(tx *gorm.DB, mr *model.MedicalRep) error {
	return tx.Create(mr).Error
}

func (r *mrRepo) UpdateFields(tx *gorm.DB, id uuid.UUID, name string, salary float64) error {
	return tx.Model(&model.MedicalRep{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":   name,
			"salary": salary,
		}).Error
}

// ReplaceStores swaps the full assignment set in one association call;
// gorm issues the delete-all-then-insert-all against the join table.
func (r *mrRepo) ReplaceStores(tx *gorm.DB, mr *model.MedicalRep, stores []model.MedicalStore) error {
	return tx.Model(mr).Association("Stores").Replace(stores)
}

func (r *mrRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Exec("DELETE FROM mr_stores WHERE medical_rep_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.MedicalRep{}, "id = ?", id).Error
}

func (r *mrRepo) FindAll() ([]model.MedicalRep, error) {
	var mrs []model.MedicalRep
	if err := r.db.Preload("Stores").Order("name ASC").Find(&mrs).Error; err != nil {
		return nil, err
	}
	return mrs, nil
}

func (r *mrRepo) FindByID(id uuid.UUID) (*model.MedicalRep, error) {
	var mr model.MedicalRep
	if err := r.db.Preload("Stores").First(&mr, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &mr, nil
}

func (r *mrRepo) FindByName(name string) (*model.MedicalRep, error) {
	var mr model.MedicalRep
	if err := r.db.First(&mr, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &mr, nil
}
