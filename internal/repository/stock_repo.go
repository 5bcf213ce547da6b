package repository

import (
	"errors"

	"go-medisales-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockRepository interface {
	CreateBatch(tx *gorm.DB, batch *model.StockBatch) error
	// FindBalanceForUpdate locks the balance row for the duration of the
	// caller's transaction (pessimistic locking).
	FindBalanceForUpdate(tx *gorm.DB, medicineName string) (*model.StockBalance, error)
	CreateBalance(tx *gorm.DB, balance *model.StockBalance) error
	UpdateBalance(tx *gorm.DB, medicineName string, newQuantity int) error

	MedicineNames() ([]string, error)
	FindAllBatches() ([]model.StockBatch, error)
	FindAllBalances() ([]model.StockBalance, error)
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) CreateBatch(tx *gorm.DB, batch *model.StockBatch) error {
	return tx.Create(batch).Error
}

func (r *stockRepo) FindBalanceForUpdate(tx *gorm.DB, medicineName string) (*model.StockBalance, error) {
	var balance model.StockBalance
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&balance, "medicine_name = ?", medicineName).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *stockRepo) CreateBalance(tx *gorm.DB, balance *model.StockBalance) error {
	return tx.Create(balance).Error
}

func (r *stockRepo) UpdateBalance(tx *gorm.DB, medicineName string, newQuantity int) error {
	res := tx.Model(&model.StockBalance{}).
		Where("medicine_name = ?", medicineName).
		Update("total_quantity", newQuantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("stock balance row vanished mid-transaction")
	}
	return nil
}

func (r *stockRepo) MedicineNames() ([]string, error) {
	var names []string
	err := r.db.Model(&model.StockBalance{}).
		Order("medicine_name ASC").
		Pluck("medicine_name", &names).Error
	return names, err
}

func (r *stockRepo) FindAllBatches() ([]model.StockBatch, error) {
	var batches []model.StockBatch
	if err := r.db.Order("date_added DESC, created_at DESC").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *stockRepo) FindAllBalances() ([]model.StockBalance, error) {
	var balances []model.StockBalance
	if err := r.db.Order("medicine_name ASC").Find(&balances).Error; err != nil {
		return nil, err
	}
	return balances, nil
}
