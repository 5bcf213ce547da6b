package repository

import (
	"time"

	"go-medisales-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	CreateSale(sale *model.Sale) error
	SaleExists(saleID uuid.UUID) (bool, error)
	CreateDetail(tx *gorm.DB, detail *model.SaleDetail) error
	CreateDirect(tx *gorm.DB, sale *model.DirectSale) error

	TodayForMR(mrID uuid.UUID, dayStart, dayEnd time.Time) ([]model.TodaySaleRow, error)
	FindFiltered(start, end *time.Time) ([]model.SaleRow, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) CreateSale(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) SaleExists(saleID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Sale{}).Where("id = ?", saleID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *saleRepo) CreateDetail(tx *gorm.DB, detail *model.SaleDetail) error {
	return tx.Create(detail).Error
}

func (r *saleRepo) CreateDirect(tx *gorm.DB, sale *model.DirectSale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) TodayForMR(mrID uuid.UUID, dayStart, dayEnd time.Time) ([]model.TodaySaleRow, error) {
	var rows []model.TodaySaleRow
	err := r.db.Table("sales").
		Select(`sales.id AS sale_id, sales.total_sales, sales.date AS sale_date, sales.photo,
			sale_details.id AS detail_id, sale_details.medicine_name, sale_details.quantity,
			sale_details.price, sale_details.total_price, sale_details.date AS detail_date,
			medical_stores.id AS store_id, medical_stores.name AS store_name`).
		Joins("JOIN sale_details ON sale_details.sale_id = sales.id").
		Joins("JOIN medical_stores ON medical_stores.id = sales.store_id").
		Where("sales.mr_id = ? AND sales.date >= ? AND sales.date < ?", mrID, dayStart, dayEnd).
		Order("sales.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindFiltered lists header+detail rows joined with MR and store names.
// Nil bounds mean unfiltered; the window itself is computed by the service.
func (r *saleRepo) FindFiltered(start, end *time.Time) ([]model.SaleRow, error) {
	query := r.db.Table("sales").
		Select(`sales.id AS sale_id, sale_details.medicine_name, sale_details.quantity,
			sale_details.price, sales.date,
			medical_reps.name AS mr_name, medical_stores.name AS store_name`).
		Joins("JOIN sale_details ON sale_details.sale_id = sales.id").
		Joins("JOIN medical_reps ON medical_reps.id = sales.mr_id").
		Joins("JOIN medical_stores ON medical_stores.id = sales.store_id")

	if start != nil {
		query = query.Where("sales.date >= ?", *start)
	}
	if end != nil {
		query = query.Where("sales.date < ?", *end)
	}

	var rows []model.SaleRow
	if err := query.Order("sales.date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
