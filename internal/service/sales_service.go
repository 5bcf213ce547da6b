package service

import (
	"errors"
	"time"

	"go-medisales-api/internal/model"
	"go-medisales-api/internal/repository"
	"go-medisales-api/internal/ws"
	"go-medisales-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPhotoRequired = errors.New("photo is required")
	ErrSaleNotFound  = errors.New("sale not found")
	ErrFutureDate    = errors.New("sale date cannot be in the future")
	ErrInvalidDate   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrEmptyBatch    = errors.New("sales data must be a non-empty array")
)

const dateLayout = "2006-01-02"

type SalesService interface {
	CreateSale(req *CreateSaleRequest) (uuid.UUID, error)
	AddSaleDetail(req *AddSaleDetailRequest) error
	RecordSale(req *DirectSaleRequest) error
	RecordBulkSales(reqs []DirectSaleRequest) error
	TodaySalesForMR(mrID uuid.UUID) ([]model.TodaySaleRow, error)
	AllSales(filter, startDate, endDate string) ([]model.SaleRow, error)
}

type CreateSaleRequest struct {
	MRID       uuid.UUID `json:"mr_id" validate:"uuid_required"`
	StoreID    uuid.UUID `json:"store_id" validate:"uuid_required"`
	TotalSales float64   `json:"total_sales"`
	Date       string    `json:"date" validate:"required"`
	Photo      string    `json:"photo"`
}

type AddSaleDetailRequest struct {
	SaleID       uuid.UUID `json:"sale_id" validate:"uuid_required"`
	MedicineName string    `json:"medicine_name" validate:"required"`
	Quantity     int       `json:"quantity" validate:"required,gt=0"`
	Price        float64   `json:"price" validate:"required,gt=0"`
	TotalPrice   float64   `json:"total_price" validate:"required,gt=0"`
	Date         string    `json:"date" validate:"required"`
}

type DirectSaleRequest struct {
	MRID         uuid.UUID `json:"mr_id" validate:"uuid_required"`
	StoreID      uuid.UUID `json:"store_id" validate:"uuid_required"`
	MedicineName string    `json:"medicine_name" validate:"required"`
	Quantity     int       `json:"quantity" validate:"required,gt=0"`
	Price        float64   `json:"price" validate:"required,gt=0"`
	Date         string    `json:"date" validate:"required"`
}

type salesService struct {
	saleRepo     repository.SaleRepository
	stockService StockService
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewSalesService(saleRepo repository.SaleRepository, stockService StockService, db *gorm.DB, hub *ws.Hub) SalesService {
	return &salesService{
		saleRepo:     saleRepo,
		stockService: stockService,
		db:           db,
		wsHub:        hub,
	}
}

func (s *salesService) CreateSale(req *CreateSaleRequest) (uuid.UUID, error) {
	if req.Photo == "" {
		return uuid.Nil, ErrPhotoRequired
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return uuid.Nil, validationError(errs)
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		return uuid.Nil, ErrInvalidDate
	}

	sale := &model.Sale{
		MRID:       req.MRID,
		StoreID:    req.StoreID,
		TotalSales: req.TotalSales,
		Date:       date,
		Photo:      req.Photo,
	}
	if err := s.saleRepo.CreateSale(sale); err != nil {
		return uuid.Nil, err
	}
	return sale.ID, nil
}

// AddSaleDetail appends a line item and decrements the medicine's stock
// balance as one atomic unit. If the decrement fails the detail insert is
// rolled back too.
func (s *salesService) AddSaleDetail(req *AddSaleDetailRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		return ErrInvalidDate
	}

	exists, err := s.saleRepo.SaleExists(req.SaleID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSaleNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		detail := &model.SaleDetail{
			SaleID:       req.SaleID,
			MedicineName: req.MedicineName,
			Quantity:     req.Quantity,
			Price:        req.Price,
			TotalPrice:   req.TotalPrice,
			Date:         date,
		}
		if err := s.saleRepo.CreateDetail(tx, detail); err != nil {
			return err
		}
		return s.stockService.Decrement(tx, req.MedicineName, req.Quantity)
	})
	if err != nil {
		return err
	}

	s.wsHub.Emit("stock_update", map[string]interface{}{
		"action":        "sale_recorded",
		"medicine_name": req.MedicineName,
		"quantity":      req.Quantity,
	})

	return nil
}

// validateDirect checks a legacy record without writing anything.
func (s *salesService) validateDirect(req *DirectSaleRequest, today time.Time) (time.Time, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return time.Time{}, validationError(errs)
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if date.After(today) {
		return time.Time{}, ErrFutureDate
	}
	return date, nil
}

func (s *salesService) RecordSale(req *DirectSaleRequest) error {
	date, err := s.validateDirect(req, dateOnly(time.Now()))
	if err != nil {
		return err
	}
	return s.saleRepo.CreateDirect(s.db, &model.DirectSale{
		MRID:         req.MRID,
		StoreID:      req.StoreID,
		MedicineName: req.MedicineName,
		Quantity:     req.Quantity,
		Price:        req.Price,
		Date:         date,
	})
}

// RecordBulkSales validates every record before any row is written, then
// inserts the whole batch in one transaction.
func (s *salesService) RecordBulkSales(reqs []DirectSaleRequest) error {
	if len(reqs) == 0 {
		return ErrEmptyBatch
	}

	today := dateOnly(time.Now())
	rows := make([]*model.DirectSale, 0, len(reqs))
	for i := range reqs {
		date, err := s.validateDirect(&reqs[i], today)
		if err != nil {
			return err
		}
		rows = append(rows, &model.DirectSale{
			MRID:         reqs[i].MRID,
			StoreID:      reqs[i].StoreID,
			MedicineName: reqs[i].MedicineName,
			Quantity:     reqs[i].Quantity,
			Price:        reqs[i].Price,
			Date:         date,
		})
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if err := s.saleRepo.CreateDirect(tx, row); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *salesService) TodaySalesForMR(mrID uuid.UUID) ([]model.TodaySaleRow, error) {
	dayStart, dayEnd := dayRange(time.Now())
	return s.saleRepo.TodayForMR(mrID, dayStart, dayEnd)
}

// AllSales intersects the named filter window (if any) with the explicit
// start/end range (if both given), then delegates to the repository.
func (s *salesService) AllSales(filter, startDate, endDate string) ([]model.SaleRow, error) {
	var start, end *time.Time

	if filter != "" {
		// Unknown filter names are ignored, matching the report UI contract.
		if fs, fe, ok := filterRange(filter, time.Now()); ok {
			start, end = fs, fe
		}
	}

	if startDate != "" && endDate != "" {
		es, err := time.ParseInLocation(dateLayout, startDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
		ee, err := time.ParseInLocation(dateLayout, endDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
		eeNext := ee.AddDate(0, 0, 1) // inclusive end date

		if start == nil || es.After(*start) {
			start = &es
		}
		if end == nil || eeNext.Before(*end) {
			end = &eeNext
		}
	}

	return s.saleRepo.FindFiltered(start, end)
}
