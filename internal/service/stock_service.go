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
	ErrMedicineNotFound  = errors.New("medicine not found in stock")
	ErrInsufficientStock = errors.New("insufficient stock quantity")
)

type StockService interface {
	ReceiveStock(req *ReceiveStockRequest) ([]AddedStock, error)
	// Decrement runs inside the caller's transaction; it is never safe to
	// call with the bare DB handle.
	Decrement(tx *gorm.DB, medicineName string, quantity int) error
	MedicineNames() ([]string, error)
	AllStock() (*StockOverview, error)
}

type ReceiveStockRequest struct {
	DealerName string            `json:"dealer_name" validate:"required"`
	Medicines  []ReceiveMedicine `json:"medicines" validate:"required,min=1,dive"`
}

type ReceiveMedicine struct {
	MedicineName string  `json:"medicine_name" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	Price        float64 `json:"price" validate:"required,gt=0"`
}

type AddedStock struct {
	MedicineName string    `json:"medicine_name"`
	BatchID      uuid.UUID `json:"stock_id"`
}

type StockOverview struct {
	Batches  []model.StockBatch   `json:"stock"`
	Balances []model.StockBalance `json:"balances"`
}

type stockService struct {
	stockRepo repository.StockRepository
	db        *gorm.DB
	wsHub     *ws.Hub
}

func NewStockService(stockRepo repository.StockRepository, db *gorm.DB, hub *ws.Hub) StockService {
	return &stockService{
		stockRepo: stockRepo,
		db:        db,
		wsHub:     hub,
	}
}

func (s *stockService) ReceiveStock(req *ReceiveStockRequest) ([]AddedStock, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	today := dateOnly(time.Now())
	added := make([]AddedStock, 0, len(req.Medicines))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, med := range req.Medicines {
			batch := &model.StockBatch{
				MedicineName: med.MedicineName,
				Quantity:     med.Quantity,
				Price:        med.Price,
				DealerName:   req.DealerName,
				DateAdded:    today,
			}
			if err := s.stockRepo.CreateBatch(tx, batch); err != nil {
				return err
			}

			// Lock the balance row and fold the receipt in; first receipt
			// for a medicine creates the row.
			balance, err := s.stockRepo.FindBalanceForUpdate(tx, med.MedicineName)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := s.stockRepo.CreateBalance(tx, &model.StockBalance{
					MedicineName:  med.MedicineName,
					TotalQuantity: med.Quantity,
				}); err != nil {
					return err
				}
			} else if err != nil {
				return err
			} else {
				newTotal := balance.TotalQuantity + med.Quantity
				if err := s.stockRepo.UpdateBalance(tx, med.MedicineName, newTotal); err != nil {
					return err
				}
			}

			added = append(added, AddedStock{MedicineName: med.MedicineName, BatchID: batch.ID})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Emit("stock_update", map[string]interface{}{
		"action":      "stock_received",
		"dealer_name": req.DealerName,
		"added":       added,
	})

	return added, nil
}

func (s *stockService) Decrement(tx *gorm.DB, medicineName string, quantity int) error {
	balance, err := s.stockRepo.FindBalanceForUpdate(tx, medicineName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMedicineNotFound
	}
	if err != nil {
		return err
	}

	if quantity > balance.TotalQuantity {
		return ErrInsufficientStock
	}

	return s.stockRepo.UpdateBalance(tx, medicineName, balance.TotalQuantity-quantity)
}

func (s *stockService) MedicineNames() ([]string, error) {
	return s.stockRepo.MedicineNames()
}

func (s *stockService) AllStock() (*StockOverview, error) {
	batches, err := s.stockRepo.FindAllBatches()
	if err != nil {
		return nil, err
	}
	balances, err := s.stockRepo.FindAllBalances()
	if err != nil {
		return nil, err
	}
	return &StockOverview{Batches: batches, Balances: balances}, nil
}
