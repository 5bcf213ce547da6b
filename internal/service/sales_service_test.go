package service

import (
	"errors"
	"testing"
	"time"

	"go-medisales-api/internal/model"
	"go-medisales-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newSalesFixture(t *testing.T) (SalesService, StockService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	hub := newTestHub()
	stockSvc := NewStockService(repository.NewStockRepo(db), db, hub)
	salesSvc := NewSalesService(repository.NewSaleRepo(db), stockSvc, db, hub)
	return salesSvc, stockSvc, db
}

func createTestSale(t *testing.T, svc SalesService, db *gorm.DB) uuid.UUID {
	t.Helper()
	mr := createTestMR(t, db, "John", 30000)
	store := createTestStore(t, db, "StoreX")
	saleID, err := svc.CreateSale(&CreateSaleRequest{
		MRID:       mr.ID,
		StoreID:    store.ID,
		TotalSales: 500,
		Date:       time.Now().Format("2006-01-02"),
		Photo:      "visit.jpg",
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	return saleID
}

func TestCreateSaleRequiresPhoto(t *testing.T) {
	svc, _, db := newSalesFixture(t)
	mr := createTestMR(t, db, "John", 30000)
	store := createTestStore(t, db, "StoreX")

	_, err := svc.CreateSale(&CreateSaleRequest{
		MRID:    mr.ID,
		StoreID: store.ID,
		Date:    time.Now().Format("2006-01-02"),
	})
	if !errors.Is(err, ErrPhotoRequired) {
		t.Fatalf("CreateSale without photo = %v, want ErrPhotoRequired", err)
	}
}

func TestAddSaleDetailDecrementsStock(t *testing.T) {
	svc, stockSvc, db := newSalesFixture(t)
	saleID := createTestSale(t, svc, db)

	if _, err := stockSvc.ReceiveStock(&ReceiveStockRequest{
		DealerName: "HealthCorp",
		Medicines:  []ReceiveMedicine{{MedicineName: "Paracetamol", Quantity: 100, Price: 2}},
	}); err != nil {
		t.Fatalf("ReceiveStock: %v", err)
	}

	err := svc.AddSaleDetail(&AddSaleDetailRequest{
		SaleID:       saleID,
		MedicineName: "Paracetamol",
		Quantity:     30,
		Price:        2,
		TotalPrice:   60,
		Date:         time.Now().Format("2006-01-02"),
	})
	if err != nil {
		t.Fatalf("AddSaleDetail: %v", err)
	}

	if got := currentBalance(t, db, "Paracetamol"); got != 70 {
		t.Errorf("balance after sale = %d, want 70", got)
	}
	var detailCount int64
	db.Model(&model.SaleDetail{}).Count(&detailCount)
	if detailCount != 1 {
		t.Errorf("expected 1 detail row, got %d", detailCount)
	}
}

func TestAddSaleDetailRollsBackOnInsufficientStock(t *testing.T) {
	svc, stockSvc, db := newSalesFixture(t)
	saleID := createTestSale(t, svc, db)

	if _, err := stockSvc.ReceiveStock(&ReceiveStockRequest{
		DealerName: "HealthCorp",
		Medicines:  []ReceiveMedicine{{MedicineName: "Paracetamol", Quantity: 70, Price: 2}},
	}); err != nil {
		t.Fatalf("ReceiveStock: %v", err)
	}

	err := svc.AddSaleDetail(&AddSaleDetailRequest{
		SaleID:       saleID,
		MedicineName: "Paracetamol",
		Quantity:     80,
		Price:        2,
		TotalPrice:   160,
		Date:         time.Now().Format("2006-01-02"),
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("AddSaleDetail oversell = %v, want ErrInsufficientStock", err)
	}

	// All-or-nothing: the detail insert must be gone and the balance intact
	var detailCount int64
	db.Model(&model.SaleDetail{}).Count(&detailCount)
	if detailCount != 0 {
		t.Errorf("expected rolled-back detail insert, found %d rows", detailCount)
	}
	if got := currentBalance(t, db, "Paracetamol"); got != 70 {
		t.Errorf("balance after failed sale = %d, want 70", got)
	}
}

func TestAddSaleDetailUnknownSale(t *testing.T) {
	svc, stockSvc, _ := newSalesFixture(t)

	if _, err := stockSvc.ReceiveStock(&ReceiveStockRequest{
		DealerName: "HealthCorp",
		Medicines:  []ReceiveMedicine{{MedicineName: "Paracetamol", Quantity: 10, Price: 2}},
	}); err != nil {
		t.Fatalf("ReceiveStock: %v", err)
	}

	err := svc.AddSaleDetail(&AddSaleDetailRequest{
		SaleID:       uuid.New(),
		MedicineName: "Paracetamol",
		Quantity:     1,
		Price:        2,
		TotalPrice:   2,
		Date:         time.Now().Format("2006-01-02"),
	})
	if !errors.Is(err, ErrSaleNotFound) {
		t.Fatalf("AddSaleDetail with unknown sale = %v, want ErrSaleNotFound", err)
	}
}

func TestRecordSaleRejectsFutureDate(t *testing.T) {
	svc, _, db := newSalesFixture(t)
	mr := createTestMR(t, db, "John", 30000)
	store := createTestStore(t, db, "StoreX")

	err := svc.RecordSale(&DirectSaleRequest{
		MRID:         mr.ID,
		StoreID:      store.ID,
		MedicineName: "Paracetamol",
		Quantity:     5,
		Price:        2,
		Date:         time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
	})
	if !errors.Is(err, ErrFutureDate) {
		t.Fatalf("RecordSale future date = %v, want ErrFutureDate", err)
	}

	var count int64
	db.Model(&model.DirectSale{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected record must write nothing, found %d rows", count)
	}
}

func TestRecordBulkSalesFailFast(t *testing.T) {
	svc, _, db := newSalesFixture(t)
	mr := createTestMR(t, db, "John", 30000)
	store := createTestStore(t, db, "StoreX")

	today := time.Now().Format("2006-01-02")
	reqs := []DirectSaleRequest{
		{MRID: mr.ID, StoreID: store.ID, MedicineName: "Paracetamol", Quantity: 5, Price: 2, Date: today},
		{MRID: mr.ID, StoreID: store.ID, MedicineName: "Aspirin", Quantity: 3, Price: 4}, // missing date
	}

	if err := svc.RecordBulkSales(reqs); !errors.Is(err, ErrValidation) {
		t.Fatalf("RecordBulkSales = %v, want ErrValidation", err)
	}

	// No partial batch: the valid first record must not have been written
	var count int64
	db.Model(&model.DirectSale{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows after failed bulk insert, found %d", count)
	}

	if err := svc.RecordBulkSales(nil); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("RecordBulkSales(nil) = %v, want ErrEmptyBatch", err)
	}
}

func TestAllSalesExplicitRange(t *testing.T) {
	svc, stockSvc, db := newSalesFixture(t)
	saleID := createTestSale(t, svc, db)

	if _, err := stockSvc.ReceiveStock(&ReceiveStockRequest{
		DealerName: "HealthCorp",
		Medicines:  []ReceiveMedicine{{MedicineName: "Paracetamol", Quantity: 100, Price: 2}},
	}); err != nil {
		t.Fatalf("ReceiveStock: %v", err)
	}
	if err := svc.AddSaleDetail(&AddSaleDetailRequest{
		SaleID:       saleID,
		MedicineName: "Paracetamol",
		Quantity:     10,
		Price:        2,
		TotalPrice:   20,
		Date:         time.Now().Format("2006-01-02"),
	}); err != nil {
		t.Fatalf("AddSaleDetail: %v", err)
	}

	today := time.Now().Format("2006-01-02")
	rows, err := svc.AllSales("", today, today)
	if err != nil {
		t.Fatalf("AllSales: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("AllSales today = %d rows, want 1", len(rows))
	}
	if rows[0].MRName != "John" || rows[0].StoreName != "StoreX" {
		t.Errorf("joined names = %q/%q, want John/StoreX", rows[0].MRName, rows[0].StoreName)
	}

	// Identical filters, identical results
	again, err := svc.AllSales("", today, today)
	if err != nil {
		t.Fatalf("AllSales repeat: %v", err)
	}
	if len(again) != len(rows) {
		t.Errorf("repeated query returned %d rows, want %d", len(again), len(rows))
	}

	// A window wholly in the past excludes today's sale
	past, err := svc.AllSales("", "2000-01-01", "2000-01-31")
	if err != nil {
		t.Fatalf("AllSales past window: %v", err)
	}
	if len(past) != 0 {
		t.Errorf("past window = %d rows, want 0", len(past))
	}
}

func TestTodaySalesForMR(t *testing.T) {
	svc, stockSvc, db := newSalesFixture(t)
	saleID := createTestSale(t, svc, db)

	if _, err := stockSvc.ReceiveStock(&ReceiveStockRequest{
		DealerName: "HealthCorp",
		Medicines:  []ReceiveMedicine{{MedicineName: "Paracetamol", Quantity: 100, Price: 2}},
	}); err != nil {
		t.Fatalf("ReceiveStock: %v", err)
	}
	if err := svc.AddSaleDetail(&AddSaleDetailRequest{
		SaleID:       saleID,
		MedicineName: "Paracetamol",
		Quantity:     10,
		Price:        2,
		TotalPrice:   20,
		Date:         time.Now().Format("2006-01-02"),
	}); err != nil {
		t.Fatalf("AddSaleDetail: %v", err)
	}

	var mr model.MedicalRep
	if err := db.First(&mr, "name = ?", "John").Error; err != nil {
		t.Fatalf("load mr: %v", err)
	}

	rows, err := svc.TodaySalesForMR(mr.ID)
	if err != nil {
		t.Fatalf("TodaySalesForMR: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("TodaySalesForMR = %d rows, want 1", len(rows))
	}
	if rows[0].MedicineName != "Paracetamol" || rows[0].StoreName != "StoreX" {
		t.Errorf("row = %+v, want Paracetamol at StoreX", rows[0])
	}

	other, err := svc.TodaySalesForMR(uuid.New())
	if err != nil {
		t.Fatalf("TodaySalesForMR other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("unrelated MR sees %d rows, want 0", len(other))
	}
}
