package service

import (
	"testing"

	"go-medisales-api/internal/model"
	"go-medisales-api/internal/ws"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// One connection, or every pooled conn sees its own empty :memory: db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.MedicalRep{},
		&model.MedicalStore{},
		&model.Attendance{},
		&model.StockBatch{},
		&model.StockBalance{},
		&model.Sale{},
		&model.SaleDetail{},
		&model.DirectSale{},
		&model.Address{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func createTestStore(t *testing.T, db *gorm.DB, name string) *model.MedicalStore {
	t.Helper()
	store := &model.MedicalStore{Name: name, Address: name + " street"}
	if err := db.Create(store).Error; err != nil {
		t.Fatalf("create store %q: %v", name, err)
	}
	return store
}

func createTestMR(t *testing.T, db *gorm.DB, name string, salary float64) *model.MedicalRep {
	t.Helper()
	mr := &model.MedicalRep{Name: name, Salary: salary}
	if err := db.Create(mr).Error; err != nil {
		t.Fatalf("create mr %q: %v", name, err)
	}
	return mr
}
