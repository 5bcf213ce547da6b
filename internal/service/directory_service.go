package service

import (
	"errors"
	"fmt"
	"strings"

	"go-medisales-api/internal/model"
	"go-medisales-api/internal/repository"
	"go-medisales-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound = errors.New("store not found")
	ErrStoresMissing = errors.New("store(s) not found")
)

type DirectoryService interface {
	CreateMR(req *MRRequest) (*model.MedicalRep, error)
	ListMRs() ([]model.MedicalRepResponse, error)
	GetMR(id uuid.UUID) (*model.MedicalRepResponse, error)
	UpdateMR(id uuid.UUID, req *MRRequest) error
	DeleteMR(id uuid.UUID) error

	CreateStore(req *StoreRequest) (*model.MedicalStore, error)
	ListStores() ([]model.MedicalStore, error)
	UpdateStore(id uuid.UUID, req *StoreRequest) error
	DeleteStore(id uuid.UUID) error
	StoresForMR(mrID uuid.UUID) ([]model.MedicalStore, error)
}

type MRRequest struct {
	Name           string   `json:"name" validate:"required"`
	AssignedStores []string `json:"assignedStores" validate:"required,min=1,dive,required"`
	Salary         float64  `json:"salary" validate:"required,gt=0"`
}

type StoreRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type directoryService struct {
	mrRepo    repository.MRRepository
	storeRepo repository.StoreRepository
	db        *gorm.DB
}

func NewDirectoryService(mrRepo repository.MRRepository, storeRepo repository.StoreRepository, db *gorm.DB) DirectoryService {
	return &directoryService{
		mrRepo:    mrRepo,
		storeRepo: storeRepo,
		db:        db,
	}
}

// resolveStores maps the requested store names to rows, erroring with the
// full missing set if any name does not resolve.
func resolveStores(tx *gorm.DB, names []string) ([]model.MedicalStore, error) {
	var stores []model.MedicalStore
	if err := tx.Where("name IN ?", names).Find(&stores).Error; err != nil {
		return nil, err
	}
	if len(stores) != len(names) {
		found := make(map[string]bool, len(stores))
		for _, s := range stores {
			found[s.Name] = true
		}
		var missing []string
		for _, n := range names {
			if !found[n] {
				missing = append(missing, n)
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrStoresMissing, strings.Join(missing, ", "))
	}
	return stores, nil
}

func (s *directoryService) CreateMR(req *MRRequest) (*model.MedicalRep, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	mr := &model.MedicalRep{Name: req.Name, Salary: req.Salary}

	// One transaction: a store name that fails to resolve leaves no
	// half-assigned MR behind.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		stores, err := resolveStores(tx, req.AssignedStores)
		if err != nil {
			return err
		}
		if err := s.mrRepo.Create(tx, mr); err != nil {
			return err
		}
		return s.mrRepo.ReplaceStores(tx, mr, stores)
	})
	if err != nil {
		return nil, err
	}
	return mr, nil
}

func (s *directoryService) ListMRs() ([]model.MedicalRepResponse, error) {
	mrs, err := s.mrRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]model.MedicalRepResponse, len(mrs))
	for i := range mrs {
		out[i] = mrs[i].ToResponse()
	}
	return out, nil
}

func (s *directoryService) GetMR(id uuid.UUID) (*model.MedicalRepResponse, error) {
	mr, err := s.mrRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMRNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := mr.ToResponse()
	return &resp, nil
}

// UpdateMR replaces the MR's fields and its whole assignment set atomically.
// Any failure mid-sequence leaves name, salary, and assignments untouched.
func (s *directoryService) UpdateMR(id uuid.UUID, req *MRRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var mr model.MedicalRep
		if err := tx.First(&mr, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMRNotFound
			}
			return err
		}

		if err := s.mrRepo.UpdateFields(tx, id, req.Name, req.Salary); err != nil {
			return err
		}

		stores, err := resolveStores(tx, req.AssignedStores)
		if err != nil {
			return err
		}
		return s.mrRepo.ReplaceStores(tx, &mr, stores)
	})
}

func (s *directoryService) DeleteMR(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var mr model.MedicalRep
		if err := tx.First(&mr, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMRNotFound
			}
			return err
		}
		return s.mrRepo.Delete(tx, id)
	})
}

func (s *directoryService) CreateStore(req *StoreRequest) (*model.MedicalStore, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	store := &model.MedicalStore{Name: req.Name, Address: req.Address}
	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *directoryService) ListStores() ([]model.MedicalStore, error) {
	return s.storeRepo.FindAll()
}

func (s *directoryService) UpdateStore(id uuid.UUID, req *StoreRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}
	store, err := s.storeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStoreNotFound
	}
	if err != nil {
		return err
	}
	store.Name = req.Name
	store.Address = req.Address
	return s.storeRepo.Update(store)
}

func (s *directoryService) DeleteStore(id uuid.UUID) error {
	if _, err := s.storeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		return err
	}
	return s.storeRepo.Delete(id)
}

func (s *directoryService) StoresForMR(mrID uuid.UUID) ([]model.MedicalStore, error) {
	return s.storeRepo.FindByMR(mrID)
}
