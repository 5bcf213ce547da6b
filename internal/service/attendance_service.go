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

var ErrAlreadyMarked = errors.New("attendance already marked for today")

type AttendanceService interface {
	Mark(req *MarkAttendanceRequest) error
	Status(mrID uuid.UUID) (bool, error)
	History() ([]model.AttendanceRecord, error)
}

type MarkAttendanceRequest struct {
	MRID   uuid.UUID `json:"mr_id" validate:"uuid_required"`
	Status string    `json:"status" validate:"required"`
	Photo  string    `json:"photo" validate:"required"`
}

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	db             *gorm.DB
	wsHub          *ws.Hub
}

func NewAttendanceService(attendanceRepo repository.AttendanceRepository, db *gorm.DB, hub *ws.Hub) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		db:             db,
		wsHub:          hub,
	}
}

// Mark records today's attendance for an MR. The check and insert share one
// transaction, with the composite unique index as the backstop against
// racing double-submits.
func (s *attendanceService) Mark(req *MarkAttendanceRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	today := dateOnly(time.Now())

	err := s.db.Transaction(func(tx *gorm.DB) error {
		exists, err := s.attendanceRepo.ExistsForDate(tx, req.MRID, today)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyMarked
		}
		return s.attendanceRepo.Create(tx, &model.Attendance{
			MRID:   req.MRID,
			Status: req.Status,
			Photo:  req.Photo,
			Date:   today,
		})
	})
	if err != nil {
		return err
	}

	s.wsHub.Emit("attendance_marked", map[string]interface{}{
		"mr_id":  req.MRID,
		"status": req.Status,
		"date":   today,
	})

	return nil
}

func (s *attendanceService) Status(mrID uuid.UUID) (bool, error) {
	return s.attendanceRepo.ExistsForDate(s.db, mrID, dateOnly(time.Now()))
}

func (s *attendanceService) History() ([]model.AttendanceRecord, error) {
	return s.attendanceRepo.FindHistory()
}
