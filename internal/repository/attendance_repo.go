package repository

import (
	"time"

	"go-medisales-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	ExistsForDate(tx *gorm.DB, mrID uuid.UUID, date time.Time) (bool, error)
	Create(tx *gorm.DB, attendance *model.Attendance) error
	FindHistory() ([]model.AttendanceRecord, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db}
}

func (r *attendanceRepo) ExistsForDate(tx *gorm.DB, mrID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := tx.Model(&model.Attendance{}).
		Where("mr_id = ? AND date = ?", mrID, date).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *attendanceRepo) Create(tx *gorm.DB, attendance *model.Attendance) error {
	return tx.Create(attendance).Error
}

func (r *attendanceRepo) FindHistory() ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Table("attendances").
		Select("attendances.id, attendances.mr_id, medical_reps.name AS mr_name, attendances.status, attendances.photo, attendances.date").
		Joins("JOIN medical_reps ON medical_reps.id = attendances.mr_id").
		Order("attendances.date DESC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
