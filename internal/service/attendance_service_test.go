package service

import (
	"errors"
	"testing"

	"go-medisales-api/internal/model"
	"go-medisales-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newAttendanceService(t *testing.T) (AttendanceService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewAttendanceService(repository.NewAttendanceRepo(db), db, newTestHub()), db
}

func TestMarkAttendanceOncePerDay(t *testing.T) {
	svc, db := newAttendanceService(t)
	mr := createTestMR(t, db, "John", 30000)

	req := &MarkAttendanceRequest{MRID: mr.ID, Status: "present", Photo: "selfie.jpg"}
	if err := svc.Mark(req); err != nil {
		t.Fatalf("first Mark: %v", err)
	}

	marked, err := svc.Status(mr.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !marked {
		t.Error("Status = false after marking, want true")
	}

	// Same MR, same day: conflict, and no second row
	if err := svc.Mark(req); !errors.Is(err, ErrAlreadyMarked) {
		t.Fatalf("second Mark = %v, want ErrAlreadyMarked", err)
	}

	var count int64
	db.Model(&model.Attendance{}).Where("mr_id = ?", mr.ID).Count(&count)
	if count != 1 {
		t.Errorf("attendance rows = %d, want 1", count)
	}
}

func TestMarkAttendanceValidation(t *testing.T) {
	svc, db := newAttendanceService(t)
	mr := createTestMR(t, db, "John", 30000)

	cases := []struct {
		name string
		req  MarkAttendanceRequest
	}{
		{"missing mr id", MarkAttendanceRequest{Status: "present", Photo: "p.jpg"}},
		{"missing status", MarkAttendanceRequest{MRID: mr.ID, Photo: "p.jpg"}},
		{"missing photo", MarkAttendanceRequest{MRID: mr.ID, Status: "present"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Mark(&tc.req); !errors.Is(err, ErrValidation) {
				t.Errorf("Mark = %v, want ErrValidation", err)
			}
		})
	}
}

func TestAttendanceStatusUnmarked(t *testing.T) {
	svc, _ := newAttendanceService(t)

	marked, err := svc.Status(uuid.New())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if marked {
		t.Error("Status = true for MR with no marks, want false")
	}
}

func TestAttendanceHistoryJoinsMRName(t *testing.T) {
	svc, db := newAttendanceService(t)
	john := createTestMR(t, db, "John", 30000)
	jane := createTestMR(t, db, "Jane", 32000)

	if err := svc.Mark(&MarkAttendanceRequest{MRID: john.ID, Status: "present", Photo: "a.jpg"}); err != nil {
		t.Fatalf("Mark john: %v", err)
	}
	if err := svc.Mark(&MarkAttendanceRequest{MRID: jane.ID, Status: "leave", Photo: "b.jpg"}); err != nil {
		t.Fatalf("Mark jane: %v", err)
	}

	records, err := svc.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("History = %d records, want 2", len(records))
	}

	names := map[string]string{}
	for _, rec := range records {
		names[rec.MRName] = rec.Status
	}
	if names["John"] != "present" || names["Jane"] != "leave" {
		t.Errorf("history rows = %v, want John=present Jane=leave", names)
	}
}
