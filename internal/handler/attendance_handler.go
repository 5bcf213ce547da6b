package handler

import (
	"errors"
	"log"

	"go-medisales-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	service service.AttendanceService
}

func NewAttendanceHandler(s service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: s}
}

// Mark records today's attendance for an MR
// POST /api/attendance/mark
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var req service.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Mark(&req); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyMarked):
			return c.Status(409).JSON(fiber.Map{"message": "Attendance already marked for today"})
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"message": "MR ID, status, and photo are required"})
		}
		log.Printf("mark attendance: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Attendance marked successfully"})
}

// Status reports whether today's attendance is already marked
// GET /api/attendance/status/:mr_id
func (h *AttendanceHandler) Status(c *fiber.Ctx) error {
	mrID, err := parseUUID(c.Params("mr_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid MR ID"})
	}

	marked, err := h.service.Status(mrID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"attendanceMarked": marked})
}

// History lists all attendance rows joined with MR names, newest first
// GET /api/attendance/history
func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	records, err := h.service.History()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"success": true, "attendance": records})
}
