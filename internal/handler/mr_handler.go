package handler

import (
	"errors"
	"log"

	"go-medisales-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MRHandler struct {
	service service.DirectoryService
}

func NewMRHandler(s service.DirectoryService) *MRHandler {
	return &MRHandler{service: s}
}

// Helper to parse UUID path params
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

func (h *MRHandler) CreateMR(c *fiber.Ctx) error {
	var req service.MRRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	mr, err := h.service.CreateMR(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoresMissing):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"error": "Name, assigned stores, and salary are required"})
		}
		log.Printf("create mr: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "MR added successfully", "data": mr})
}

func (h *MRHandler) GetMRs(c *fiber.Ctx) error {
	mrs, err := h.service.ListMRs()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(mrs)
}

func (h *MRHandler) GetMR(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid MR ID"})
	}

	mr, err := h.service.GetMR(id)
	if err != nil {
		if errors.Is(err, service.ErrMRNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "MR not found"})
		}
		log.Printf("get mr: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(mr)
}

func (h *MRHandler) UpdateMR(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid MR ID"})
	}

	var req service.MRRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateMR(id, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrMRNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "MR not found"})
		case errors.Is(err, service.ErrStoresMissing):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"error": "Valid name, assigned stores, and salary are required"})
		}
		log.Printf("update mr: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "MR updated successfully"})
}

func (h *MRHandler) DeleteMR(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid MR ID"})
	}

	if err := h.service.DeleteMR(id); err != nil {
		if errors.Is(err, service.ErrMRNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "MR not found"})
		}
		log.Printf("delete mr: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "MR deleted successfully"})
}
