package handler

import (
	"errors"
	"log"

	"go-medisales-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StoreHandler struct {
	service service.DirectoryService
}

func NewStoreHandler(s service.DirectoryService) *StoreHandler {
	return &StoreHandler{service: s}
}

func (h *StoreHandler) CreateStore(c *fiber.Ctx) error {
	var req service.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	store, err := h.service.CreateStore(&req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"error": "Name and address are required"})
		}
		log.Printf("create store: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Store added successfully", "data": store})
}

func (h *StoreHandler) GetStores(c *fiber.Ctx) error {
	stores, err := h.service.ListStores()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stores)
}

func (h *StoreHandler) UpdateStore(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
	}

	var req service.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateStore(id, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrStoreNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Store not found"})
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"error": "Name and address are required"})
		}
		log.Printf("update store: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Store updated successfully"})
}

func (h *StoreHandler) DeleteStore(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
	}

	if err := h.service.DeleteStore(id); err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Store not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Store deleted successfully"})
}

// StoresForMR lists the stores assigned to one MR
// GET /api/stores/assign-stores/:mrId
func (h *StoreHandler) StoresForMR(c *fiber.Ctx) error {
	mrID, err := parseUUID(c.Params("mrId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "MR ID is required"})
	}

	stores, err := h.service.StoresForMR(mrID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stores)
}
