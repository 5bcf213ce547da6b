package handler

import (
	"errors"
	"log"

	"go-medisales-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

// AddStock receives a dealer delivery of one or more medicines
// POST /api/stock/add
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	var req service.ReceiveStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	added, err := h.service.ReceiveStock(&req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"error": "Dealer name and at least one medicine with name, quantity, and price are required"})
		}
		log.Printf("add stock: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Medicines added successfully",
		"added":   added,
	})
}

// GetMedicines lists the distinct medicine names currently tracked
// GET /api/stock/get-med
func (h *StockHandler) GetMedicines(c *fiber.Ctx) error {
	names, err := h.service.MedicineNames()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"medicines": names})
}

// AllStock lists every receipt batch plus the current balances
// GET /api/stock/all-stock
func (h *StockHandler) AllStock(c *fiber.Ctx) error {
	overview, err := h.service.AllStock()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{
		"stock":    overview.Batches,
		"balances": overview.Balances,
	})
}
