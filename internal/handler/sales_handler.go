package handler

import (
	"errors"
	"log"

	"go-medisales-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

// AddSale creates a sale header for a store visit
// POST /api/sales/add
func (h *SalesHandler) AddSale(c *fiber.Ctx) error {
	var req service.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	saleID, err := h.service.CreateSale(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhotoRequired):
			return c.Status(400).JSON(fiber.Map{"error": "Photo is required"})
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidDate):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("create sale: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{"saleID": saleID})
}

// AddSaleDetail appends a line item and decrements stock atomically
// POST /api/sales/salesdetail
func (h *SalesHandler) AddSaleDetail(c *fiber.Ctx) error {
	var req service.AddSaleDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.AddSaleDetail(&req); err != nil {
		switch {
		case errors.Is(err, service.ErrSaleNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Sale not found"})
		case errors.Is(err, service.ErrMedicineNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Medicine not found in stock"})
		case errors.Is(err, service.ErrInsufficientStock):
			return c.Status(400).JSON(fiber.Map{"error": "Insufficient stock quantity"})
		case errors.Is(err, service.ErrInvalidDate):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
		}
		log.Printf("add sale detail: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale detail added and stock updated successfully"})
}

// RecordSale stores one legacy flat sales record
// POST /api/sales/record
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var req service.DirectSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordSale(&req); err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrInvalidDate) || errors.Is(err, service.ErrFutureDate) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("record sale: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sales record added successfully"})
}

// RecordBulkSales stores a batch of legacy records, all-or-nothing
// POST /api/sales/record-bulk
func (h *SalesHandler) RecordBulkSales(c *fiber.Ctx) error {
	var reqs []service.DirectSaleRequest
	if err := c.BodyParser(&reqs); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Sales data must be a non-empty array"})
	}

	if err := h.service.RecordBulkSales(reqs); err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrInvalidDate) ||
			errors.Is(err, service.ErrFutureDate) || errors.Is(err, service.ErrEmptyBatch) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("record bulk sales: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "All sales records added successfully"})
}

// TodaySalesForMR returns the current-day sales of one MR
// GET /api/sales/currentday-sales/mr/:mrId
func (h *SalesHandler) TodaySalesForMR(c *fiber.Ctx) error {
	mrID, err := parseUUID(c.Params("mrId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "MR ID is required"})
	}

	rows, err := h.service.TodaySalesForMR(mrID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(rows)
}

// AllSales lists sales filtered by a named window or explicit date range
// GET /api/sales/all?filter=last7days|last15days|last30days|previousMonth&startDate=&endDate=
func (h *SalesHandler) AllSales(c *fiber.Ctx) error {
	rows, err := h.service.AllSales(c.Query("filter"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"success": true, "sales": rows})
}
