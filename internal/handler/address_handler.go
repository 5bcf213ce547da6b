package handler

import (
	"go-medisales-api/internal/model"
	"go-medisales-api/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AddressHandler struct {
	repo repository.AddressRepository
}

func NewAddressHandler(repo repository.AddressRepository) *AddressHandler {
	return &AddressHandler{repo: repo}
}

// AddAddress stores a standalone address book entry
// POST /api/address/add-address
func (h *AddressHandler) AddAddress(c *fiber.Ctx) error {
	var req struct {
		AddressLine1 string `json:"address_line1"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.AddressLine1 == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Address Line 1 is required"})
	}

	address := &model.Address{AddressLine1: req.AddressLine1}
	if err := h.repo.Create(address); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":   "Address added successfully",
		"addressId": address.ID,
	})
}

// ListAddresses returns every stored address
// GET /api/address/all-address
func (h *AddressHandler) ListAddresses(c *fiber.Ctx) error {
	addresses, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(addresses)
}
