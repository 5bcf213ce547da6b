package handler

import (
	"errors"

	"go-medisales-api/internal/service"
	"go-medisales-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the register request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register handles account creation
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Name == "" || req.Password == "" || req.Role == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name, password, and role are required"})
	}

	if err := h.authService.Register(req.Name, req.Password, req.Role); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminExists), errors.Is(err, service.ErrNameTaken):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidRole):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": req.Role + " registered successfully"})
}

// Login handles user authentication
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Name == "" || req.Password == "" || req.Role == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name, password, and role are required"})
	}

	response, err := h.authService.Login(req.Name, req.Password, req.Role)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(response)
}

// CurrentMR returns the MR row behind the session token
// GET /api/auth/current-mr
func (h *AuthHandler) CurrentMR(c *fiber.Ctx) error {
	kind, _ := c.Locals("subject_kind").(string)
	if kind != jwt.SubjectMR {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized: not an MR session"})
	}

	subjectID, err := uuid.Parse(c.Locals("subject_id").(string))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject ID"})
	}

	mr, err := h.authService.CurrentMR(subjectID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "MR not found"})
	}

	return c.JSON(fiber.Map{"id": mr.ID, "name": mr.Name})
}
