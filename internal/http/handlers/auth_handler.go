package handlers

import (
	"errors"

	"shambasoko/internal/domain"
	"shambasoko/internal/log"
	"shambasoko/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Identity *services.IdentityService
}

// POST /api/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing fields")
	}

	if _, err := h.Identity.Register(req); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, err.Error())
		case errors.Is(err, domain.ErrConflict):
			log.Security(c, "auth.register.conflict", map[string]any{"phone": req.Phone})
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Phone number already exists"})
		}
		return serverError(c, "auth.register.fail", err)
	}

	log.Audit(c, "auth.register", map[string]any{"phone": req.Phone})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

// POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing fields")
	}

	u, err := h.Identity.Login(req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "Missing fields")
		case errors.Is(err, domain.ErrNotFound):
			log.Security(c, "auth.login.fail", map[string]any{"phone": req.Phone})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid phone or password"})
		}
		return serverError(c, "auth.login.fail", err)
	}

	log.Audit(c, "auth.login.success", map[string]any{"phone": u.Phone})
	return c.JSON(fiber.Map{"message": "Login successful", "user": u})
}
