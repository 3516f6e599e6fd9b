package handlers

import (
	"errors"

	"shambasoko/internal/domain"
	"shambasoko/internal/log"
	"shambasoko/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Admin  *services.AdminService
	Offers *services.OfferService
}

// GET /api/admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	st, err := h.Admin.Stats()
	if err != nil {
		return serverError(c, "admin.stats.fail", err)
	}
	return c.JSON(st)
}

// GET /api/admin/users
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.Admin.ListUsers()
	if err != nil {
		return serverError(c, "admin.users.list.fail", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(users)
}

// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c, "User not found")
	}

	if err := h.Admin.DeleteUser(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, "admin.users.delete.fail", err)
	}

	log.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// GET /api/admin/offers
func (h *AdminHandler) ListOffers(c *fiber.Ctx) error {
	offers, err := h.Offers.ListForAdmin()
	if err != nil {
		return serverError(c, "admin.offers.list.fail", err)
	}
	if offers == nil {
		offers = []domain.OfferWithProduct{}
	}
	return c.JSON(offers)
}

// PUT /api/admin/offers/:id
func (h *AdminHandler) UpdateOffer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c, "Offer not found")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid status")
	}

	if err := h.Offers.Decide(int64(id), req.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "Invalid status")
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Offer not found")
		}
		return serverError(c, "admin.offers.update.fail", err)
	}

	log.Audit(c, "admin.offers.update", map[string]any{"offer_id": id, "status": req.Status})
	return c.JSON(fiber.Map{"message": "Offer status updated successfully"})
}
