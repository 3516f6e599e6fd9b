package handlers

import (
	"errors"

	"shambasoko/internal/domain"
	"shambasoko/internal/log"
	"shambasoko/internal/services"

	"github.com/gofiber/fiber/v2"
)

type OfferHandler struct {
	Offers *services.OfferService
}

// POST /api/offers
func (h *OfferHandler) Submit(c *fiber.Ctx) error {
	var req services.SubmitOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing required fields")
	}

	id, err := h.Offers.Submit(req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, err.Error())
		}
		return serverError(c, "offers.submit.fail", err)
	}

	log.Audit(c, "offers.submit", map[string]any{"offer_id": id, "product_id": req.ProductID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Offer sent successfully", "id": id})
}
