package handlers

import (
	"errors"

	"shambasoko/internal/domain"
	"shambasoko/internal/log"
	"shambasoko/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Listings *services.ListingService
}

// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Listings.List()
	if err != nil {
		return serverError(c, "products.list.fail", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(products)
}

// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req services.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing required fields")
	}

	id, err := h.Listings.Create(req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, err.Error())
		}
		return serverError(c, "products.create.fail", err)
	}

	log.Audit(c, "products.create", map[string]any{"product_id": id, "seller": req.Seller})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product listed successfully", "id": id})
}

// DELETE /api/products/:id and DELETE /api/admin/products/:id — same handler,
// registered on both boundaries; there is no ownership check.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c, "Product not found")
	}

	if err := h.Listings.Delete(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Product not found")
		}
		return serverError(c, "products.delete.fail", err)
	}

	log.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
