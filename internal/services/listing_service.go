package services

import (
	"fmt"

	"shambasoko/internal/domain"
	"shambasoko/internal/repos"

	"github.com/go-playground/validator/v10"
)

// CreateListingRequest carries the farmer-facing field names of the API body.
type CreateListingRequest struct {
	Name       string  `json:"name" validate:"required"`
	Category   string  `json:"category" validate:"required"`
	Type       string  `json:"type" validate:"required,oneof=cash barter"`
	Price      float64 `json:"price" validate:"gte=0"`
	BarterDesc string  `json:"barterDesc"`
	Location   string  `json:"location" validate:"required"`
	Seller     string  `json:"seller"`
	Desc       string  `json:"desc"`
	ImageURL   string  `json:"image_url"`
	Date       string  `json:"date"`
}

type ListingService struct {
	Products *repos.ProductRepo
	Validate *validator.Validate
}

func NewListingService(products *repos.ProductRepo, validate *validator.Validate) *ListingService {
	return &ListingService{Products: products, Validate: validate}
}

// Create stores a new listing. Price defaults to 0, which is also the resting
// value for barter listings where the amount is meaningless.
func (s *ListingService) Create(req CreateListingRequest) (int64, error) {
	if err := s.Validate.Struct(req); err != nil {
		return 0, fmt.Errorf("%w: missing required fields", domain.ErrInvalidInput)
	}

	p := domain.Product{
		Name:        req.Name,
		Category:    req.Category,
		Type:        req.Type,
		Price:       req.Price,
		BarterDesc:  req.BarterDesc,
		Location:    req.Location,
		Seller:      req.Seller,
		Description: req.Desc,
		ImageURL:    req.ImageURL,
		Date:        req.Date,
	}
	if p.Seller == "" {
		p.Seller = "Unknown"
	}
	if p.ImageURL == "" {
		p.ImageURL = "images/seed_pack.jpg"
	}
	if p.Date == "" {
		p.Date = "Just now"
	}
	return s.Products.Insert(p)
}

func (s *ListingService) List() ([]domain.Product, error) {
	return s.Products.List()
}

// Delete is shared by the owner-facing and admin-facing routes; there is no
// ownership check, the boundary decides who may call it.
func (s *ListingService) Delete(id int64) error {
	return s.Products.Delete(id)
}
