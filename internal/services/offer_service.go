package services

import (
	"fmt"

	"shambasoko/internal/domain"
	"shambasoko/internal/repos"

	"github.com/go-playground/validator/v10"
)

type SubmitOfferRequest struct {
	ProductID   int64    `json:"productId" validate:"required"`
	BuyerName   string   `json:"buyerName" validate:"required"`
	BuyerPhone  string   `json:"buyerPhone" validate:"required"`
	BuyerEmail  string   `json:"buyerEmail"`
	OfferAmount *float64 `json:"offerAmount"`
	BarterOffer string   `json:"barterOffer"`
	Message     string   `json:"message"`
}

type OfferService struct {
	Offers   *repos.OfferRepo
	Validate *validator.Validate
}

func NewOfferService(offers *repos.OfferRepo, validate *validator.Validate) *OfferService {
	return &OfferService{Offers: offers, Validate: validate}
}

// Submit records a buyer offer against a listing. The referenced listing is
// deliberately not checked for existence: the reference is soft, and read
// paths tolerate orphans. Initial status is always pending.
func (s *OfferService) Submit(req SubmitOfferRequest) (int64, error) {
	if err := s.Validate.Struct(req); err != nil {
		return 0, fmt.Errorf("%w: missing required fields", domain.ErrInvalidInput)
	}
	return s.Offers.Insert(domain.Offer{
		ProductID:   req.ProductID,
		BuyerName:   req.BuyerName,
		BuyerPhone:  req.BuyerPhone,
		BuyerEmail:  req.BuyerEmail,
		OfferAmount: req.OfferAmount,
		BarterOffer: req.BarterOffer,
		Message:     req.Message,
	})
}

// ListForAdmin returns offers enriched with listing display metadata,
// tolerating deleted listings.
func (s *OfferService) ListForAdmin() ([]domain.OfferWithProduct, error) {
	return s.Offers.ListWithProducts()
}

// Decide applies an admin decision. Only accepted and rejected are allowed;
// an offer can never be moved back to pending through this path. Re-applying
// a decision is an idempotent overwrite, not a guarded transition.
func (s *OfferService) Decide(id int64, decision string) error {
	if decision != domain.OfferAccepted && decision != domain.OfferRejected {
		return fmt.Errorf("%w: status must be accepted or rejected", domain.ErrInvalidInput)
	}
	return s.Offers.UpdateStatus(id, decision)
}
