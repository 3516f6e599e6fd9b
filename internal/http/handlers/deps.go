package handlers

import (
	"shambasoko/internal/repos"
	"shambasoko/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	OfferHandler   *OfferHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, validate *validator.Validate) *Deps {
	userRepo := repos.NewUserRepo(db)
	productRepo := repos.NewProductRepo(db)
	offerRepo := repos.NewOfferRepo(db)

	identitySvc := services.NewIdentityService(userRepo, validate)
	listingSvc := services.NewListingService(productRepo, validate)
	offerSvc := services.NewOfferService(offerRepo, validate)
	adminSvc := services.NewAdminService(userRepo, productRepo, offerRepo)

	return &Deps{
		AuthHandler:    &AuthHandler{Identity: identitySvc},
		ProductHandler: &ProductHandler{Listings: listingSvc},
		OfferHandler:   &OfferHandler{Offers: offerSvc},
		AdminHandler:   &AdminHandler{Admin: adminSvc, Offers: offerSvc},
	}
}
