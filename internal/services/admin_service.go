package services

import (
	"shambasoko/internal/domain"
	"shambasoko/internal/repos"
)

// AdminService composes read-only statistics and administrative operations
// over the three stores. It carries no authorization logic; the routing
// boundary decides who may call it.
type AdminService struct {
	Users    *repos.UserRepo
	Products *repos.ProductRepo
	Offers   *repos.OfferRepo
}

func NewAdminService(users *repos.UserRepo, products *repos.ProductRepo, offers *repos.OfferRepo) *AdminService {
	return &AdminService{Users: users, Products: products, Offers: offers}
}

// Stats returns five independent counts. Each is exact at its own read; no
// snapshot isolation is promised across the five.
func (s *AdminService) Stats() (domain.Stats, error) {
	var st domain.Stats
	var err error

	if st.TotalUsers, err = s.Users.Count(); err != nil {
		return domain.Stats{}, err
	}
	if st.FarmerCount, err = s.Users.CountByRole(domain.RoleFarmer); err != nil {
		return domain.Stats{}, err
	}
	if st.AdminCount, err = s.Users.CountByRole(domain.RoleAdmin); err != nil {
		return domain.Stats{}, err
	}
	if st.TotalProducts, err = s.Products.Count(); err != nil {
		return domain.Stats{}, err
	}
	if st.TotalOffers, err = s.Offers.Count(); err != nil {
		return domain.Stats{}, err
	}
	return st, nil
}

// ListUsers returns every account, passwords excluded, newest first.
func (s *AdminService) ListUsers() ([]domain.User, error) {
	return s.Users.List()
}

// DeleteUser removes an account. Irreversible; the user's listings and offers
// are left untouched.
func (s *AdminService) DeleteUser(id int64) error {
	return s.Users.Delete(id)
}
