package services

import (
	"fmt"

	"shambasoko/internal/domain"
	"shambasoko/internal/repos"

	"github.com/go-playground/validator/v10"
)

type RegisterRequest struct {
	Fullname string `json:"fullname" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type IdentityService struct {
	Users    *repos.UserRepo
	Validate *validator.Validate
}

func NewIdentityService(users *repos.UserRepo, validate *validator.Validate) *IdentityService {
	return &IdentityService{Users: users, Validate: validate}
}

// Register creates an account. Role defaults to farmer when absent and must
// otherwise be farmer or admin. A taken phone surfaces as domain.ErrConflict.
func (s *IdentityService) Register(req RegisterRequest) (int64, error) {
	if err := s.Validate.Struct(req); err != nil {
		return 0, fmt.Errorf("%w: missing fields", domain.ErrInvalidInput)
	}
	role := req.Role
	if role == "" {
		role = domain.RoleFarmer
	}
	if err := s.Validate.Var(role, "oneof=farmer admin"); err != nil {
		return 0, fmt.Errorf("%w: role must be farmer or admin", domain.ErrInvalidInput)
	}
	return s.Users.Insert(req.Fullname, req.Phone, req.Password, role)
}

// Login performs an exact phone+password match and returns the user without
// the credential. Unknown phone and wrong password are the same outcome, so
// account existence never leaks.
func (s *IdentityService) Login(phone, password string) (*domain.User, error) {
	if phone == "" || password == "" {
		return nil, fmt.Errorf("%w: missing fields", domain.ErrInvalidInput)
	}
	u, err := s.Users.ByCredentials(phone, password)
	if err != nil {
		return nil, err
	}
	u.Password = ""
	return u, nil
}
