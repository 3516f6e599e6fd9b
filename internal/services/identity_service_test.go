package services_test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"shambasoko/internal/domain"
	"shambasoko/internal/repos"
	"shambasoko/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:", false)
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func identitySvc(t *testing.T) *services.IdentityService {
	t.Helper()
	db := memdb(t)
	return services.NewIdentityService(repos.NewUserRepo(db), validator.New())
}

func TestRegisterValidation(t *testing.T) {
	svc := identitySvc(t)

	_, err := svc.Register(services.RegisterRequest{Fullname: "Jane", Phone: "711000000"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("missing password: want ErrInvalidInput, got %v", err)
	}

	_, err = svc.Register(services.RegisterRequest{Fullname: "Jane", Phone: "711000000", Password: "pw1", Role: "buyer"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("bad role: want ErrInvalidInput, got %v", err)
	}
}

func TestRegisterDefaultsRoleToFarmer(t *testing.T) {
	svc := identitySvc(t)

	if _, err := svc.Register(services.RegisterRequest{Fullname: "Jane", Phone: "711000000", Password: "pw1"}); err != nil {
		t.Fatal(err)
	}
	u, err := svc.Login("711000000", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != domain.RoleFarmer {
		t.Fatalf("want default role farmer, got %q", u.Role)
	}
}

func TestRegisterConflictSurfacesDistinctly(t *testing.T) {
	svc := identitySvc(t)

	if _, err := svc.Register(services.RegisterRequest{Fullname: "Jane", Phone: "711000000", Password: "pw1"}); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Register(services.RegisterRequest{Fullname: "Janet", Phone: "711000000", Password: "pw2"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

// Wrong password and unknown phone must be indistinguishable to the caller.
func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	svc := identitySvc(t)
	if _, err := svc.Register(services.RegisterRequest{Fullname: "Jane", Phone: "711000000", Password: "pw1"}); err != nil {
		t.Fatal(err)
	}

	_, errWrongPw := svc.Login("711000000", "nope")
	_, errUnknown := svc.Login("799999999", "pw1")
	if !errors.Is(errWrongPw, domain.ErrNotFound) || !errors.Is(errUnknown, domain.ErrNotFound) {
		t.Fatalf("outcomes differ: wrong-pw=%v unknown=%v", errWrongPw, errUnknown)
	}
}

func TestLoginStripsPassword(t *testing.T) {
	svc := identitySvc(t)
	if _, err := svc.Register(services.RegisterRequest{Fullname: "Jane", Phone: "711000000", Password: "pw1"}); err != nil {
		t.Fatal(err)
	}

	u, err := svc.Login("711000000", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	if u.Password != "" {
		t.Fatal("password returned from login")
	}
	if u.Fullname != "Jane" || u.ID == 0 {
		t.Fatalf("bad user: %+v", u)
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc := identitySvc(t)
	if _, err := svc.Login("", "pw1"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Login("711000000", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}
