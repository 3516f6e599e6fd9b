package repos_test

import (
	"errors"
	"testing"

	"shambasoko/internal/domain"
	"shambasoko/internal/repos"

	"github.com/jmoiron/sqlx"
)

func openStore(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:", false)
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestInsertPhoneConflict(t *testing.T) {
	db := openStore(t)
	users := repos.NewUserRepo(db)

	id, err := users.Insert("Jane", "711000000", "pw1", "farmer")
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Fatal("no id returned")
	}

	if _, err := users.Insert("Impostor", "711000000", "pw2", "farmer"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}

	// First user intact, no partial effect from the failed insert.
	u, err := users.ByCredentials("711000000", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	if u.Fullname != "Jane" {
		t.Fatalf("first user damaged: %+v", u)
	}
	n, err := users.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want 1 user, got %d", n)
	}
}

func TestByCredentialsExactMatch(t *testing.T) {
	db := openStore(t)
	users := repos.NewUserRepo(db)
	if _, err := users.Insert("Jane", "711000000", "pw1", "farmer"); err != nil {
		t.Fatal(err)
	}

	if _, err := users.ByCredentials("711000000", "wrong"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("wrong password: want ErrNotFound, got %v", err)
	}
	if _, err := users.ByCredentials("799999999", "pw1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown phone: want ErrNotFound, got %v", err)
	}

	u, err := users.ByCredentials("711000000", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	if u.Phone != "711000000" || u.Role != domain.RoleFarmer {
		t.Fatalf("bad user: %+v", u)
	}
}

func TestListExcludesPassword(t *testing.T) {
	db := openStore(t)
	users := repos.NewUserRepo(db)
	if _, err := users.Insert("Jane", "711000000", "pw1", "farmer"); err != nil {
		t.Fatal(err)
	}
	if _, err := users.Insert("Amir", "722000000", "pw2", "admin"); err != nil {
		t.Fatal(err)
	}

	list, err := users.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("want 2 users, got %d", len(list))
	}
	for _, u := range list {
		if u.Password != "" {
			t.Fatalf("password leaked in listing for %s", u.Phone)
		}
	}
}

func TestDeleteUser(t *testing.T) {
	db := openStore(t)
	users := repos.NewUserRepo(db)
	id, err := users.Insert("Jane", "711000000", "pw1", "farmer")
	if err != nil {
		t.Fatal(err)
	}

	if err := users.Delete(id); err != nil {
		t.Fatal(err)
	}
	if err := users.Delete(id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound on second delete, got %v", err)
	}
}
