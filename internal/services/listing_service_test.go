package services_test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"

	"shambasoko/internal/domain"
	"shambasoko/internal/repos"
	"shambasoko/internal/services"
)

func listingSvc(t *testing.T) *services.ListingService {
	t.Helper()
	db := memdb(t)
	return services.NewListingService(repos.NewProductRepo(db), validator.New())
}

func TestCreateListingBarterWithoutPrice(t *testing.T) {
	svc := listingSvc(t)

	id, err := svc.Create(services.CreateListingRequest{
		Name:       "Dairy Cow",
		Category:   "Livestock",
		Type:       "barter",
		BarterDesc: "Looking for a motorcycle",
		Location:   "Nakuru",
		Seller:     "Mama Wanjiku",
	})
	if err != nil {
		t.Fatal(err)
	}

	list, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != id {
		t.Fatalf("bad listing result: %+v", list)
	}
	if list[0].Price != 0 {
		t.Fatalf("want price defaulted to 0, got %v", list[0].Price)
	}
	if list[0].BarterDesc != "Looking for a motorcycle" {
		t.Fatalf("barter desc lost: %+v", list[0])
	}
}

func TestCreateListingDefaults(t *testing.T) {
	svc := listingSvc(t)

	if _, err := svc.Create(services.CreateListingRequest{
		Name:     "Maize",
		Category: "Cereals",
		Type:     "cash",
		Price:    4500,
		Location: "Eldoret",
	}); err != nil {
		t.Fatal(err)
	}

	list, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	p := list[0]
	if p.Seller != "Unknown" || p.ImageURL != "images/seed_pack.jpg" || p.Date != "Just now" {
		t.Fatalf("defaults not applied: %+v", p)
	}
}

func TestCreateListingMissingFields(t *testing.T) {
	svc := listingSvc(t)

	_, err := svc.Create(services.CreateListingRequest{Name: "Maize", Category: "Cereals", Type: "cash"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("missing location: want ErrInvalidInput, got %v", err)
	}

	_, err = svc.Create(services.CreateListingRequest{Name: "Maize", Category: "Cereals", Type: "loan", Location: "Eldoret"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("bad type: want ErrInvalidInput, got %v", err)
	}
}

func TestDeleteListing(t *testing.T) {
	svc := listingSvc(t)

	id, err := svc.Create(services.CreateListingRequest{
		Name: "Maize", Category: "Cereals", Type: "cash", Price: 4500, Location: "Eldoret",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(id + 100); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown id, got %v", err)
	}

	if err := svc.Delete(id); err != nil {
		t.Fatal(err)
	}
	list, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("listing still present after delete: %+v", list)
	}
}
