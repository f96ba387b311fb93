package usecase

import (
	"testing"

	"food-order-backend/internal/infrastructure/repo"
)

func newCatalogService() (*CatalogService, *repo.MemoryVandorRepo, *repo.MemoryFoodRepo) {
	vandors := repo.NewMemoryVandorRepo()
	foods := repo.NewMemoryFoodRepo()
	svc := &CatalogService{
		Vandors: vandors,
		Foods:   foods,
		Auth:    &AuthService{JWTSecret: "test-secret"},
	}
	return svc, vandors, foods
}

func vandorInput(email string) CreateVandorInput {
	return CreateVandorInput{
		Name:      "Fresh Kitchen",
		OwnerName: "Dana",
		FoodType:  []string{"veg"},
		Pincode:   "440001",
		Address:   "12 Main St",
		Phone:     "98000000",
		Email:     email,
		Password:  "secret1",
	}
}

func TestCreateVandorAndLogin(t *testing.T) {
	svc, _, _ := newCatalogService()

	v, err := svc.CreateVandor(vandorInput("v@b.com"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if v.ServiceAvailable {
		t.Fatal("new vandor must start unavailable")
	}
	if v.Password == "secret1" {
		t.Fatal("plaintext password stored")
	}

	if _, err := svc.CreateVandor(vandorInput("v@b.com")); err == nil {
		t.Fatal("duplicate email accepted")
	}

	if _, _, err := svc.Login("v@b.com", "secret1"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, _, err := svc.Login("v@b.com", "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestToggleService(t *testing.T) {
	svc, _, _ := newCatalogService()
	v, _ := svc.CreateVandor(vandorInput("v@b.com"))

	v, err := svc.ToggleService(v.ID, 21.1, 79.0)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !v.ServiceAvailable {
		t.Fatal("not flipped on")
	}
	if v.Lat != 21.1 || v.Lng != 79.0 {
		t.Fatalf("location not stored: %v %v", v.Lat, v.Lng)
	}

	// zero location flips availability without moving the vendor
	v, _ = svc.ToggleService(v.ID, 0, 0)
	if v.ServiceAvailable {
		t.Fatal("not flipped off")
	}
	if v.Lat != 21.1 {
		t.Fatalf("location clobbered: %v", v.Lat)
	}
}

func TestAddFoodAppendsVendorRef(t *testing.T) {
	svc, _, foods := newCatalogService()
	v, _ := svc.CreateVandor(vandorInput("v@b.com"))

	in := CreateFoodInput{
		Name:        "Margherita",
		Description: "Classic pizza",
		Category:    "pizza",
		FoodType:    "veg",
		ReadyTime:   20,
		Price:       9.5,
	}
	v, err := svc.AddFood(v.ID, in, []string{"a.jpg"})
	if err != nil {
		t.Fatalf("add food failed: %v", err)
	}
	if len(v.Foods) != 1 {
		t.Fatalf("food ref not appended: %v", v.Foods)
	}

	listed := foods.ListFoodsByVendor(v.ID)
	if len(listed) != 1 || listed[0].Name != "Margherita" {
		t.Fatalf("food not stored: %+v", listed)
	}
	if listed[0].Images[0] != "a.jpg" {
		t.Fatalf("image not stored: %v", listed[0].Images)
	}

	if _, err := svc.AddFood("ghost", in, nil); err == nil {
		t.Fatal("unknown vandor accepted")
	}
}
